package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/flatywop/predlojkabot/handler"
	"github.com/flatywop/predlojkabot/handler/suggest"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(suggest.MessageCreate)

	// Submissions arrive as DMs, decisions and commands as interactions.
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent
}
