package suggest

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/flatywop/predlojkabot/db"
)

// InitHandler performs the one-time bootstrap: it records the target channel
// and grants the first moderator. Anyone may run it while the bot is
// uninitialized (there is no moderator yet to authorize); afterwards it is a
// no-op.
func InitHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	actor := interactionUser(i)
	if actor == nil {
		return
	}
	opts := commandOptions(i)
	channelID := opts["channel"].StringValue()
	moderatorID := opts["moderator"].StringValue()

	if err := db.EnsureUser(actor.ID); err != nil {
		log.Error("failed to ensure user", "user", actor.ID, "error", err)
	}

	took, err := db.Initialize(actor.ID, channelID)
	if err != nil {
		log.Error("bootstrap failed", "error", err)
		respond(s, i, ackInternalError)
		return
	}
	if !took {
		respond(s, i, ackAlreadyInit)
		return
	}

	if err := db.GrantModerator(moderatorID); err != nil {
		log.Error("failed to grant first moderator", "user", moderatorID, "error", err)
		respond(s, i, ackInternalError)
		return
	}

	log.Info("bot initialized", "initializer", actor.ID, "channel", channelID, "moderator", moderatorID)
	respond(s, i, fmt.Sprintf("Бот успешно инициализирован.\nКанал: %s\nМодератор: %s", channelID, moderatorID))
}

// AddModeratorHandler grants moderator privilege, creating the user if needed.
func AddModeratorHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	actor, ok := authorize(s, i)
	if !ok {
		return
	}
	userID := commandOptions(i)["user"].StringValue()

	if err := db.GrantModerator(userID); err != nil {
		log.Error("failed to grant moderator", "user", userID, "error", err)
		respond(s, i, ackInternalError)
		return
	}
	log.Info("moderator granted", "user", userID, "by", actor.ID)
	respond(s, i, fmt.Sprintf("✅ Пользователь %s теперь модератор.", userID))
}

// RemoveModeratorHandler revokes moderator privilege. Revoking a
// non-moderator is reported back, not treated as an error.
func RemoveModeratorHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	actor, ok := authorize(s, i)
	if !ok {
		return
	}
	userID := commandOptions(i)["user"].StringValue()

	revoked, err := db.RevokeModerator(userID)
	if err != nil {
		log.Error("failed to revoke moderator", "user", userID, "error", err)
		respond(s, i, ackInternalError)
		return
	}
	if !revoked {
		respond(s, i, ackNotModerator)
		return
	}
	log.Info("moderator revoked", "user", userID, "by", actor.ID)
	respond(s, i, fmt.Sprintf("🗑 Пользователь %s больше НЕ модератор.", userID))
}

// SetChannelHandler updates the publish destination.
func SetChannelHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	actor, ok := authorize(s, i)
	if !ok {
		return
	}
	channelID := commandOptions(i)["channel"].StringValue()

	if err := db.SetTargetChannel(channelID); err != nil {
		log.Error("failed to set target channel", "error", err)
		respond(s, i, ackInternalError)
		return
	}
	log.Info("target channel updated", "channel", channelID, "by", actor.ID)
	respond(s, i, fmt.Sprintf("📡 Целевой канал обновлён:\n%s", channelID))
}

// ListModeratorsHandler prints the current moderator roster.
func ListModeratorsHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if _, ok := authorize(s, i); !ok {
		return
	}

	moderators, err := db.ListModerators()
	if err != nil {
		log.Error("failed to list moderators", "error", err)
		respond(s, i, ackInternalError)
		return
	}
	if len(moderators) == 0 {
		respond(s, i, ackNoModerators)
		return
	}

	msg := "👑 Модераторы:\n\n"
	for _, id := range moderators {
		msg += fmt.Sprintf("• %s\n", id)
	}
	respond(s, i, msg)
}

// authorize rejects non-moderators with a notice and reports the actor back.
func authorize(s *discordgo.Session, i *discordgo.InteractionCreate) (*discordgo.User, bool) {
	actor := interactionUser(i)
	if actor == nil {
		return nil, false
	}
	isMod, err := db.IsModerator(actor.ID)
	if err != nil {
		log.Error("moderator check failed", "user", actor.ID, "error", err)
		respond(s, i, ackInternalError)
		return nil, false
	}
	if !isMod {
		respond(s, i, ackNoRights)
		return nil, false
	}
	return actor, true
}

// interactionUser returns the invoking user for both DM and guild
// interactions.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error("failed to respond to interaction", "error", err)
	}
}
