package def

import (
	"github.com/bwmarrin/discordgo"
)

var InitCommand = &discordgo.ApplicationCommand{
	Name:        "init",
	Description: "Первичная настройка: целевой канал и первый модератор",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "channel",
			Description: "ID целевого канала",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "moderator",
			Description: "ID первого модератора",
			Required:    true,
		},
	},
}
