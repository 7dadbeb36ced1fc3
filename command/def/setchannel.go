package def

import (
	"github.com/bwmarrin/discordgo"
)

var SetChannelCommand = &discordgo.ApplicationCommand{
	Name:        "setchannel",
	Description: "Сменить целевой канал",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "channel",
			Description: "ID канала",
			Required:    true,
		},
	},
}
