package def

import (
	"github.com/bwmarrin/discordgo"
)

var AddModCommand = &discordgo.ApplicationCommand{
	Name:        "addmod",
	Description: "Выдать права модератора",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "user",
			Description: "ID пользователя",
			Required:    true,
		},
	},
}

var RemoveModCommand = &discordgo.ApplicationCommand{
	Name:        "removemod",
	Description: "Забрать права модератора",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "user",
			Description: "ID пользователя",
			Required:    true,
		},
	},
}

var ListModsCommand = &discordgo.ApplicationCommand{
	Name:        "mods",
	Description: "Список модераторов",
}
