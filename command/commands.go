package command

import (
	"github.com/bwmarrin/discordgo"

	"github.com/flatywop/predlojkabot/command/def"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.InitCommand,
	def.AddModCommand,
	def.RemoveModCommand,
	def.SetChannelCommand,
	def.ListModsCommand,
}
