package transport

import (
	"github.com/bwmarrin/discordgo"

	"github.com/flatywop/predlojkabot/media"
)

// Sender is the outbound delivery surface the pipeline depends on. Every
// method returns a distinguishable error on failure; nothing retries.
type Sender interface {
	// SendText delivers a plain message, optionally with button controls.
	SendText(channelID, content string, controls []discordgo.MessageComponent) (messageID string, err error)
	// SendMedia delivers a stored attachment rendered per its category,
	// with the caption where the category supports one.
	SendMedia(channelID string, category media.Category, attachmentPath, caption string, controls []discordgo.MessageComponent) (messageID string, err error)
	// DMChannel resolves the direct-message channel for a user.
	DMChannel(userID string) (channelID string, err error)
	// DeleteMessage removes a previously sent message.
	DeleteMessage(channelID, messageID string) error
	// RevokeMembership removes a user from the community the channel
	// belongs to.
	RevokeMembership(channelID, userID string) error
}

// DirectMessage sends a plain text message straight to a user.
func DirectMessage(snd Sender, userID, content string) error {
	channelID, err := snd.DMChannel(userID)
	if err != nil {
		return err
	}
	_, err = snd.SendText(channelID, content, nil)
	return err
}
