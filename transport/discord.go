package transport

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bwmarrin/discordgo"

	"github.com/flatywop/predlojkabot/media"
)

// Discord implements Sender over a discordgo session.
type Discord struct {
	s *discordgo.Session
}

func NewDiscord(s *discordgo.Session) *Discord {
	return &Discord{s: s}
}

func (d *Discord) SendText(channelID, content string, controls []discordgo.MessageComponent) (string, error) {
	msg, err := d.s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    content,
		Components: controls,
	})
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (d *Discord) SendMedia(channelID string, category media.Category, attachmentPath, caption string, controls []discordgo.MessageComponent) (string, error) {
	f, err := os.Open(attachmentPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	send := buildMediaSend(category, filepath.Base(attachmentPath), f, caption, controls)
	msg, err := d.s.ChannelMessageSendComplex(channelID, send)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

// buildMediaSend renders an attachment per its category. The caption policy
// belongs to the caller: the publisher blanks captions for categories that
// don't support them, while moderator notices always carry the full text
// regardless of category.
func buildMediaSend(category media.Category, name string, r io.Reader, caption string, controls []discordgo.MessageComponent) *discordgo.MessageSend {
	send := &discordgo.MessageSend{
		Files:      []*discordgo.File{{Name: name, Reader: r}},
		Components: controls,
	}
	if category == media.Photo {
		// Render photos inline via an embed pointing at the upload.
		send.Embeds = []*discordgo.MessageEmbed{{
			Description: caption,
			Image:       &discordgo.MessageEmbedImage{URL: "attachment://" + name},
		}}
		return send
	}
	send.Content = caption
	return send
}

func (d *Discord) DMChannel(userID string) (string, error) {
	ch, err := d.s.UserChannelCreate(userID)
	if err != nil {
		return "", err
	}
	return ch.ID, nil
}

func (d *Discord) DeleteMessage(channelID, messageID string) error {
	return d.s.ChannelMessageDelete(channelID, messageID)
}

func (d *Discord) RevokeMembership(channelID, userID string) error {
	ch, err := d.s.Channel(channelID)
	if err != nil {
		return fmt.Errorf("resolving channel %s: %w", channelID, err)
	}
	if ch.GuildID == "" {
		return fmt.Errorf("channel %s does not belong to a guild", channelID)
	}
	return d.s.GuildBanCreate(ch.GuildID, userID, 0)
}
