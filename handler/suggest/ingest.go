package suggest

import (
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/flatywop/predlojkabot/db"
	"github.com/flatywop/predlojkabot/storage"
	"github.com/flatywop/predlojkabot/transport"
)

// Submitter identifies the user behind an inbound submission as it should
// appear in the moderator notice.
type Submitter struct {
	ID          string
	DisplayName string
	Handle      string
}

// MessageCreate turns any direct message to the bot into a submission.
func MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	// Only DMs feed the suggestion box.
	if m.GuildID != "" {
		return
	}
	if m.Content == "" && len(m.Attachments) == 0 {
		return
	}

	var attachmentPath string
	if len(m.Attachments) > 0 {
		path, err := downloadAttachment(m.Attachments[0])
		if err != nil {
			log.Error("failed to download attachment", "owner", m.Author.ID, "error", err)
			s.ChannelMessageSend(m.ChannelID, msgDownloadFailed)
			return
		}
		attachmentPath = path
	}

	owner := Submitter{
		ID:          m.Author.ID,
		DisplayName: displayName(m.Author),
		Handle:      m.Author.Username,
	}

	if err := Ingest(transport.NewDiscord(s), owner, attachmentPath, m.Content); err != nil {
		log.Error("failed to ingest submission", "owner", owner.ID, "error", err)
		s.ChannelMessageSend(m.ChannelID, msgIngestFailed)
	}
}

// Ingest persists a pending submission and notifies the current moderator.
// The returned error means the submission could not be persisted (any stored
// attachment is removed again); everything past that point is acknowledged
// to the submitter and notification failures are absorbed.
func Ingest(snd transport.Sender, owner Submitter, attachmentPath, text string) error {
	if err := db.EnsureUser(owner.ID); err != nil {
		storage.Remove(attachmentPath)
		return err
	}

	id, err := db.AddSubmission(owner.ID, attachmentPath, text)
	if err != nil {
		storage.Remove(attachmentPath)
		return err
	}
	log.Info("submission received", "id", id, "owner", owner.ID)

	moderator, err := db.FirstModerator()
	if err != nil {
		// A store failure is not "nobody configured a moderator yet";
		// the submitter gets internal-error feedback instead.
		log.Error("failed to look up moderator", "error", err)
		if err := transport.DirectMessage(snd, owner.ID, msgInternalError); err != nil {
			log.Warn("failed to notify submitter", "owner", owner.ID, "error", err)
		}
		return nil
	}
	if moderator == "" {
		// Nobody can review yet. The record stays orphaned until an
		// operator bootstraps; the submitter learns why.
		if err := transport.DirectMessage(snd, owner.ID, msgNoModerator); err != nil {
			log.Warn("failed to notify submitter", "owner", owner.ID, "error", err)
		}
		return nil
	}

	notifyModerator(snd, moderator, owner, id, attachmentPath, text)

	if err := transport.DirectMessage(snd, owner.ID, msgSubmissionReceived); err != nil {
		log.Warn("failed to acknowledge submitter", "owner", owner.ID, "error", err)
	}
	return nil
}

func downloadAttachment(att *discordgo.MessageAttachment) (string, error) {
	resp, err := http.Get(att.URL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	return storage.Save(resp.Body, att.Filename)
}

func displayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
