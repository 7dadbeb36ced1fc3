package suggest

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/flatywop/predlojkabot/media"
	"github.com/flatywop/predlojkabot/transport"
)

// notifyModerator delivers the review notice to the current reviewer's DM,
// rendered per the attachment's category, falling back to plain text when the
// typed delivery is rejected. Failures here are absorbed: the submitter never
// sees them.
func notifyModerator(snd transport.Sender, moderatorID string, owner Submitter, submissionID int64, attachmentPath, text string) {
	dm, err := snd.DMChannel(moderatorID)
	if err != nil {
		log.Error("cannot open moderator DM", "moderator", moderatorID, "error", err)
		return
	}

	notice := buildNotice(owner, text)
	controls := decisionControls(submissionID)

	category := media.Classify(attachmentPath)
	if category == media.Text {
		if _, err := snd.SendText(dm, notice, controls); err != nil {
			log.Error("failed to notify moderator", "moderator", moderatorID, "error", err)
		}
		return
	}

	if _, err := snd.SendMedia(dm, category, attachmentPath, notice, controls); err != nil {
		log.Warn("typed notice rejected, falling back to plain text", "category", category, "error", err)
		if _, err := snd.SendText(dm, notice, controls); err != nil {
			log.Error("failed to notify moderator", "moderator", moderatorID, "error", err)
		}
	}
}

func buildNotice(owner Submitter, text string) string {
	notice := fmt.Sprintf("📩 Новое сообщение в предложку\n👤 Отправитель: %s\n", owner.DisplayName)
	if owner.Handle != "" {
		notice += fmt.Sprintf("🔗 Username: @%s\n", owner.Handle)
	}
	notice += fmt.Sprintf("🆔 ID: %s\n", owner.ID)
	if text != "" {
		notice += fmt.Sprintf("\n📝 Текст: %s", text)
	}
	return notice
}

// decisionControls builds the accept/decline/ban buttons. The custom IDs
// embed the submission id, so one review message maps to exactly one
// pending submission.
func decisionControls(submissionID int64) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Принять",
					Style:    discordgo.SuccessButton,
					CustomID: fmt.Sprintf("decision:accept:%d", submissionID),
					Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
				},
				discordgo.Button{
					Label:    "Отклонить",
					Style:    discordgo.DangerButton,
					CustomID: fmt.Sprintf("decision:decline:%d", submissionID),
					Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
				},
				discordgo.Button{
					Label:    "Забанить",
					Style:    discordgo.DangerButton,
					CustomID: fmt.Sprintf("decision:ban:%d", submissionID),
					Emoji:    &discordgo.ComponentEmoji{Name: "🔨"},
				},
			},
		},
	}
}
