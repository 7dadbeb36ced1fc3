package suggest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/flatywop/predlojkabot/db"
	"github.com/flatywop/predlojkabot/model"
	"github.com/flatywop/predlojkabot/storage"
	"github.com/flatywop/predlojkabot/transport"
)

// DecisionHandler routes a review-button press into the decision pipeline.
// Custom ID format: decision:<action>:<submission id>.
func DecisionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) != 3 {
		return
	}
	action := model.ParseAction(parts[1])
	submissionID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return
	}

	actor := interactionUser(i)
	if actor == nil {
		return
	}

	ack := Decide(transport.NewDiscord(s), actor.ID, submissionID, action, i.ChannelID, i.Message.ID)
	respond(s, i, ack)
}

// Decide applies a user's verdict to a pending submission and returns the
// acknowledgment text for the acting user. reviewChannelID and
// reviewMessageID locate the notice message so it can be cleaned up once the
// submission is resolved; either may be empty.
func Decide(snd transport.Sender, actorID string, submissionID int64, action model.Action, reviewChannelID, reviewMessageID string) string {
	isMod, err := db.IsModerator(actorID)
	if err != nil {
		log.Error("moderator check failed", "user", actorID, "error", err)
		return ackInternalError
	}
	if !isMod {
		return ackUnauthorized
	}

	unlock := lockSubmission(submissionID)
	defer unlock()

	sub, err := db.GetSubmission(submissionID)
	if err != nil {
		log.Error("submission lookup failed", "submission", submissionID, "error", err)
		return ackInternalError
	}
	if sub == nil {
		return ackNotFound
	}

	switch action {
	case model.ActionAccept:
		if err := Publish(snd, sub); err != nil {
			// Keep the submission so the moderator can press accept
			// again once the configuration or network recovers.
			log.Error("publish failed", "submission", sub.ID, "error", err)
			return fmt.Sprintf(ackPublishFailed, err)
		}
		log.Info("submission published", "submission", sub.ID, "moderator", actorID)
		resolve(snd, sub, reviewChannelID, reviewMessageID)
		notifyOwner(snd, sub.OwnerID, msgPublished)
		return ackPublished

	case model.ActionDecline:
		log.Info("submission declined", "submission", sub.ID, "moderator", actorID)
		resolve(snd, sub, reviewChannelID, reviewMessageID)
		notifyOwner(snd, sub.OwnerID, msgDeclined)
		return ackDeclined

	case model.ActionBan:
		log.Info("submission owner banned", "submission", sub.ID, "owner", sub.OwnerID, "moderator", actorID)
		banOwner(snd, sub.OwnerID)
		resolve(snd, sub, reviewChannelID, reviewMessageID)
		notifyOwner(snd, sub.OwnerID, msgBlocked)
		return ackBanned

	default:
		return ackUnknownAction
	}
}

// resolve removes the submission record, its stored attachment and the
// review message. Deleting the record is what marks the submission resolved;
// a duplicate press afterwards resolves to "not found".
func resolve(snd transport.Sender, sub *model.Submission, reviewChannelID, reviewMessageID string) {
	claimed, err := db.DeleteSubmission(sub.ID)
	if err != nil {
		log.Error("failed to delete submission", "submission", sub.ID, "error", err)
		return
	}
	if !claimed {
		return
	}

	storage.Remove(sub.AttachmentPath)

	if reviewChannelID != "" && reviewMessageID != "" {
		if err := snd.DeleteMessage(reviewChannelID, reviewMessageID); err != nil {
			log.Warn("failed to delete review message", "submission", sub.ID, "error", err)
		}
	}
}

// banOwner kicks the owner out of the target channel's community,
// best-effort: a failure is logged and never blocks the decision.
func banOwner(snd transport.Sender, ownerID string) {
	settings, err := db.GetSettings()
	if err != nil {
		log.Error("failed to read settings", "error", err)
		return
	}
	if settings.TargetChannel == "" {
		log.Warn("cannot revoke membership, target channel unset", "user", ownerID)
		return
	}
	if err := snd.RevokeMembership(settings.TargetChannel, ownerID); err != nil {
		log.Warn("failed to revoke membership", "user", ownerID, "error", err)
	}
}

func notifyOwner(snd transport.Sender, ownerID, message string) {
	if err := transport.DirectMessage(snd, ownerID, message); err != nil {
		log.Warn("failed to notify owner", "user", ownerID, "error", err)
	}
}
