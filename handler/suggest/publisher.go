package suggest

import (
	"errors"

	"github.com/flatywop/predlojkabot/db"
	"github.com/flatywop/predlojkabot/media"
	"github.com/flatywop/predlojkabot/model"
	"github.com/flatywop/predlojkabot/transport"
)

var errChannelUnset = errors.New("целевой канал не настроен")

// Publish re-emits a submission to the target channel in a form matching its
// original category. Both renderings of a submission go through the same
// classifier, so the moderator saw exactly what the channel gets.
// Any failure comes back as an error; nothing retries.
func Publish(snd transport.Sender, sub *model.Submission) error {
	settings, err := db.GetSettings()
	if err != nil {
		return err
	}
	if settings.TargetChannel == "" {
		return errChannelUnset
	}

	category := media.Classify(sub.AttachmentPath)
	if category == media.Text {
		_, err := snd.SendText(settings.TargetChannel, sub.Content, nil)
		return err
	}

	caption := sub.Content
	if !category.SupportsCaption() {
		caption = ""
	}
	_, err = snd.SendMedia(settings.TargetChannel, category, sub.AttachmentPath, caption, nil)
	return err
}
