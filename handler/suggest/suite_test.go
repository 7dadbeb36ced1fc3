package suggest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/flatywop/predlojkabot/db"
	"github.com/flatywop/predlojkabot/media"
	"github.com/flatywop/predlojkabot/storage"
)

// setupTest points the stores at a fresh in-memory database and a throwaway
// temp directory.
func setupTest(t *testing.T) {
	t.Helper()
	source := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, db.InitDB(source))
	t.Cleanup(func() { db.DB.Close() })
	require.NoError(t, db.EnsureSettings())
	require.NoError(t, storage.Init(t.TempDir()))
}

type sentText struct {
	channelID string
	content   string
	controls  []discordgo.MessageComponent
}

type sentMedia struct {
	channelID string
	category  media.Category
	path      string
	caption   string
	controls  []discordgo.MessageComponent
}

// fakeSender records outbound deliveries. DM channels are rendered as
// "dm:<user id>".
type fakeSender struct {
	texts   []sentText
	media   []sentMedia
	deleted []string // channelID/messageID
	revoked []string // channelID/userID

	textErr   error
	mediaErr  error
	dmErr     error
	revokeErr error
}

func (f *fakeSender) SendText(channelID, content string, controls []discordgo.MessageComponent) (string, error) {
	if f.textErr != nil {
		return "", f.textErr
	}
	f.texts = append(f.texts, sentText{channelID: channelID, content: content, controls: controls})
	return fmt.Sprintf("msg-%d", len(f.texts)), nil
}

func (f *fakeSender) SendMedia(channelID string, category media.Category, path, caption string, controls []discordgo.MessageComponent) (string, error) {
	if f.mediaErr != nil {
		return "", f.mediaErr
	}
	f.media = append(f.media, sentMedia{channelID: channelID, category: category, path: path, caption: caption, controls: controls})
	return fmt.Sprintf("media-%d", len(f.media)), nil
}

func (f *fakeSender) DMChannel(userID string) (string, error) {
	if f.dmErr != nil {
		return "", f.dmErr
	}
	return "dm:" + userID, nil
}

func (f *fakeSender) DeleteMessage(channelID, messageID string) error {
	f.deleted = append(f.deleted, channelID+"/"+messageID)
	return nil
}

func (f *fakeSender) RevokeMembership(channelID, userID string) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	f.revoked = append(f.revoked, channelID+"/"+userID)
	return nil
}

// dmsTo filters recorded plain texts down to a user's DM channel.
func (f *fakeSender) dmsTo(userID string) []string {
	var out []string
	for _, txt := range f.texts {
		if txt.channelID == "dm:"+userID {
			out = append(out, txt.content)
		}
	}
	return out
}

// buttonIDs extracts the custom IDs from a message's controls.
func buttonIDs(t *testing.T, controls []discordgo.MessageComponent) []string {
	t.Helper()
	require.Len(t, controls, 1)
	row, ok := controls[0].(discordgo.ActionsRow)
	require.True(t, ok)

	var ids []string
	for _, comp := range row.Components {
		btn, ok := comp.(discordgo.Button)
		require.True(t, ok)
		ids = append(ids, btn.CustomID)
	}
	return ids
}
