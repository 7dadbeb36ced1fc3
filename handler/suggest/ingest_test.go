package suggest

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatywop/predlojkabot/db"
	"github.com/flatywop/predlojkabot/media"
	"github.com/flatywop/predlojkabot/storage"
)

func TestIngestTextSubmission(t *testing.T) {
	setupTest(t)
	require.NoError(t, db.GrantModerator("1"))

	snd := &fakeSender{}
	owner := Submitter{ID: "42", DisplayName: "Ivan", Handle: "ivan"}
	require.NoError(t, Ingest(snd, owner, "", "hello"))

	// Submission persisted without an attachment.
	sub, err := db.GetSubmission(1)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, "42", sub.OwnerID)
	assert.Empty(t, sub.AttachmentPath)
	assert.Equal(t, "hello", sub.Content)

	// The moderator got a plain text notice with the three controls.
	require.Len(t, snd.texts, 2)
	notice := snd.texts[0]
	assert.Equal(t, "dm:1", notice.channelID)
	assert.Contains(t, notice.content, "hello")
	assert.Contains(t, notice.content, "Ivan")
	assert.Contains(t, notice.content, "@ivan")
	assert.Contains(t, notice.content, "42")
	assert.Equal(t, []string{
		fmt.Sprintf("decision:accept:%d", sub.ID),
		fmt.Sprintf("decision:decline:%d", sub.ID),
		fmt.Sprintf("decision:ban:%d", sub.ID),
	}, buttonIDs(t, notice.controls))

	// The submitter was acknowledged.
	assert.Equal(t, []string{msgSubmissionReceived}, snd.dmsTo("42"))
	assert.Empty(t, snd.media)
}

func TestIngestPhotoSubmission(t *testing.T) {
	setupTest(t)
	require.NoError(t, db.GrantModerator("1"))

	snd := &fakeSender{}
	owner := Submitter{ID: "42", DisplayName: "Ivan"}
	require.NoError(t, Ingest(snd, owner, "temp/abc_cat.png", "my cat"))

	// Photo-typed delivery path, caption carrying the supplied text.
	require.Len(t, snd.media, 1)
	assert.Equal(t, "dm:1", snd.media[0].channelID)
	assert.Equal(t, media.Photo, snd.media[0].category)
	assert.Equal(t, "temp/abc_cat.png", snd.media[0].path)
	assert.Contains(t, snd.media[0].caption, "my cat")
	assert.Len(t, buttonIDs(t, snd.media[0].controls), 3)

	// The submitter ack is the only plain text.
	assert.Equal(t, []string{msgSubmissionReceived}, snd.dmsTo("42"))
}

func TestIngestNoHandleOmitsUsernameLine(t *testing.T) {
	setupTest(t)
	require.NoError(t, db.GrantModerator("1"))

	snd := &fakeSender{}
	require.NoError(t, Ingest(snd, Submitter{ID: "42", DisplayName: "Ivan"}, "", "hi"))

	require.NotEmpty(t, snd.texts)
	assert.NotContains(t, snd.texts[0].content, "Username")
}

func TestIngestWithoutModerator(t *testing.T) {
	setupTest(t)

	snd := &fakeSender{}
	require.NoError(t, Ingest(snd, Submitter{ID: "42", DisplayName: "Ivan"}, "", "hello"))

	// The submitter got an explicit failure notice, nothing else went out.
	assert.Equal(t, []string{msgNoModerator}, snd.dmsTo("42"))
	assert.Len(t, snd.texts, 1)

	// The submission stays persisted, orphaned.
	sub, err := db.GetSubmission(1)
	require.NoError(t, err)
	assert.NotNil(t, sub)
}

func TestIngestTypedDeliveryFallsBackToPlainText(t *testing.T) {
	setupTest(t)
	require.NoError(t, db.GrantModerator("1"))

	snd := &fakeSender{mediaErr: errors.New("payload rejected")}
	require.NoError(t, Ingest(snd, Submitter{ID: "42", DisplayName: "Ivan"}, "clip.mp4", "watch this"))

	// Typed send failed, the notice arrived as plain text instead, and the
	// submitter still got a normal acknowledgment.
	assert.Empty(t, snd.media)
	require.Len(t, snd.texts, 2)
	assert.Equal(t, "dm:1", snd.texts[0].channelID)
	assert.Contains(t, snd.texts[0].content, "watch this")
	assert.Equal(t, []string{msgSubmissionReceived}, snd.dmsTo("42"))
}

func TestIngestModeratorLookupFailure(t *testing.T) {
	setupTest(t)

	// Degrade only the reviewer lookup: EnsureUser still works against a
	// users table that lacks the privilege column.
	_, err := db.DB.Exec("DROP TABLE users")
	require.NoError(t, err)
	_, err = db.DB.Exec("CREATE TABLE users (user_id TEXT PRIMARY KEY)")
	require.NoError(t, err)

	snd := &fakeSender{}
	require.NoError(t, Ingest(snd, Submitter{ID: "42", DisplayName: "Ivan"}, "", "hello"))

	// A store failure is reported as such, not as "no moderator yet",
	// and the submission stays persisted.
	assert.Equal(t, []string{msgInternalError}, snd.dmsTo("42"))
	sub, err := db.GetSubmission(1)
	require.NoError(t, err)
	assert.NotNil(t, sub)
}

func TestIngestPersistFailureRemovesAttachment(t *testing.T) {
	setupTest(t)
	require.NoError(t, db.GrantModerator("1"))

	path, err := storage.Save(strings.NewReader("bytes"), "cat.png")
	require.NoError(t, err)

	_, err = db.DB.Exec("DROP TABLE submissions")
	require.NoError(t, err)

	snd := &fakeSender{}
	err = Ingest(snd, Submitter{ID: "42", DisplayName: "Ivan"}, path, "my cat")
	require.Error(t, err)

	// The stored attachment is not left orphaned behind the failed insert.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestIngestCreatesOwnerWithoutPrivilege(t *testing.T) {
	setupTest(t)
	require.NoError(t, db.GrantModerator("1"))

	snd := &fakeSender{}
	require.NoError(t, Ingest(snd, Submitter{ID: "42", DisplayName: "Ivan"}, "", "hello"))

	user, err := db.GetUser("42")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.IsModerator)
}
