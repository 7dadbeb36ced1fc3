package media

import (
	"path/filepath"
	"strings"
)

// Category describes how an attachment should be rendered when it is sent.
type Category string

const (
	Text     Category = "text"
	Photo    Category = "photo"
	Video    Category = "video"
	Audio    Category = "audio"
	Voice    Category = "voice"
	Sticker  Category = "sticker"
	Document Category = "document"
)

// categories maps a lowercase file extension to its category. The table is a
// design decision, not content detection: an .ogg video still lands on Voice.
// .webp deliberately resolves to Sticker rather than Photo.
var categories = map[string]Category{
	".jpg":  Photo,
	".jpeg": Photo,
	".png":  Photo,
	".gif":  Photo,
	".bmp":  Photo,
	".heic": Photo,
	".webp": Sticker,
	".mp4":  Video,
	".mov":  Video,
	".mkv":  Video,
	".avi":  Video,
	".webm": Video,
	".mp3":  Audio,
	".m4a":  Audio,
	".flac": Audio,
	".wav":  Audio,
	".aac":  Audio,
	".ogg":  Voice,
	".oga":  Voice,
}

// Classify maps an attachment reference to its category by file extension,
// case-insensitively. An empty reference means a plain text submission;
// an unknown extension falls back to Document.
func Classify(attachmentRef string) Category {
	if attachmentRef == "" {
		return Text
	}
	ext := strings.ToLower(filepath.Ext(attachmentRef))
	if cat, ok := categories[ext]; ok {
		return cat
	}
	return Document
}

// SupportsCaption reports whether a caption can accompany the attachment.
// Stickers are sent bare.
func (c Category) SupportsCaption() bool {
	return c != Sticker
}
