package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var tempDir string

// Init creates the temp directory for downloaded attachments.
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tempDir = dir
	return nil
}

// Save writes an attachment into the temp directory under a unique name.
// The original filename is kept as a suffix so the extension stays available
// for classification. Returns the stored path.
func Save(r io.Reader, filename string) (string, error) {
	path := filepath.Join(tempDir, uuid.New().String()+"_"+filepath.Base(filename))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// Remove deletes a stored attachment, best-effort. A leftover file is only
// worth a log line.
func Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		log.Warn("failed to remove attachment", "path", path, "error", err)
	}
}
