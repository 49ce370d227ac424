package media

import (
	"os"
	"strings"

	"github.com/dhowden/tag"
	"go.uber.org/zap"
)

// FileTagReader reads ID3/MP4/FLAC/OGG tags from local audio files
type FileTagReader struct {
	logger *zap.Logger
}

// NewFileTagReader creates a new tag reader
func NewFileTagReader(logger *zap.Logger) *FileTagReader {
	return &FileTagReader{logger: logger}
}

// Read returns title and artist. Remote paths and untagged files yield empty strings.
func (r *FileTagReader) Read(path string) (string, string) {
	if strings.Contains(path, "://") {
		return "", ""
	}

	f, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		r.logger.Debug("No tags found", zap.String("path", path), zap.Error(err))
		return "", ""
	}
	return strings.TrimSpace(m.Title()), strings.TrimSpace(m.Artist())
}
