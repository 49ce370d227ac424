package media

import (
	"path/filepath"
	"strings"

	"github.com/genricoloni/duoplayer/internal/domain"
	"github.com/google/uuid"
)

var (
	imageExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".bmp": true, ".gif": true, ".svg": true, ".webp": true,
	}
	videoExtensions = map[string]bool{
		".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".wmv": true, ".webm": true,
	}
)

// File is the file object sent by the command source
type File struct {
	Path     string `json:"path"`
	IsImage  *bool  `json:"is_image,omitempty"`
	MimeType string `json:"mimetype,omitempty"`
	UUID     string `json:"uuid,omitempty"`
	Name     string `json:"name,omitempty"`
	// Time is the per-image dwell in seconds
	Time int `json:"time,omitempty"`
}

// NewItem builds an immutable MediaItem from a wire file object
func NewItem(f File) domain.MediaItem {
	item := domain.MediaItem{
		Path:           f.Path,
		MimeType:       f.MimeType,
		DisplaySeconds: max(f.Time, 0),
		UUID:           f.UUID,
		Name:           f.Name,
	}
	if f.IsImage != nil {
		item.IsImage = *f.IsImage
	} else {
		item.IsImage = IsImage(f.Path, f.MimeType)
	}
	if item.UUID == "" {
		item.UUID = uuid.NewString()
	}
	return item
}

// IsImage classifies by mimetype first, then by extension
func IsImage(path, mimeType string) bool {
	if mimeType != "" {
		return strings.HasPrefix(mimeType, "image/")
	}
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsVideo classifies by mimetype first, then by extension
func IsVideo(path, mimeType string) bool {
	if mimeType != "" {
		return strings.HasPrefix(mimeType, "video/")
	}
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}
