package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ContentTypeForImage maps a filename extension to the content type
// sent to the inference API. Unrecognized extensions default to JPEG.
func ContentTypeForImage(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".bmp":
		return "image/bmp"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

// ScratchImagePath builds a collision-free path under dir for a scratch
// copy of an upload, preserving the original extension so the content
// type can still be derived from it.
func ScratchImagePath(dir, originalName string) string {
	return filepath.Join(dir, uuid.NewString()+strings.ToLower(filepath.Ext(originalName)))
}
