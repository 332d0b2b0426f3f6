package mp3tag

import (
	"fmt"
	"path/filepath"

	"github.com/sharananure/MP3TagEditor/internal/types"
)

// IsMP3 reports whether path names an MP3 file.
//
// The check is a naming convention only: the path must end in the exact
// suffix ".mp3". No file is opened and no bytes are inspected, so IsMP3
// works on paths that do not exist yet.
func IsMP3(path string) bool {
	return filepath.Ext(path) == ".mp3"
}

// ensureMP3 gates every reading and writing entry point. Rejections
// happen before any file is opened.
func ensureMP3(path string) error {
	if IsMP3(path) {
		return nil
	}
	ext := filepath.Ext(path)
	if ext == "" {
		return &types.UnsupportedFormatError{Path: path, Reason: "missing .mp3 extension"}
	}
	return &types.UnsupportedFormatError{Path: path, Reason: fmt.Sprintf("extension %q is not .mp3", ext)}
}
