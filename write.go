package mp3tag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/sharananure/MP3TagEditor/internal/binary"
	"github.com/sharananure/MP3TagEditor/internal/id3"
	"github.com/sharananure/MP3TagEditor/internal/logging"
	"github.com/sharananure/MP3TagEditor/internal/types"
)

// Write replaces the ID3v2 tag of the file at path with tag.
//
// This is an atomic operation: the new tag and the original audio bytes
// are written to a temporary file first, which is then renamed over the
// original path. If any step fails, the original file remains unchanged.
//
// The new tag holds one frame per present field, in fixed order (title,
// artist, album, year, comment, genre), and its declared size always
// matches the bytes actually emitted. A file that already carries a tag
// keeps its version and flag bytes; a file without one gains a fresh
// ID3v2.3 tag in front of its audio data.
//
// Options can be provided to customize write behavior:
//
//	err := mp3tag.Write("song.mp3", tag,
//	    mp3tag.WithBackup(".bak"),
//	    mp3tag.WithValidation(),
//	)
func Write(path string, tag *Tag, opts ...WriteOption) error { //nolint:gocyclo // Atomic file operations require sequential steps
	logging.Configure()

	// Apply options
	options := defaultWriteOptions()
	for _, opt := range opts {
		opt(options)
	}

	// Reject non-MP3 paths before touching the filesystem
	if err := ensureMP3(path); err != nil {
		return err
	}

	orig, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer orig.Close()

	stat, err := orig.Stat()
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	size := stat.Size()

	// Locate the old tag so its bytes can be skipped. An untagged file
	// is upgraded: a fresh v2.3 tag goes in front, nothing is skipped.
	sr := binary.NewSafeReader(orig, size, path)
	var skip int64
	h, err := id3.ParseHeader(sr)
	if err != nil {
		var noTag *types.NoTagError
		if !errors.As(err, &noTag) {
			return err
		}
		h = id3.Header{Version: 3}
		skip = 0
	} else {
		skip = id3.HeaderLen + int64(h.Size)
		if skip > size {
			// Declared size overruns the file; nothing follows the tag.
			skip = size
		}
	}

	// Create temp file in same directory as the target (for atomic rename)
	outputDir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(outputDir, ".mp3tag-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure cleanup on any error
	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	tagBytes, err := id3.EncodeTag(tempFile, tag, h, options.padding)
	if err != nil {
		return fmt.Errorf("write tag: %w", err)
	}

	// Copy the original audio bytes that followed the old tag
	audioBytes, err := io.Copy(tempFile, io.NewSectionReader(orig, skip, size-skip))
	if err != nil {
		return fmt.Errorf("copy audio data: %w", err)
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	// Close temp file before rename
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Handle backup option (rename original aside before replace)
	if options.backupSuffix != "" {
		if err := os.Rename(path, path+options.backupSuffix); err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
	}

	// Atomic rename temp -> target
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	// Mark success so defer doesn't clean up
	success = true

	log.Debug().
		Str("path", path).
		Int64("tag_bytes", tagBytes).
		Int64("audio_bytes", audioBytes).
		Msg("rewrote tag")

	// Handle preserveModTime option
	if options.preserveModTime {
		_ = os.Chtimes(path, stat.ModTime(), stat.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	// Handle validate option (re-read and compare every field)
	if options.validate {
		if err := validateWrittenFile(path, tag); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-reads the file and compares all six fields.
func validateWrittenFile(path string, want *Tag) error {
	written, err := Read(path)
	if err != nil {
		return fmt.Errorf("re-read: %w", err)
	}

	for _, name := range FieldNames() {
		got, _ := written.Field(name)
		expected, _ := want.Field(name)
		if got != expected {
			return fmt.Errorf("%s mismatch: got %q, want %q", name, got.Value, expected.Value)
		}
	}

	return nil
}
