package mp3tag

// WriteOption configures behavior when writing MP3 files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	err := mp3tag.Write("song.mp3", tag,
//	    mp3tag.WithBackup(".bak"),
//	    mp3tag.WithValidation(),
//	)
type WriteOption func(*writeOptions)

// writeOptions holds configuration for writing files.
type writeOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
	padding         int    // Zero bytes appended after the frames
}

// defaultWriteOptions returns the default configuration for writing.
func defaultWriteOptions() *writeOptions {
	return &writeOptions{
		backupSuffix:    "",
		validate:        false,
		preserveModTime: false,
		padding:         0,
	}
}

// WithBackup keeps a copy of the original file before replacing it.
//
// The backup file gets the suffix appended to the original filename.
// For example, WithBackup(".bak") preserves "song.mp3" as
// "song.mp3.bak" before the rewrite lands.
//
// If the backup file already exists, it is overwritten.
//
// Example:
//
//	err := mp3tag.Write("song.mp3", tag, mp3tag.WithBackup(".bak"))
func WithBackup(suffix string) WriteOption {
	return func(o *writeOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify integrity.
//
// After the rewrite, the file is parsed again and all six fields are
// compared against the record that was written. This adds a second read
// but confirms the new tag is readable and faithful.
//
// Example:
//
//	err := mp3tag.Write("song.mp3", tag, mp3tag.WithValidation())
func WithValidation() WriteOption {
	return func(o *writeOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// By default the rewrite updates the file's modification time to now.
// This option restores the original timestamp afterwards, so metadata
// edits do not disturb tools that sort or sync by mtime.
//
// Example:
//
//	err := mp3tag.Write("song.mp3", tag, mp3tag.WithPreserveModTime())
func WithPreserveModTime() WriteOption {
	return func(o *writeOptions) {
		o.preserveModTime = true
	}
}

// WithPadding appends n zero bytes after the emitted frames.
//
// Padding is counted in the tag's declared size. Taggers that rewrite
// in place can grow a tag into reserved padding without moving the
// audio data; this library always rewrites the whole file but will
// reserve the space for tools that do. Default is 0; negative values
// are treated as 0.
//
// Example:
//
//	err := mp3tag.Write("song.mp3", tag, mp3tag.WithPadding(256))
func WithPadding(n int) WriteOption {
	return func(o *writeOptions) {
		if n < 0 {
			n = 0
		}
		o.padding = n
	}
}
