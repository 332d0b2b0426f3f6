package mp3tag

// Option configures behavior when reading MP3 files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := mp3tag.Read("song.mp3",
//	    mp3tag.WithStrictParsing(),
//	)
type Option func(*readOptions)

// readOptions holds configuration for reading files.
type readOptions struct {
	strictParsing bool // Fail on any warning
}

// defaultReadOptions returns the default configuration.
func defaultReadOptions() *readOptions {
	return &readOptions{
		strictParsing: false,
	}
}

// WithStrictParsing treats any parse warning as a fatal error.
//
// By default, a malformed frame stops iteration quietly: the fields
// parsed before it are returned and the problem is recorded as a
// warning. With strict parsing enabled, the first such problem becomes
// a *CorruptedFileError carrying the offending offset.
//
// Example:
//
//	tag, err := mp3tag.Read("song.mp3", mp3tag.WithStrictParsing())
//	// err != nil if any frame is damaged
func WithStrictParsing() Option {
	return func(o *readOptions) {
		o.strictParsing = true
	}
}
