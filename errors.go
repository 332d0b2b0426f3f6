package mp3tag

import "github.com/sharananure/MP3TagEditor/internal/types"

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// TruncatedHeaderError is an alias to types.TruncatedHeaderError.
// Re-exporting from internal/types to maintain public API.
type TruncatedHeaderError = types.TruncatedHeaderError

// NoTagError is an alias to types.NoTagError.
// Re-exporting from internal/types to maintain public API.
type NoTagError = types.NoTagError

// UnknownFieldError is an alias to types.UnknownFieldError.
// Re-exporting from internal/types to maintain public API.
type UnknownFieldError = types.UnknownFieldError

// CorruptedFileError is an alias to types.CorruptedFileError.
// Re-exporting from internal/types to maintain public API.
type CorruptedFileError = types.CorruptedFileError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning
