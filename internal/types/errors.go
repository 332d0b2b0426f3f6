package types

import "fmt"

// OutOfBoundsError is returned when a read would extend beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedFormatError is returned when a path fails the MP3 naming check.
//
// The check is extension-only and happens before any file I/O, so this
// error never reflects the file's actual content.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// TruncatedHeaderError is returned when a file holds fewer than the 10
// bytes an ID3v2 tag header requires.
type TruncatedHeaderError struct {
	Path string
	Size int64
}

func (e *TruncatedHeaderError) Error() string {
	return fmt.Sprintf("%s: truncated tag header: file is %d bytes, need 10", e.Path, e.Size)
}

// NoTagError is returned when the first bytes of a file are not the "ID3"
// magic. This is the normal outcome for untagged MP3 files, not a sign of
// corruption.
type NoTagError struct {
	Path string
}

func (e *NoTagError) Error() string {
	return fmt.Sprintf("%s: no ID3v2 tag found", e.Path)
}

// UnknownFieldError is returned when an edit names a field outside the six
// recognized ones. The target file is left untouched.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Name)
}

// CorruptedFileError is returned under strict parsing when the frame
// section cannot be walked to its declared end.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted tag at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// Warning represents a non-fatal issue tolerated during parsing.
//
// Warnings cover problems that stop frame iteration early without
// invalidating what was already parsed:
//   - a frame header or body overrunning the file
//   - a declared tag size extending past the end of the file
//
// By default warnings are only logged; strict parsing promotes the first
// one to a *CorruptedFileError.
type Warning struct {
	// Stage of parsing where the issue was found ("frames")
	Stage string

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
