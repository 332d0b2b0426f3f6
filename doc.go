// Package mp3tag reads, edits, and rewrites ID3v2 metadata in MP3 files.
//
// The library covers the six classic text fields (title, artist, album,
// year, comment, genre) stored in ID3v2.3 frames, with a tolerant reader
// that accepts any ID3v2 revision and a writer that rebuilds the tag
// section atomically.
//
// # Quick Start
//
// Reading metadata:
//
//	tag, err := mp3tag.Read("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s - %s\n", tag.Artist.Or("N/A"), tag.Title.Or("N/A"))
//
// Changing one field:
//
//	err := mp3tag.Edit("song.mp3", mp3tag.FieldTitle, "New Title")
//
// Rewriting the whole tag:
//
//	tag.Set(mp3tag.FieldYear, "1997")
//	err := mp3tag.Write("song.mp3", tag, mp3tag.WithBackup(".bak"))
//
// # Philosophy
//
// mp3tag embodies three principles:
//
// 1. Graceful Degradation: A damaged tag returns the fields parsed so
// far, not an error; the damage is reported through debug logging. Use
// WithStrictParsing to opt into hard failures.
//
// 2. Original Preservation: Writes are atomic. The target file is
// replaced only by a fully written, synced temporary; any failure
// leaves the original byte-for-byte untouched.
//
// 3. Zero Surprises: Absent fields are distinguishable from empty ones,
// field order on disk is fixed, and the declared tag size always
// matches what was written.
//
// # Error Handling
//
// Failures carry typed errors, discriminated with errors.As:
//
//   - *UnsupportedFormatError: the path does not name an .mp3 file
//   - *TruncatedHeaderError: the file is too short to hold a tag header
//   - *NoTagError: the file has no ID3v2 tag (a normal state, not damage)
//   - *UnknownFieldError: a field name outside the six supported ones
//   - *CorruptedFileError: strict parsing hit a malformed frame
//
// I/O failures are wrapped with %w and respond to errors.Is against
// os.ErrNotExist and friends.
//
// # Concurrency
//
// Read, Write, and Edit are synchronous and self-contained; distinct
// files may be processed from distinct goroutines freely. ReadMany
// parses many files in parallel with bounded concurrency:
//
//	tags, err := mp3tag.ReadMany(ctx, paths...)
//
// Concurrent writes to the same path are not coordinated.
//
// # Logging
//
// The library is silent by default. Set MP3TAG_LOG_LEVEL=debug to see
// per-file parse and write events on stderr.
package mp3tag
