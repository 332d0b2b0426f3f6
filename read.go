package mp3tag

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/sharananure/MP3TagEditor/internal/binary"
	"github.com/sharananure/MP3TagEditor/internal/id3"
	"github.com/sharananure/MP3TagEditor/internal/logging"
	"github.com/sharananure/MP3TagEditor/internal/types"
)

// Read opens an MP3 file and parses its ID3v2 tag.
//
// The returned Tag carries the tag's version string plus the six
// recognized fields. A field whose frame does not appear in the file is
// absent; check Field.Present or use Field.Or to render it.
//
// Damaged tags degrade gracefully: parsing stops at the first malformed
// frame and the fields collected so far are returned without error. Use
// WithStrictParsing to turn such damage into a *CorruptedFileError.
//
// Files without any ID3v2 tag return *NoTagError. Files too short to
// hold a tag header return *TruncatedHeaderError. Paths without the
// .mp3 suffix return *UnsupportedFormatError before any I/O happens.
//
// Example:
//
//	tag, err := mp3tag.Read("song.mp3")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s - %s\n", tag.Artist.Or("N/A"), tag.Title.Or("N/A"))
func Read(path string, opts ...Option) (*Tag, error) {
	logging.Configure()

	// Apply options
	options := defaultReadOptions()
	for _, opt := range opts {
		opt(options)
	}

	// Reject non-MP3 paths before touching the filesystem
	if err := ensureMP3(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return readFrom(f, stat.Size(), path, options)
}

// readFrom parses a tag from an io.ReaderAt (internal, for testing).
func readFrom(r io.ReaderAt, size int64, path string, options *readOptions) (*Tag, error) {
	sr := binary.NewSafeReader(r, size, path)

	tag, warnings, err := id3.ParseTag(sr)
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		log.Debug().
			Str("path", path).
			Str("stage", w.Stage).
			Int64("offset", w.Offset).
			Msg(w.Message)
	}
	log.Debug().
		Str("path", path).
		Str("version", tag.Version).
		Int("warnings", len(warnings)).
		Msg("parsed tag")

	if options.strictParsing && len(warnings) > 0 {
		w := warnings[0]
		return nil, &types.CorruptedFileError{Path: path, Reason: w.Message, Offset: w.Offset}
	}

	return tag, nil
}

// ReadContext reads a tag with context support for cancellation.
//
// This is a thin wrapper around Read() that checks the context before
// starting. A single file parses in well under a millisecond, so the
// check-then-read granularity is enough in practice.
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	tag, err := mp3tag.ReadContext(ctx, "song.mp3")
func ReadContext(ctx context.Context, path string, opts ...Option) (*Tag, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Read(path, opts...)
}

// ReadMany reads the tags of multiple MP3 files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. The first
// failure cancels the remaining reads and is returned; every error
// already names the file it came from.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	tags, err := mp3tag.ReadMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, tag := range tags {
//		fmt.Printf("%s: %s\n", paths[i], tag.Title.Or("N/A"))
//	}
func ReadMany(ctx context.Context, paths ...string) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*Tag, len(paths))

	for i, path := range paths {
		i, path := i, path // Capture loop variables
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tag, err := Read(path)
			if err != nil {
				return err
			}

			results[i] = tag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
