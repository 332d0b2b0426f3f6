// Package id3 implements the ID3v2 tag codec: parsing the sync-safe tag
// header and its frame sequence into a types.Tag, and serializing a
// types.Tag back into a complete tag block.
package id3

import (
	"errors"
	"fmt"

	"github.com/sharananure/MP3TagEditor/internal/binary"
	"github.com/sharananure/MP3TagEditor/internal/types"
)

const (
	// Magic is the 3-byte marker opening every ID3v2 tag.
	Magic = "ID3"

	// HeaderLen is the fixed tag header length: magic, two version
	// bytes, one flag byte, and the 4-byte sync-safe size.
	HeaderLen = 10

	// FrameHeaderLen is the fixed frame header length: 4-byte
	// identifier, 4-byte big-endian content length, 2 flag bytes.
	FrameHeaderLen = 10

	// MaxTagSize is the largest frame-section length a sync-safe size
	// field can express (28 usable bits).
	MaxTagSize = 1<<28 - 1
)

// Header is the fixed 10-byte header governing one frame sequence.
type Header struct {
	Version  byte   // major version byte (3 for ID3v2.3)
	Revision byte   // minor version byte
	Flags    byte   // ignored on read, preserved on rewrite
	Size     uint32 // declared frame-section length, sync-safe decoded
}

// VersionString formats the header's version bytes the way they are
// displayed: "ID3v2.3", or "ID3v2.3.1" when the revision byte is set.
func (h Header) VersionString() string {
	if h.Revision == 0 {
		return fmt.Sprintf("ID3v2.%d", h.Version)
	}
	return fmt.Sprintf("ID3v2.%d.%d", h.Version, h.Revision)
}

// ParseHeader reads and validates the tag header at the start of the
// file.
//
// Files shorter than HeaderLen bytes fail with *types.TruncatedHeaderError;
// files that do not open with the "ID3" magic fail with *types.NoTagError.
func ParseHeader(sr *binary.SafeReader) (Header, error) {
	buf := make([]byte, HeaderLen)
	if err := sr.ReadAt(buf, 0, "tag header"); err != nil {
		var oob *types.OutOfBoundsError
		if errors.As(err, &oob) {
			return Header{}, &types.TruncatedHeaderError{Path: sr.Path(), Size: sr.Size()}
		}
		return Header{}, err
	}

	if string(buf[0:3]) != Magic {
		return Header{}, &types.NoTagError{Path: sr.Path()}
	}

	return Header{
		Version:  buf[3],
		Revision: buf[4],
		Flags:    buf[5],
		Size:     decodeSynchsafe(buf[6:10]),
	}, nil
}

// decodeSynchsafe decodes a 4-byte sync-safe integer (7 usable bits per
// byte, MSB of each byte masked off).
func decodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// encodeSynchsafe encodes v as a 4-byte sync-safe integer. Values above
// MaxTagSize lose their high bits; callers bound v first.
func encodeSynchsafe(v uint32) []byte {
	return []byte{
		byte(v >> 21 & 0x7F),
		byte(v >> 14 & 0x7F),
		byte(v >> 7 & 0x7F),
		byte(v & 0x7F),
	}
}

// Frame is one complete frame encountered while walking a tag.
type Frame struct {
	Offset int64  // file offset of the frame header
	ID     string // 4-byte identifier (e.g. "TIT2")
	Size   uint32 // declared content length
	Flags  uint16 // frame flags, ignored
	Data   []byte // content bytes
}

// WalkResult describes where and why frame iteration stopped.
type WalkResult struct {
	// End is the offset at which iteration stopped.
	End int64

	// Padding reports whether a null-leading identifier ended the walk.
	Padding bool

	// Warnings describe early stops caused by data that could not be
	// fully read. Empty when the walk reached padding or the tag end.
	Warnings []types.Warning
}

// WalkFrames iterates the frame section declared by h, invoking fn for
// each complete frame.
//
// Iteration ends at the declared tag end, at padding (a frame identifier
// whose leading byte is null), or at the first frame whose header or
// content cannot be fully read. Early stops are recorded as warnings,
// never errors: whatever was walked before the stop stands. Content
// reads are bounded by the file size, not the declared tag end, so a
// frame may legitimately cross the declared end; the loop condition
// stops iteration afterwards.
func WalkFrames(sr *binary.SafeReader, h Header, fn func(Frame)) WalkResult {
	res := WalkResult{}
	tagEnd := int64(HeaderLen) + int64(h.Size)
	offset := int64(HeaderLen)

	for offset < tagEnd {
		idBuf := make([]byte, 4)
		if err := sr.ReadAt(idBuf, offset, "frame id"); err != nil {
			res.Warnings = append(res.Warnings, types.Warning{
				Stage:   "frames",
				Message: "frame header runs past end of file",
				Offset:  offset,
			})
			break
		}

		length, err := binary.Read[uint32](sr, offset+4, "frame length")
		if err != nil {
			res.Warnings = append(res.Warnings, types.Warning{
				Stage:   "frames",
				Message: "frame header runs past end of file",
				Offset:  offset,
			})
			break
		}

		flags, err := binary.Read[uint16](sr, offset+8, "frame flags")
		if err != nil {
			res.Warnings = append(res.Warnings, types.Warning{
				Stage:   "frames",
				Message: "frame header runs past end of file",
				Offset:  offset,
			})
			break
		}

		if idBuf[0] == 0 {
			res.Padding = true
			break
		}

		id := string(idBuf)
		dataOff := offset + FrameHeaderLen

		// Bound the content read by the real file size before
		// allocating; a corrupt length must not drive allocation.
		if int64(length) > sr.Size()-dataOff {
			res.Warnings = append(res.Warnings, types.Warning{
				Stage:   "frames",
				Message: fmt.Sprintf("frame %s content (%d bytes) runs past end of file", id, length),
				Offset:  offset,
			})
			break
		}

		var data []byte
		if length > 0 {
			data = make([]byte, length)
			if err := sr.ReadAt(data, dataOff, fmt.Sprintf("frame %s content", id)); err != nil {
				res.Warnings = append(res.Warnings, types.Warning{
					Stage:   "frames",
					Message: fmt.Sprintf("frame %s content unreadable: %v", id, err),
					Offset:  offset,
				})
				break
			}
		}

		fn(Frame{
			Offset: offset,
			ID:     id,
			Size:   length,
			Flags:  flags,
			Data:   data,
		})

		offset += FrameHeaderLen + int64(length)
	}

	res.End = offset
	return res
}

// frameFields maps recognized frame identifiers to Tag fields, in the
// order the writer emits them.
var frameFields = []struct {
	id  string
	sel func(*types.Tag) *types.Field
}{
	{"TIT2", func(t *types.Tag) *types.Field { return &t.Title }},
	{"TPE1", func(t *types.Tag) *types.Field { return &t.Artist }},
	{"TALB", func(t *types.Tag) *types.Field { return &t.Album }},
	{"TYER", func(t *types.Tag) *types.Field { return &t.Year }},
	{"COMM", func(t *types.Tag) *types.Field { return &t.Comment }},
	{"TCON", func(t *types.Tag) *types.Field { return &t.Genre }},
}

// fieldFor returns the Tag field a frame identifier maps to, or nil for
// unrecognized identifiers.
func fieldFor(tag *types.Tag, id string) *types.Field {
	for _, ff := range frameFields {
		if ff.id == id {
			return ff.sel(tag)
		}
	}
	return nil
}

// ParseTag parses the tag at the start of the file.
//
// Unknown frames are consumed and discarded. A recognized frame seen
// more than once overwrites the earlier value (last frame wins, an
// explicit policy). Corrupt frame data mid-tag stops iteration without
// failing the parse: the fields collected so far are returned, with
// warnings describing the stop. A tag whose frame section is empty is a
// valid result carrying only the version.
func ParseTag(sr *binary.SafeReader) (*types.Tag, []types.Warning, error) {
	h, err := ParseHeader(sr)
	if err != nil {
		return nil, nil, err
	}

	tag := &types.Tag{Version: h.VersionString()}
	res := WalkFrames(sr, h, func(f Frame) {
		if field := fieldFor(tag, f.ID); field != nil {
			*field = types.NewField(string(f.Data))
		}
	})

	return tag, res.Warnings, nil
}
