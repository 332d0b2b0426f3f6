package id3

import (
	"fmt"
	"io"

	"github.com/sharananure/MP3TagEditor/internal/binary"
	"github.com/sharananure/MP3TagEditor/internal/types"
)

// FrameSectionLen returns the byte length of the frame section EncodeTag
// would emit for tag, excluding padding: one frame per present field,
// each FrameHeaderLen bytes plus the value's raw bytes.
func FrameSectionLen(tag *types.Tag) int64 {
	var n int64
	for _, ff := range frameFields {
		if f := *ff.sel(tag); f.Present {
			n += FrameHeaderLen + int64(len(f.Value))
		}
	}
	return n
}

// EncodeTag serializes tag into w as a complete ID3v2 tag block: the
// 10-byte header, one frame per present field in fixed order (title,
// artist, album, year, comment, genre), then padding zero bytes.
//
// The header reuses h's version and flag bytes, but its size field is
// always recomputed from the emitted frame bytes plus padding, so the
// declared size matches what was actually written. Returns the total
// number of bytes written.
func EncodeTag(w io.Writer, tag *types.Tag, h Header, padding int) (int64, error) {
	frameLen := FrameSectionLen(tag)
	total := frameLen + int64(padding)
	if total > MaxTagSize {
		return 0, fmt.Errorf("frame section of %d bytes exceeds the sync-safe size limit (%d)", total, int64(MaxTagSize))
	}

	sw := binary.NewSafeWriter(w)

	if err := sw.WriteString(Magic); err != nil {
		return sw.Offset(), fmt.Errorf("write tag magic: %w", err)
	}
	if err := binary.Write[uint8](sw, h.Version); err != nil {
		return sw.Offset(), fmt.Errorf("write version byte: %w", err)
	}
	if err := binary.Write[uint8](sw, h.Revision); err != nil {
		return sw.Offset(), fmt.Errorf("write revision byte: %w", err)
	}
	if err := binary.Write[uint8](sw, h.Flags); err != nil {
		return sw.Offset(), fmt.Errorf("write flag byte: %w", err)
	}
	if err := sw.WriteBytes(encodeSynchsafe(uint32(total))); err != nil {
		return sw.Offset(), fmt.Errorf("write tag size: %w", err)
	}

	for _, ff := range frameFields {
		f := *ff.sel(tag)
		if !f.Present {
			continue
		}
		if err := writeFrame(sw, ff.id, f.Value); err != nil {
			return sw.Offset(), fmt.Errorf("write frame %s: %w", ff.id, err)
		}
	}

	if padding > 0 {
		if err := sw.WriteBytes(make([]byte, padding)); err != nil {
			return sw.Offset(), fmt.Errorf("write padding: %w", err)
		}
	}

	return sw.Offset(), nil
}

// writeFrame emits one frame: identifier, big-endian content length, two
// zero flag bytes, then the value's raw bytes.
func writeFrame(sw *binary.SafeWriter, id, value string) error {
	if err := sw.WriteString(id); err != nil {
		return err
	}
	if err := binary.Write[uint32](sw, uint32(len(value))); err != nil {
		return err
	}
	if err := binary.Write[uint16](sw, 0); err != nil {
		return err
	}
	return sw.WriteString(value)
}
