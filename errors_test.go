package mp3tag

import (
	"strings"
	"testing"
)

func TestOutOfBoundsError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OutOfBoundsError
		contains []string
	}{
		{
			name: "offset beyond file size",
			err: &OutOfBoundsError{
				Path:   "test.mp3",
				Offset: 1000,
				Length: 4,
				Size:   500,
				What:   "frame header",
			},
			contains: []string{"test.mp3", "offset 1000 out of bounds", "file size: 500", "frame header"},
		},
		{
			name: "read would exceed file size",
			err: &OutOfBoundsError{
				Path:   "audio.mp3",
				Offset: 100,
				Length: 50,
				Size:   120,
				What:   "frame content",
			},
			contains: []string{"audio.mp3", "read of 50 bytes", "offset 100", "exceed file size 120", "frame content"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestUnsupportedFormatError_Error(t *testing.T) {
	err := &UnsupportedFormatError{
		Path:   "test.wav",
		Reason: `extension ".wav" is not .mp3`,
	}

	msg := err.Error()
	if !strings.Contains(msg, "test.wav") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "unsupported format") {
		t.Errorf("error should contain 'unsupported format', got: %s", msg)
	}
	if !strings.Contains(msg, `".wav"`) {
		t.Errorf("error should contain the rejected extension, got: %s", msg)
	}
}

func TestTruncatedHeaderError_Error(t *testing.T) {
	err := &TruncatedHeaderError{Path: "tiny.mp3", Size: 3}

	msg := err.Error()
	if !strings.Contains(msg, "tiny.mp3") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "truncated tag header") {
		t.Errorf("error should contain 'truncated tag header', got: %s", msg)
	}
	if !strings.Contains(msg, "3 bytes") {
		t.Errorf("error should contain the actual size, got: %s", msg)
	}
}

func TestNoTagError_Error(t *testing.T) {
	err := &NoTagError{Path: "raw.mp3"}

	msg := err.Error()
	if !strings.Contains(msg, "raw.mp3") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "no ID3v2 tag") {
		t.Errorf("error should contain 'no ID3v2 tag', got: %s", msg)
	}
}

func TestUnknownFieldError_Error(t *testing.T) {
	err := &UnknownFieldError{Name: "publisher"}

	msg := err.Error()
	if !strings.Contains(msg, `"publisher"`) {
		t.Errorf("error should contain the field name, got: %s", msg)
	}
	if !strings.Contains(msg, "unknown field") {
		t.Errorf("error should contain 'unknown field', got: %s", msg)
	}
}

func TestCorruptedFileError_Error(t *testing.T) {
	err := &CorruptedFileError{
		Path:   "broken.mp3",
		Offset: 256,
		Reason: "frame content runs past end of file",
	}

	msg := err.Error()
	if !strings.Contains(msg, "broken.mp3") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "offset 256") {
		t.Errorf("error should contain offset, got: %s", msg)
	}
	if !strings.Contains(msg, "frame content runs past end of file") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
}

func TestWarning_String(t *testing.T) {
	withOffset := Warning{Stage: "frames", Message: "frame header runs past end of file", Offset: 42}
	if got := withOffset.String(); !strings.Contains(got, "offset 42") || !strings.Contains(got, "frames") {
		t.Errorf("warning string missing stage or offset: %q", got)
	}

	noOffset := Warning{Stage: "header", Message: "declared size past end of file"}
	if got := noOffset.String(); strings.Contains(got, "offset") {
		t.Errorf("warning without offset should not mention one: %q", got)
	}
}
