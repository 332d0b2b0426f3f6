package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sharananure/MP3TagEditor/internal/binary"
	"github.com/sharananure/MP3TagEditor/internal/id3"
)

// Useful test tool to confirm what the frame walker actually sees in a file.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: id3-dump <file.mp3>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	sr := binary.NewSafeReader(f, stat.Size(), os.Args[1])

	h, err := id3.ParseHeader(sr)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (flags: %#02x, declared size: %d, file size: %d)\n",
		h.VersionString(), h.Flags, h.Size, stat.Size())

	res := id3.WalkFrames(sr, h, func(fr id3.Frame) {
		fmt.Printf("  %s (size: %d, flags: %#04x, offset: %d) %q\n",
			fr.ID, fr.Size, fr.Flags, fr.Offset, preview(fr.Data))
	})

	switch {
	case res.Padding:
		fmt.Printf("padding from offset %d\n", res.End)
	case len(res.Warnings) > 0:
		for _, w := range res.Warnings {
			fmt.Printf("stopped: %s\n", w)
		}
	default:
		fmt.Printf("tag end at offset %d\n", res.End)
	}
}

// preview clips frame content to a short printable snippet.
func preview(data []byte) string {
	const max = 40
	s := string(data)
	if len(s) > max {
		s = s[:max] + "..."
	}
	return strings.Map(func(r rune) rune {
		if r < 32 || r > 126 {
			return '.'
		}
		return r
	}, s)
}
