package hilite

import (
	"bufio"
	"fmt"
	"io"
)

// Render writes src to w with a start marker before the first byte of every
// segment and a reset marker after its last byte. Bytes outside segments are
// copied unchanged. segs must be ordered and non-overlapping, as produced by
// Segments.
func Render(w io.Writer, src []byte, segs []Segment) error {
	bw := bufio.NewWriter(w)
	next := 0
	for i, c := range src {
		if next < len(segs) && i == segs[next].Start {
			bw.WriteString(marker(segs[next].Color))
		}
		bw.WriteByte(c)
		if next < len(segs) && i == segs[next].End {
			bw.WriteString(ResetMarker)
			next++
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Highlight classifies src and renders it to w with the default palette.
func Highlight(w io.Writer, src []byte) error {
	return Render(w, src, Segments(Classify(src), DefaultPalette))
}
