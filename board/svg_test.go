package board

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	New().WriteSVG(&buf)
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Fatalf("expected 64 square rects, found %d", got)
	}
	for glyph, want := range map[string]int{
		"♔": 1, "♚": 1, "♕": 1, "♛": 1, "♙": 8, "♟": 8, "♖": 2, "♜": 2,
	} {
		if got := strings.Count(out, glyph); got != want {
			t.Errorf("glyph %s: found %d, want %d", glyph, got, want)
		}
	}
}

func TestWriteSVGEmptyBoard(t *testing.T) {
	b := mustParse(t, "8/8/8/4k3/8/8/8/4K3 w - - 0 1")
	var buf bytes.Buffer
	b.WriteSVG(&buf)
	out := buf.String()
	if strings.Count(out, "<text") != 2 {
		t.Fatal("only the two kings should be drawn")
	}
}
