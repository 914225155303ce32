package board

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	svgSquareSize = 45
	svgBoardSize  = 8 * svgSquareSize
)

var svgGlyphs = [2][7]string{
	White: {Pawn: "♙", Knight: "♘", Bishop: "♗", Rook: "♖", Queen: "♕", King: "♔"},
	Black: {Pawn: "♟", Knight: "♞", Bishop: "♝", Rook: "♜", Queen: "♛", King: "♚"},
}

// WriteSVG renders the position as an SVG board, rank 8 at the top and White
// at the bottom.
func (b *Board) WriteSVG(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(svgBoardSize, svgBoardSize)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := file * svgSquareSize
			y := (7 - rank) * svgSquareSize
			fill := "fill:rgb(240,217,181)"
			if (file+rank)%2 == 0 {
				fill = "fill:rgb(181,136,99)"
			}
			canvas.Rect(x, y, svgSquareSize, svgSquareSize, fill)

			sq := squareAt(file, rank)
			pt := b.pieces[sq]
			if pt == NoPieceType {
				continue
			}
			c, _ := b.SideAt(sq)
			canvas.Text(x+svgSquareSize/2, y+svgSquareSize*3/4, svgGlyphs[c][pt],
				"text-anchor:middle;font-size:34px")
		}
	}
	canvas.End()
}
