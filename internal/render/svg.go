// Package render draws a Position as an SVG board diagram, the debug
// complement to Position.Draw's plain-text board.
package render

import (
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/rookmate/chesscore"
)

var (
	lightSquare = "#f0d9b5"
	darkSquare  = "#b58863"
	whiteFill   = "#fafafa"
	blackFill   = "#202020"
)

// Board writes an SVG rendering of p to w. squareSize is the pixel width of
// one square; the board is always 8 squares on a side.
func Board(w io.Writer, p *chess.Position, squareSize int) {
	dim := squareSize * 8
	canvas := svg.New(w)
	canvas.Start(dim, dim)
	defer canvas.End()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize
			fill := lightSquare
			if (rank+file)%2 == 0 {
				fill = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			sq := chess.NewSquare(chess.File(file), chess.Rank(rank))
			piece := p.PieceAt(sq)
			if piece == chess.NoPiece {
				continue
			}
			textFill := blackFill
			if piece.Color == chess.White {
				textFill = whiteFill
			}
			label := pieceLabel(piece)
			canvas.Text(x+squareSize/2, y+squareSize*2/3, label,
				"text-anchor:middle;font-size:"+strconv.Itoa(squareSize*6/10)+"px;fill:"+textFill)
		}
	}
}

func pieceLabel(p chess.Piece) string {
	glyphs := map[chess.PieceKind]string{
		chess.Pawn:   "P",
		chess.Knight: "N",
		chess.Bishop: "B",
		chess.Rook:   "R",
		chess.Queen:  "Q",
		chess.King:   "K",
	}
	return glyphs[p.Kind]
}

