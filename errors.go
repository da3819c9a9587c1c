package chess

import "errors"

// Error taxonomy for the core. Construction errors (FEN parsing, algebraic
// square parsing) are returned to the caller; once a Position is validly
// constructed, GenerateLegalMoves and MakeMove are total and never error.
var (
	ErrInvalidFenFormat  = errors.New("chess: invalid FEN format")
	ErrInvalidPieceChar  = errors.New("chess: invalid piece character")
	ErrInvalidRankCount  = errors.New("chess: invalid rank count")
	ErrInvalidFileCount  = errors.New("chess: invalid file count")
	ErrInvalidSquare     = errors.New("chess: invalid square")
	ErrInvalidMove       = errors.New("chess: invalid move")
)
