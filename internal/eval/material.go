// Package eval scores positions and picks a move by fixed-depth negamax. It
// consumes only the core's exported surface (GenerateLegalMoves, MakeMove,
// UnmakeMove, IsKingAttacked, Turn, ByPiece, Popcount) and never reaches into
// board internals.
package eval

import "github.com/rookmate/chesscore"

// pieceValue is centipawn material value, the classical 1/3/3/5/9 scale.
var pieceValue = map[chess.PieceKind]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   0,
}

// Material returns the position's score in centipawns from the side to
// move's point of view: positive favors the mover.
func Material(p *chess.Position) int {
	score := 0
	for _, kind := range []chess.PieceKind{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen} {
		white := chess.Popcount(p.ByPiece(chess.Piece{Color: chess.White, Kind: kind}))
		black := chess.Popcount(p.ByPiece(chess.Piece{Color: chess.Black, Kind: kind}))
		score += (white - black) * pieceValue[kind]
	}
	if p.Turn() == chess.Black {
		return -score
	}
	return score
}

const (
	mateScore = 1_000_000
	drawScore = 0
)

// Negamax searches to a fixed depth and returns the best move and its score
// from the side to move's point of view. No move ordering, no transposition
// table, no time control: fixed-depth brute force, the baseline a move
// ordering or pruning layer would later sit on top of.
func Negamax(p *chess.Position, depth int) (chess.Move, int) {
	moves := chess.GenerateLegalMoves(p)
	if len(moves) == 0 {
		if p.IsKingAttacked(p.Turn()) {
			return chess.Move{}, -mateScore
		}
		return chess.Move{}, drawScore
	}

	best := moves[0]
	bestScore := -mateScore - 1
	for _, m := range moves {
		undo := p.MakeMove(m)
		score := -negamax(p, depth-1)
		p.UnmakeMove(undo)
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best, bestScore
}

func negamax(p *chess.Position, depth int) int {
	moves := chess.GenerateLegalMoves(p)
	if len(moves) == 0 {
		if p.IsKingAttacked(p.Turn()) {
			return -mateScore
		}
		return drawScore
	}
	if depth == 0 {
		return Material(p)
	}
	best := -mateScore - 1
	for _, m := range moves {
		undo := p.MakeMove(m)
		score := -negamax(p, depth-1)
		p.UnmakeMove(undo)
		if score > best {
			best = score
		}
	}
	return best
}
