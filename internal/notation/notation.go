// Package notation renders and parses chess moves in UCI and SAN (Standard
// Algebraic Notation), working entirely off the exported chess.Position and
// chess.Move API so it never needs core internals.
package notation

import (
	"fmt"
	"strings"

	"github.com/rookmate/chesscore"
)

// EncodeUCI returns a move's four or five character wire form, e.g. "e2e4"
// or "e7e8q".
func EncodeUCI(m chess.Move) string {
	return m.UCI()
}

// DecodeUCI resolves a UCI string against the position's legal moves. It
// does not trust the string's shape beyond matching an actual legal move,
// so castling, en passant, and promotion are all classified correctly
// without re-deriving them from the squares alone.
func DecodeUCI(p *chess.Position, s string) (chess.Move, error) {
	for _, m := range chess.GenerateLegalMoves(p) {
		if strings.EqualFold(m.UCI(), s) {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%w: %q has no matching legal move", chess.ErrInvalidMove, s)
}

// EncodeSAN renders m in Standard Algebraic Notation relative to p, which
// must be the position the move is played from (before MakeMove). It
// disambiguates by consulting the other legal moves that share the mover's
// piece kind and destination square.
func EncodeSAN(p *chess.Position, m chess.Move) string {
	if m.Kind == chess.CastleKing {
		return withCheckSuffix(p, m, "O-O")
	}
	if m.Kind == chess.CastleQueen {
		return withCheckSuffix(p, m, "O-O-O")
	}

	piece := p.PieceAt(m.From)
	var sb strings.Builder
	if piece.Kind != chess.Pawn {
		sb.WriteString(strings.ToUpper(piece.Kind.String()))
		sb.WriteString(disambiguate(p, m, piece))
	}

	if m.Kind.IsCapture() {
		if piece.Kind == chess.Pawn {
			sb.WriteString(m.From.File().String())
		}
		sb.WriteByte('x')
	}

	sb.WriteString(m.To.String())

	if pk := m.Kind.PromotionKind(); pk != chess.NoPieceKind {
		sb.WriteByte('=')
		sb.WriteString(strings.ToUpper(pk.String()))
	}

	return withCheckSuffix(p, m, sb.String())
}

// disambiguate returns the file, rank, or full origin square needed to tell
// m apart from any other legal move of the same piece kind landing on the
// same square, in the standard SAN preference order (file, then rank, then
// both).
func disambiguate(p *chess.Position, m chess.Move, piece chess.Piece) string {
	sameFile, sameRank, any := false, false, false
	for _, other := range chess.GenerateLegalMoves(p) {
		if other.To != m.To || other.From == m.From {
			continue
		}
		if p.PieceAt(other.From) != piece {
			continue
		}
		any = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !any:
		return ""
	case !sameFile:
		return m.From.File().String()
	case !sameRank:
		return m.From.Rank().String()
	default:
		return m.From.String()
	}
}

func withCheckSuffix(p *chess.Position, m chess.Move, san string) string {
	clone := p.Clone()
	clone.MakeMove(m)
	if !clone.IsKingAttacked(clone.Turn()) {
		return san
	}
	if len(chess.GenerateLegalMoves(clone)) == 0 {
		return san + "#"
	}
	return san + "+"
}

// DecodeSAN resolves a SAN string (with or without a trailing check/mate
// marker) against the position's legal moves by comparing against each
// candidate's own rendered SAN text.
func DecodeSAN(p *chess.Position, s string) (chess.Move, error) {
	trimmed := strings.TrimRight(s, "+#")
	for _, m := range chess.GenerateLegalMoves(p) {
		candidate := strings.TrimRight(EncodeSAN(p, m), "+#")
		if candidate == trimmed {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%w: %q has no matching legal move", chess.ErrInvalidMove, s)
}
