// Package game tracks a single line of play on top of the core: the
// position, the move history, and whether the game has ended by
// checkmate or stalemate. It deliberately does not detect threefold
// repetition, the fifty/seventy-five move rules, or insufficient material —
// those are draw conditions the position engine itself never evaluates.
package game

import "github.com/rookmate/chesscore"

// Outcome is how, if at all, a Game has ended.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Game is a position plus the moves played to reach it.
type Game struct {
	position *chess.Position
	moves    []chess.Move
}

// New starts a game from the standard opening position.
func New() *Game {
	return &Game{position: chess.StartingPosition()}
}

// FromFEN starts a game from an arbitrary position.
func FromFEN(fen string) (*Game, error) {
	p, err := chess.NewFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{position: p}, nil
}

// Position returns the current position.
func (g *Game) Position() *chess.Position { return g.position }

// Moves returns the moves played so far, in order.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// Play applies m, which must be legal in the current position.
func (g *Game) Play(m chess.Move) error {
	legal := chess.GenerateLegalMoves(g.position)
	found := false
	for _, candidate := range legal {
		if candidate == m {
			found = true
			break
		}
	}
	if !found {
		return chess.ErrInvalidMove
	}
	g.position.MakeMove(m)
	g.moves = append(g.moves, m)
	return nil
}

// Outcome reports whether the game has ended.
func (g *Game) Outcome() Outcome {
	if len(chess.GenerateLegalMoves(g.position)) > 0 {
		return Ongoing
	}
	if g.position.IsKingAttacked(g.position.Turn()) {
		return Checkmate
	}
	return Stalemate
}
