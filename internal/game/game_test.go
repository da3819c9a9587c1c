package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rookmate/chesscore"
)

func TestNewGameIsOngoing(t *testing.T) {
	g := New()
	assert.Equal(t, Ongoing, g.Outcome())
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	g := New()
	err := g.Play(chess.Move{From: chess.E2, To: chess.E5, Kind: chess.Quiet})
	assert.Error(t, err)
}

func TestPlayAppliesLegalMove(t *testing.T) {
	g := New()
	m := chess.Move{From: chess.E2, To: chess.E4, Kind: chess.DoublePawnPush}
	require.NoError(t, g.Play(m))
	assert.Len(t, g.Moves(), 1)
	assert.Equal(t, chess.Piece{Color: chess.White, Kind: chess.Pawn}, g.Position().PieceAt(chess.E4))
}

func TestOutcomeDetectsCheckmate(t *testing.T) {
	g, err := FromFEN("6k1/8/8/8/8/8/PPP5/K2r4 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Checkmate, g.Outcome())
}

func TestOutcomeDetectsStalemate(t *testing.T) {
	g, err := FromFEN("8/8/8/8/8/8/2q5/K7 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Stalemate, g.Outcome())
}
