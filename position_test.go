package chess

import "testing"

func TestStartingPositionInvariants(t *testing.T) {
	p := StartingPosition()
	if p.Turn() != White {
		t.Error("white moves first")
	}
	if Popcount(p.Occupied()) != 32 {
		t.Errorf("expected 32 occupied squares, got %d", Popcount(p.Occupied()))
	}
	if p.KingSquare(White) != E1 {
		t.Errorf("white king should start on e1, got %v", p.KingSquare(White))
	}
	if p.KingSquare(Black) != E8 {
		t.Errorf("black king should start on e8, got %v", p.KingSquare(Black))
	}
	for _, flag := range []CastleRights{WhiteKingSide, WhiteQueenSide, BlackKingSide, BlackQueenSide} {
		if !p.Castling().has(flag) {
			t.Errorf("starting position should have castling flag %v set", flag)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := StartingPosition()
	clone := p.Clone()

	undo := p.MakeMove(Move{From: E2, To: E4, Kind: DoublePawnPush})
	defer p.UnmakeMove(undo)

	if clone.PieceAt(E2) == NoPiece {
		t.Error("mutating p should not affect clone")
	}
	if clone.PieceAt(E4) != NoPiece {
		t.Error("clone should not see the pawn's new square")
	}
}

func TestMakeUnmakeRestoresExactState(t *testing.T) {
	p := StartingPosition()
	before := p.FEN()

	undo := p.MakeMove(Move{From: G1, To: F3, Kind: Quiet})
	if p.FEN() == before {
		t.Fatal("MakeMove should have changed the position")
	}
	p.UnmakeMove(undo)
	if got := p.FEN(); got != before {
		t.Errorf("UnmakeMove did not restore state: got %q, want %q", got, before)
	}
}
