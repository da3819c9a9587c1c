package chess

import "testing"

func mustFEN(t *testing.T, fen string) *Position {
	t.Helper()
	p, err := NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q): %v", fen, err)
	}
	return p
}

func TestKnightInCentreHasEightMoves(t *testing.T) {
	p := mustFEN(t, "8/8/8/8/3N4/8/8/8 w - - 0 1")
	moves := GenerateLegalMoves(p)
	if len(moves) != 8 {
		t.Fatalf("got %d moves, want 8: %v", len(moves), moves)
	}
}

func TestAbsolutePinRestrictsRookToTheFile(t *testing.T) {
	p := mustFEN(t, "4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	moves := GenerateLegalMoves(p)
	for _, m := range moves {
		if m.From != E2 {
			continue
		}
		if m.To.File() != FileE {
			t.Errorf("pinned rook produced off-file move %s", m.UCI())
		}
	}
}

func TestCorridorMateHasNoLegalMoves(t *testing.T) {
	p := mustFEN(t, "6k1/8/8/8/8/8/PPP5/K2r4 w - - 0 1")
	moves := GenerateLegalMoves(p)
	if len(moves) != 0 {
		t.Fatalf("got %d moves in a mated position, want 0: %v", len(moves), moves)
	}
}

func TestStalemateHasNoLegalMovesAndNoCheck(t *testing.T) {
	p := mustFEN(t, "8/8/8/8/8/8/2q5/K7 w - - 0 1")
	moves := GenerateLegalMoves(p)
	if len(moves) != 0 {
		t.Fatalf("got %d moves in a stalemate, want 0: %v", len(moves), moves)
	}
	if p.IsKingAttacked(White) {
		t.Fatal("stalemated king must not be in check")
	}
}

func TestEnPassantCaptureRemovesTheCapturedPawn(t *testing.T) {
	p := mustFEN(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 1")
	moves := GenerateLegalMoves(p)

	var found Move
	ok := false
	for _, m := range moves {
		if m.Kind == EnPassant && m.From == E5 && m.To == D6 {
			found, ok = m, true
		}
	}
	if !ok {
		t.Fatalf("expected e5d6 en passant among %v", moves)
	}

	undo := p.MakeMove(found)
	if p.PieceAt(D5) != NoPiece {
		t.Errorf("captured pawn still on d5")
	}
	if p.PieceAt(D6) != (Piece{White, Pawn}) {
		t.Errorf("capturing pawn did not land on d6")
	}
	p.UnmakeMove(undo)
	if p.PieceAt(D5) != (Piece{Black, Pawn}) {
		t.Errorf("unmake did not restore captured pawn on d5")
	}
}

func TestRookCaptureClearsOnlyThatCastlingFlag(t *testing.T) {
	p := mustFEN(t, "r3k2r/7r/8/8/8/8/8/R3K2R b KQkq - 0 1")
	var capture Move
	ok := false
	for _, m := range GenerateLegalMoves(p) {
		if m.From == H7 && m.To == H1 {
			capture, ok = m, true
		}
	}
	if !ok {
		t.Fatalf("expected h7xh1 to be legal")
	}

	p.MakeMove(capture)
	cr := p.Castling()
	if cr.has(WhiteKingSide) {
		t.Error("white kingside rights should clear when the h1 rook is captured")
	}
	if !cr.has(WhiteQueenSide) || !cr.has(BlackKingSide) || !cr.has(BlackQueenSide) {
		t.Errorf("unrelated castling rights should survive, got %s", cr)
	}
}
