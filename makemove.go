package chess

// MakeMove applies mv to p in place and returns an undo token that
// UnmakeMove can use to restore the exact prior state, including castling
// flags, en-passant target, counters, and mailbox/bitboard mirrors.
// MakeMove is total over (Position, legal Move): it never errors, and apart
// from mv.Kind it reads only the moving piece on mv.From to route updates.
func (p *Position) MakeMove(mv Move) undoState {
	us := p.turn
	them := us.Other()
	moving := p.board[mv.From]

	undo := undoState{
		move:          mv,
		captured:      NoPiece,
		castling:      p.castling,
		epTarget:      p.epTarget,
		halfmoveClock: p.halfmoveClock,
	}

	capturedSquare := mv.To
	if mv.Kind == EnPassant {
		capturedSquare = NewSquare(mv.To.File(), mv.From.Rank())
	}
	if mv.Kind.IsCapture() {
		undo.captured = p.removePiece(capturedSquare)
		undo.capturedSquare = capturedSquare
	}

	p.movePiece(mv.From, mv.To)

	if pk := mv.Kind.PromotionKind(); pk != NoPieceKind {
		p.removePiece(mv.To)
		p.placePiece(mv.To, Piece{us, pk})
	}

	if mv.Kind == CastleKing || mv.Kind == CastleQueen {
		homeRank := mv.From.Rank()
		if mv.Kind == CastleKing {
			p.movePiece(NewSquare(FileH, homeRank), NewSquare(FileF, homeRank))
		} else {
			p.movePiece(NewSquare(FileA, homeRank), NewSquare(FileD, homeRank))
		}
	}

	if mv.Kind == DoublePawnPush {
		behind := South
		if us == Black {
			behind = North
		}
		p.epTarget = ToSquare(FromSquare(mv.To).Shift(behind))
	} else {
		p.epTarget = NoSquare
	}

	p.castling &^= castlingClearedBy(mv.From) | castlingClearedBy(mv.To)
	if moving.Kind == King {
		p.castling &^= kingSideFlag(us) | queenSideFlag(us)
	}

	if moving.Kind == Pawn || mv.Kind.IsCapture() {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if us == Black {
		p.fullmoveNumber++
	}

	p.turn = them
	p.history = append(p.history, undo)
	return undo
}

// castlingClearedBy returns the castling flag, if any, that latches closed
// when a piece moves from or is captured on sq: a king's home square or a
// rook's home corner.
func castlingClearedBy(sq Square) CastleRights {
	switch sq {
	case E1:
		return WhiteKingSide | WhiteQueenSide
	case H1:
		return WhiteKingSide
	case A1:
		return WhiteQueenSide
	case E8:
		return BlackKingSide | BlackQueenSide
	case H8:
		return BlackKingSide
	case A8:
		return BlackQueenSide
	}
	return 0
}

// UnmakeMove reverses the most recent MakeMove, restoring the Position
// bit-identically to its state before that call. The caller must supply the
// undoState returned by the matching MakeMove and call them in strict LIFO
// order, matching p.history.
func (p *Position) UnmakeMove(undo undoState) {
	mv := undo.move
	them := p.turn
	us := them.Other()
	p.turn = us

	if mv.Kind == CastleKing || mv.Kind == CastleQueen {
		homeRank := mv.From.Rank()
		if mv.Kind == CastleKing {
			p.movePiece(NewSquare(FileF, homeRank), NewSquare(FileH, homeRank))
		} else {
			p.movePiece(NewSquare(FileD, homeRank), NewSquare(FileA, homeRank))
		}
	}

	if pk := mv.Kind.PromotionKind(); pk != NoPieceKind {
		p.removePiece(mv.To)
		p.placePiece(mv.To, Piece{us, Pawn})
	}

	p.movePiece(mv.To, mv.From)

	if mv.Kind.IsCapture() {
		p.placePiece(undo.capturedSquare, undo.captured)
	}

	p.castling = undo.castling
	p.epTarget = undo.epTarget
	p.halfmoveClock = undo.halfmoveClock
	if us == Black {
		p.fullmoveNumber--
	}

	if n := len(p.history); n > 0 {
		p.history = p.history[:n-1]
	}
}
