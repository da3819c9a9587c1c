package chess

// MaxMoves bounds the legal move count in any reachable position; callers
// may preallocate a buffer of this size.
const MaxMoves = 256

var promotionKinds = [4]MoveKind{PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight}
var promotionCaptureKinds = [4]MoveKind{PromoteCaptureQueen, PromoteCaptureRook, PromoteCaptureBishop, PromoteCaptureKnight}

// GenerateLegalMoves returns every legal move in the position: pseudo-legal
// candidates from each per-piece generator, filtered by applying each
// candidate and rejecting any that leaves the mover's king attacked.
func GenerateLegalMoves(p *Position) []Move {
	pseudo := make([]Move, 0, MaxMoves)
	pseudo = appendPawnMoves(p, pseudo)
	pseudo = appendKnightMoves(p, pseudo)
	pseudo = appendSliderMoves(p, pseudo, Bishop)
	pseudo = appendSliderMoves(p, pseudo, Rook)
	pseudo = appendSliderMoves(p, pseudo, Queen)
	pseudo = appendKingMoves(p, pseudo)
	pseudo = appendCastlingMoves(p, pseudo)

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		mover := p.turn
		undo := p.MakeMove(m)
		if !p.IsKingAttacked(mover) {
			legal = append(legal, m)
		}
		p.UnmakeMove(undo)
	}
	return legal
}

func appendKnightMoves(p *Position, moves []Move) []Move {
	return appendSimpleMoves(p, moves, Knight, knightAttacks[:])
}

func appendKingMoves(p *Position, moves []Move) []Move {
	us := p.turn
	kingBB := p.ByPiece(Piece{us, King})
	kingBB.Iter(func(from Square) {
		targets := kingAttacks[from] &^ p.byColor[us]
		targets.Iter(func(to Square) {
			moves = appendTargetMove(p, moves, from, to)
		})
	})
	return moves
}

func appendSimpleMoves(p *Position, moves []Move, kind PieceKind, table []Bitboard) []Move {
	us := p.turn
	bb := p.ByPiece(Piece{us, kind})
	bb.Iter(func(from Square) {
		targets := table[from] &^ p.byColor[us]
		targets.Iter(func(to Square) {
			moves = appendTargetMove(p, moves, from, to)
		})
	})
	return moves
}

func appendSliderMoves(p *Position, moves []Move, kind PieceKind) []Move {
	us := p.turn
	bb := p.ByPiece(Piece{us, kind})
	bb.Iter(func(from Square) {
		targets := attacksFor(kind, from, p.all) &^ p.byColor[us]
		targets.Iter(func(to Square) {
			moves = appendTargetMove(p, moves, from, to)
		})
	})
	return moves
}

func appendTargetMove(p *Position, moves []Move, from, to Square) []Move {
	kind := Quiet
	if p.board[to] != NoPiece {
		kind = Capture
	}
	return append(moves, Move{From: from, To: to, Kind: kind})
}

func appendPawnMoves(p *Position, moves []Move) []Move {
	us := p.turn
	them := us.Other()
	up := North
	stagingRank := Rank3
	preRank := Rank7
	if us == Black {
		up = South
		stagingRank = Rank6
		preRank = Rank2
	}

	pawns := p.ByPiece(Piece{us, Pawn})
	enemy := p.byColor[them]
	empty := ^p.all

	pawns.Iter(func(from Square) {
		fromBB := FromSquare(from)
		onPreRank := from.Rank() == preRank

		// Single and double push.
		single := fromBB.Shift(up) & empty
		if single != 0 {
			to := ToSquare(single)
			if onPreRank {
				moves = appendPromotions(moves, from, to, promotionKinds)
			} else {
				moves = append(moves, Move{From: from, To: to, Kind: Quiet})
				if from.Rank() == stagingRankOrigin(us) {
					double := single.Shift(up) & empty
					if double != 0 && to.Rank() == stagingRank {
						moves = append(moves, Move{From: from, To: ToSquare(double), Kind: DoublePawnPush})
					}
				}
			}
		}

		// Captures, excluding the enemy king (king capture is never generated).
		enemyNoKing := enemy &^ p.ByPiece(Piece{them, King})
		captures := (fromBB.Shift(diagEast(up)) | fromBB.Shift(diagWest(up))) & enemyNoKing
		captures.Iter(func(to Square) {
			if onPreRank {
				moves = appendPromotions(moves, from, to, promotionCaptureKinds)
			} else {
				moves = append(moves, Move{From: from, To: to, Kind: Capture})
			}
		})

		// En passant.
		if p.epTarget != NoSquare {
			epBB := FromSquare(p.epTarget)
			epCapture := (fromBB.Shift(diagEast(up)) | fromBB.Shift(diagWest(up))) & epBB
			if epCapture != 0 {
				moves = append(moves, Move{From: from, To: p.epTarget, Kind: EnPassant})
			}
		}
	})
	return moves
}

func stagingRankOrigin(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// diagEast/diagWest resolve the forward-diagonal directions relative to a
// color's push direction, so pawn capture logic stays colorblind.
func diagEast(up Direction) Direction {
	if up == North {
		return NorthEast
	}
	return SouthEast
}

func diagWest(up Direction) Direction {
	if up == North {
		return NorthWest
	}
	return SouthWest
}

func appendPromotions(moves []Move, from, to Square, kinds [4]MoveKind) []Move {
	for _, k := range kinds {
		moves = append(moves, Move{From: from, To: to, Kind: k})
	}
	return moves
}

// appendCastlingMoves generates the king's castling moves when every
// precondition holds: the right is still set, the squares between king and
// rook are empty, and the king's current, transit, and landing squares are
// all unattacked.
func appendCastlingMoves(p *Position, moves []Move) []Move {
	us := p.turn
	them := us.Other()

	homeRank := Rank1
	if us == Black {
		homeRank = Rank8
	}
	kingHome := NewSquare(FileE, homeRank)
	if p.KingSquare(us) != kingHome {
		return moves
	}

	if p.castling.has(kingSideFlag(us)) {
		f := NewSquare(FileF, homeRank)
		g := NewSquare(FileG, homeRank)
		h := NewSquare(FileH, homeRank)
		if p.board[f] == NoPiece && p.board[g] == NoPiece &&
			p.board[h] == (Piece{us, Rook}) &&
			!p.IsSquareAttacked(kingHome, them) &&
			!p.IsSquareAttacked(f, them) &&
			!p.IsSquareAttacked(g, them) {
			moves = append(moves, Move{From: kingHome, To: g, Kind: CastleKing})
		}
	}

	if p.castling.has(queenSideFlag(us)) {
		b := NewSquare(FileB, homeRank)
		c := NewSquare(FileC, homeRank)
		d := NewSquare(FileD, homeRank)
		a := NewSquare(FileA, homeRank)
		if p.board[b] == NoPiece && p.board[c] == NoPiece && p.board[d] == NoPiece &&
			p.board[a] == (Piece{us, Rook}) &&
			!p.IsSquareAttacked(kingHome, them) &&
			!p.IsSquareAttacked(d, them) &&
			!p.IsSquareAttacked(c, them) {
			moves = append(moves, Move{From: kingHome, To: c, Kind: CastleQueen})
		}
	}

	return moves
}
