package chess

// MoveKind tags a move with the minimum information MakeMove needs to route
// state updates without re-inspecting the board.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	DoublePawnPush
	EnPassant
	CastleKing
	CastleQueen
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight
	PromoteCaptureQueen
	PromoteCaptureRook
	PromoteCaptureBishop
	PromoteCaptureKnight
)

// IsCapture reports whether the move removes an enemy piece, including
// en-passant and promotion-captures.
func (k MoveKind) IsCapture() bool {
	switch k {
	case Capture, EnPassant, PromoteCaptureQueen, PromoteCaptureRook, PromoteCaptureBishop, PromoteCaptureKnight:
		return true
	}
	return false
}

// IsPromotion reports whether the move promotes a pawn.
func (k MoveKind) IsPromotion() bool {
	switch k {
	case PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight,
		PromoteCaptureQueen, PromoteCaptureRook, PromoteCaptureBishop, PromoteCaptureKnight:
		return true
	}
	return false
}

// PromotionKind returns the piece kind a promotion move produces, or
// NoPieceKind for non-promotions.
func (k MoveKind) PromotionKind() PieceKind {
	switch k {
	case PromoteQueen, PromoteCaptureQueen:
		return Queen
	case PromoteRook, PromoteCaptureRook:
		return Rook
	case PromoteBishop, PromoteCaptureBishop:
		return Bishop
	case PromoteKnight, PromoteCaptureKnight:
		return Knight
	}
	return NoPieceKind
}

// Move is the movement of a piece from one square to another.
type Move struct {
	From Square
	To   Square
	Kind MoveKind
}

// UCI returns the move in UCI wire format: four characters for quiet/
// capture/castling moves, five with a trailing lowercase promotion letter.
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if pk := m.Kind.PromotionKind(); pk != NoPieceKind {
		s += pk.String()
	}
	return s
}

func (m Move) String() string {
	return m.UCI()
}
