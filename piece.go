package chess

// Color is a side of the board.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

// Other returns the opposite color. Total over {White, Black}.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// PieceKind is one of the six chess piece kinds.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceKind
)

var allPieceKinds = [6]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

func (pk PieceKind) String() string {
	switch pk {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	}
	return ""
}

// Piece pairs a Color with a PieceKind. NoPiece marks an empty square.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// NoPiece is the sentinel stored at empty mailbox squares. It is not the zero
// Piece (that is a white pawn), so empty boards must be filled with it.
var NoPiece = Piece{Color: NoColor, Kind: NoPieceKind}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	s := p.Kind.String()
	if p.Color == White {
		return string(rune(s[0] - 'a' + 'A'))
	}
	return s
}

var fenPieceChars = map[byte]Piece{
	'P': {White, Pawn}, 'N': {White, Knight}, 'B': {White, Bishop},
	'R': {White, Rook}, 'Q': {White, Queen}, 'K': {White, King},
	'p': {Black, Pawn}, 'n': {Black, Knight}, 'b': {Black, Bishop},
	'r': {Black, Rook}, 'q': {Black, Queen}, 'k': {Black, King},
}

var pieceFenChars = func() map[Piece]byte {
	m := make(map[Piece]byte, len(fenPieceChars))
	for c, p := range fenPieceChars {
		m[p] = c
	}
	return m
}()
