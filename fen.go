package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// NewFromFEN parses a FEN string into a Position. FEN has six
// whitespace-separated fields: piece placement, side to move, castling
// rights, en-passant target, halfmove clock, fullmove number.
func NewFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFenFormat, len(fields))
	}

	p := NewEmptyPosition()

	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.turn = White
	case "b":
		p.turn = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFenFormat, fields[1])
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	p.castling = castling

	epTarget, err := ParseSquare(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: en-passant field %q", ErrInvalidFenFormat, fields[3])
	}
	p.epTarget = epTarget

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFenFormat, fields[4])
	}
	p.halfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidFenFormat, fields[5])
	}
	p.fullmoveNumber = fullmove

	return p, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: got %d ranks", ErrInvalidRankCount, len(ranks))
	}
	// FEN lists ranks from 8 down to 1.
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := 0
		for _, c := range []byte(rankStr) {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pc, ok := fenPieceChars[c]
			if !ok {
				return fmt.Errorf("%w: %q", ErrInvalidPieceChar, string(c))
			}
			if file > 7 {
				return fmt.Errorf("%w: rank %q overflows", ErrInvalidFileCount, rankStr)
			}
			p.placePiece(NewSquare(File(file), rank), pc)
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %q sums to %d files", ErrInvalidFileCount, rankStr, file)
		}
	}
	return nil
}

func parseCastling(s string) (CastleRights, error) {
	if s == "-" {
		return 0, nil
	}
	var cr CastleRights
	seen := map[byte]bool{}
	for _, c := range []byte(s) {
		if seen[c] {
			return 0, fmt.Errorf("%w: duplicate castling flag %q", ErrInvalidFenFormat, string(c))
		}
		seen[c] = true
		switch c {
		case 'K':
			cr |= WhiteKingSide
		case 'Q':
			cr |= WhiteQueenSide
		case 'k':
			cr |= BlackKingSide
		case 'q':
			cr |= BlackQueenSide
		default:
			return 0, fmt.Errorf("%w: castling flag %q", ErrInvalidFenFormat, string(c))
		}
	}
	return cr, nil
}

// FEN formats the Position back into FEN notation. FEN -> Position -> FEN
// round-trips exactly for every well-formed input.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			pc := p.board[NewSquare(File(f), Rank(r))]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pieceFenChars[pc])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.turn.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.epTarget.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

func (p *Position) String() string {
	return p.FEN()
}

// Draw returns a visual representation of the board useful for debugging.
func (p *Position) Draw() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r := 7; r >= 0; r-- {
		sb.WriteString(Rank(r).String())
		sb.WriteByte(' ')
		for f := 0; f < 8; f++ {
			sb.WriteString(p.board[NewSquare(File(f), Rank(r))].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
