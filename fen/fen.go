/*
Package fen implements conversion between Forsyth-Edwards Notation
strings and [board.Position] values.
*/
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jorge1289/solomon/board"
)

// ErrMalformed is wrapped by every error Decode returns, so callers
// can test for it with errors.Is regardless of which field failed.
var ErrMalformed = errors.New("fen: malformed string")

// SquareFromAlgebraic parses a two-character algebraic square name
// (e.g. "e4") into its 0-63 board index.
func SquareFromAlgebraic(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: invalid square %q", ErrMalformed, s)
	}

	file := s[0]
	if file < 'a' || file > 'h' {
		return 0, fmt.Errorf("%w: invalid file in square %q", ErrMalformed, s)
	}
	rank := s[1]
	if rank < '1' || rank > '8' {
		return 0, fmt.Errorf("%w: invalid rank in square %q", ErrMalformed, s)
	}

	return int(file-'a') + int(rank-'1')*8, nil
}

// AlgebraicFromSquare renders a 0-63 board index as its two-character
// algebraic name (e.g. 28 -> "e4").
func AlgebraicFromSquare(sq int) string {
	return board.SquareNames[sq]
}

// Decode parses a FEN string into a [board.Position]. Decode never
// panics: every malformed field it detects is reported as an error
// wrapping [ErrMalformed]. The piece-placement field is checked for
// unknown symbols and for pieces placed past the top of the board; a
// rank describing fewer or more than eight squares is not rejected.
func Decode(s string) (board.Position, error) {
	var p board.Position

	fields := strings.SplitN(strings.TrimSpace(s), " ", 6)
	if len(fields) != 6 {
		return p, fmt.Errorf("%w: expected 6 space-separated fields, got %d", ErrMalformed, len(fields))
	}

	bitboards, err := decodeBoard(fields[0])
	if err != nil {
		return p, fmt.Errorf("%w: piece placement: %v", ErrMalformed, err)
	}
	p.Bitboards = bitboards

	switch fields[1] {
	case "w":
		p.ActiveColor = board.ColorWhite
	case "b":
		p.ActiveColor = board.ColorBlack
	default:
		return p, fmt.Errorf("%w: active color must be \"w\" or \"b\", got %q", ErrMalformed, fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.CastlingRights |= board.CastlingWhiteShort
			case 'Q':
				p.CastlingRights |= board.CastlingWhiteLong
			case 'k':
				p.CastlingRights |= board.CastlingBlackShort
			case 'q':
				p.CastlingRights |= board.CastlingBlackLong
			default:
				return p, fmt.Errorf("%w: invalid castling rights character %q", ErrMalformed, fields[2][i])
			}
		}
	}

	ep, err := decodeSquare(fields[3])
	if err != nil {
		return p, fmt.Errorf("en passant target: %w", err)
	}
	p.EPTarget = ep

	p.HalfmoveCnt, err = strconv.Atoi(fields[4])
	if err != nil {
		return p, fmt.Errorf("%w: halfmove clock: %v", ErrMalformed, err)
	}

	p.FullmoveCnt, err = strconv.Atoi(fields[5])
	if err != nil {
		return p, fmt.Errorf("%w: fullmove number: %v", ErrMalformed, err)
	}

	return p, nil
}

// Encode serializes the position into a FEN string. Encode assumes p
// is internally consistent (as every [board.Position] produced by
// this module is) and does not validate it.
func Encode(p board.Position) string {
	var b strings.Builder
	b.Grow(72)

	b.WriteString(encodeBoard(p.Bitboards))
	b.WriteByte(' ')

	if p.ActiveColor == board.ColorWhite {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')

	wrote := false
	if p.CastlingRights&board.CastlingWhiteShort != 0 {
		b.WriteByte('K')
		wrote = true
	}
	if p.CastlingRights&board.CastlingWhiteLong != 0 {
		b.WriteByte('Q')
		wrote = true
	}
	if p.CastlingRights&board.CastlingBlackShort != 0 {
		b.WriteByte('k')
		wrote = true
	}
	if p.CastlingRights&board.CastlingBlackLong != 0 {
		b.WriteByte('q')
		wrote = true
	}
	if !wrote {
		b.WriteByte('-')
	}
	b.WriteByte(' ')

	if p.EPTarget == 0 {
		b.WriteString("- ")
	} else {
		b.WriteString(board.SquareNames[p.EPTarget])
		b.WriteByte(' ')
	}

	b.WriteString(strconv.Itoa(p.HalfmoveCnt))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveCnt))

	return b.String()
}

// decodeBoard converts the piece-placement field of a FEN string into
// the bitboard array. It's the caller's responsibility (Decode) to
// have already confirmed the field is non-empty.
func decodeBoard(placement string) (bitboards [15]uint64, err error) {
	square := 56

	for i := 0; i < len(placement); i++ {
		c := placement[i]

		switch {
		case c == '/':
			square -= 16
		case c >= '1' && c <= '8':
			square += int(c - '0')
		default:
			piece, ok := pieceFromSymbol(c)
			if !ok {
				return bitboards, fmt.Errorf("invalid piece symbol %q", c)
			}
			if square < 0 || square > 63 {
				return bitboards, fmt.Errorf("piece placement overflows the board")
			}

			bb := uint64(1) << square
			bitboards[piece] |= bb
			if piece%2 == board.ColorWhite {
				bitboards[board.BBWhite] |= bb
			} else {
				bitboards[board.BBBlack] |= bb
			}
			bitboards[board.BBAll] |= bb

			square++
		}
	}

	return bitboards, nil
}

func pieceFromSymbol(c byte) (board.Piece, bool) {
	switch c {
	case 'P':
		return board.PieceWPawn, true
	case 'N':
		return board.PieceWKnight, true
	case 'B':
		return board.PieceWBishop, true
	case 'R':
		return board.PieceWRook, true
	case 'Q':
		return board.PieceWQueen, true
	case 'K':
		return board.PieceWKing, true
	case 'p':
		return board.PieceBPawn, true
	case 'n':
		return board.PieceBKnight, true
	case 'b':
		return board.PieceBBishop, true
	case 'r':
		return board.PieceBRook, true
	case 'q':
		return board.PieceBQueen, true
	case 'k':
		return board.PieceBKing, true
	}
	return board.PieceNone, false
}

// encodeBoard converts the bitboard array into the piece-placement
// field of a FEN string.
func encodeBoard(bitboards [15]uint64) string {
	var b strings.Builder
	b.Grow(20)

	var squares [64]byte
	for i := 0; i <= board.PieceBKing; i++ {
		bb := bitboards[i]
		for bb > 0 {
			square := board.PopLSB(&bb)
			squares[square] = board.PieceSymbols[i]
		}
	}

	for rank := 7; rank >= 0; rank-- {
		empty := byte(0)
		for file := 0; file < 8; file++ {
			square := 8*rank + file
			c := squares[square]
			if c == 0 {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + empty)
				empty = 0
			}
			b.WriteByte(c)
		}
		if empty > 0 {
			b.WriteByte('0' + empty)
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	return b.String()
}

// decodeSquare parses a FEN square string ("-" or e.g. "e3") into a
// square index. "-" decodes to 0, matching the "no target set" zero
// value of [board.Position.EPTarget]; anything else is delegated to
// [SquareFromAlgebraic].
func decodeSquare(s string) (int, error) {
	if s == "-" {
		return 0, nil
	}
	return SquareFromAlgebraic(s)
}
