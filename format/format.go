// Package format renders bitboards and positions as ASCII text. It is
// used to visualize test cases and to trace engine state in logs.
package format

import (
	"strings"

	"github.com/jorge1289/solomon/board"
)

// Bitboard formats a single bitboard into an 8x8 grid, marking
// occupied squares with pieceType's symbol and empty squares with '.'.
func Bitboard(bitboard uint64, pieceType board.Piece) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			square := uint64(1) << (8*rank + file)

			symbol := byte(board.PieceSymbols[pieceType])
			if bitboard&square == 0 {
				symbol = '.'
			}

			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}

// Position renders a full position: the 8x8 board plus active color,
// castling rights and en passant target.
func Position(p board.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			square := uint64(1) << (8*rank + file)

			symbol := byte('.')
			for i := board.PieceWPawn; i <= board.PieceBKing; i++ {
				if square&p.Bitboards[i] != 0 {
					symbol = byte(board.PieceSymbols[i])
					break
				}
			}

			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}

	b.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")
	if p.ActiveColor == board.ColorWhite {
		b.WriteString("white\nEn passant: ")
	} else {
		b.WriteString("black\nEn passant: ")
	}

	if p.EPTarget == 0 {
		b.WriteString("none\nCastling rights: ")
	} else {
		b.WriteString(board.SquareNames[p.EPTarget])
		b.WriteString("\nCastling rights: ")
	}

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

	return b.String()
}

// Move renders a move in long algebraic coordinate form, e.g. "e2e4".
func Move(m board.Move) string {
	return board.SquareNames[m.From()] + board.SquareNames[m.To()]
}

// MoveList renders a move list as a space-separated sequence of
// long-algebraic move strings, mainly for log lines and test failures.
func MoveList(l board.MoveList) string {
	var b strings.Builder
	for i := range l.Len {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Move(l.Moves[i]))
	}
	return b.String()
}
