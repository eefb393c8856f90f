/*
Package movegen generates strictly legal chess moves for a
[board.Position] using the copy-make approach: pseudo-legal moves are
generated, then each is played on a scratch copy of the position and
discarded if it leaves the mover's own king in check.
*/
package movegen

import (
	"github.com/jorge1289/solomon/attacks"
	"github.com/jorge1289/solomon/board"
)

// Legal generates every strictly legal move available to the
// position's active color and stores them in l, replacing its previous
// contents.
func Legal(p board.Position, l *board.MoveList) {
	l.Len = 0

	genKingMoves(p, l)

	// Under double check only the king can move: a single piece can
	// block or capture at most one of the two checking pieces.
	if checksOn(p.Bitboards, 1^p.ActiveColor) >= 2 {
		return
	}

	pseudoLegal := board.MoveList{}
	genPawnMoves(p, &pseudoLegal)
	genNormalMoves(p, &pseudoLegal)

	prev := p.Clone()
	for i := range pseudoLegal.Len {
		m := pseudoLegal.Moves[i]
		moved := p.PieceAt(m.From())
		captured := p.PieceAt(m.To())
		p.MakeMove(m, moved, captured)

		if checksOn(p.Bitboards, 1^prev.ActiveColor) == 0 {
			l.Push(m)
		}

		p = prev
	}
}

// IsCheck reports whether the active color's king is currently
// attacked.
func IsCheck(p board.Position) bool {
	return checksOn(p.Bitboards, 1^p.ActiveColor) > 0
}

// CheckCount returns the number of enemy pieces currently delivering
// check to the active color's king (2 means a double check).
func CheckCount(p board.Position) int {
	return checksOn(p.Bitboards, 1^p.ActiveColor)
}

// IsCheckmate reports whether the active color has no legal moves and
// is in check.
func IsCheckmate(p board.Position) bool {
	if !IsCheck(p) {
		return false
	}
	var l board.MoveList
	Legal(p, &l)
	return l.Len == 0
}

// IsStalemate reports whether the active color has no legal moves and
// is not in check.
func IsStalemate(p board.Position) bool {
	if IsCheck(p) {
		return false
	}
	var l board.MoveList
	Legal(p, &l)
	return l.Len == 0
}

// checksOn returns the number of pieces of color c that are
// delivering check to the enemy king.
func checksOn(bitboards [15]uint64, c board.Color) int {
	king := board.BitScan(bitboards[board.PieceWKing+(1^c)])
	return board.CountBits(attacks.AttacksOnSquare(bitboards, king, c))
}

// genKingMoves appends the active color's legal king moves
// (including castling) to l.
func genKingMoves(p board.Position, l *board.MoveList) {
	c := p.ActiveColor
	kingBB := p.Bitboards[board.PieceWKing+c]

	// Temporarily remove the king from occupancy so sliding attacks
	// correctly see past the square it is vacating. p is a local copy
	// (genKingMoves takes board.Position by value), so toggling it
	// off and back on here never leaks to the caller.
	p.Toggle(board.PieceWKing+c, kingBB)
	enemyAttacks := attacks.All(p.Bitboards, 1^c)
	p.Toggle(board.PieceWKing+c, kingBB)

	king := board.BitScan(kingBB)
	dests := attacks.King(king) & ^enemyAttacks & ^p.Bitboards[board.BBWhite+c]

	for dests > 0 {
		l.Push(board.NewMove(board.PopLSB(&dests), king, board.MoveNormal))
	}

	// Castling legality only needs the king excluded from the combined
	// occupancy bitboard (ally/enemy occupancy split does not matter
	// for the empty-path check), so a direct field toggle suffices.
	occupancyNoKing := p.Bitboards[board.BBAll] ^ kingBB
	if c == board.ColorWhite {
		if p.CanCastle(board.CastlingWhiteShort, enemyAttacks, occupancyNoKing) &&
			p.Bitboards[board.PieceWRook]&board.H1 != 0 {
			l.Push(board.NewMove(board.SG1, king, board.MoveCastling))
		}
		if p.CanCastle(board.CastlingWhiteLong, enemyAttacks, occupancyNoKing) &&
			p.Bitboards[board.PieceWRook]&board.A1 != 0 {
			l.Push(board.NewMove(board.SC1, king, board.MoveCastling))
		}
	} else {
		if p.CanCastle(board.CastlingBlackShort, enemyAttacks, occupancyNoKing) &&
			p.Bitboards[board.PieceBRook]&board.H8 != 0 {
			l.Push(board.NewMove(board.SG8, king, board.MoveCastling))
		}
		if p.CanCastle(board.CastlingBlackLong, enemyAttacks, occupancyNoKing) &&
			p.Bitboards[board.PieceBRook]&board.A8 != 0 {
			l.Push(board.NewMove(board.SC8, king, board.MoveCastling))
		}
	}
}

// genPawnMoves appends the active color's pseudo-legal pawn moves
// (pushes, captures, double push, en passant, promotion) to l.
func genPawnMoves(p board.Position, l *board.MoveList) {
	occupancy := p.Bitboards[board.BBAll]

	var ep uint64
	if p.EPTarget > 0 {
		ep = uint64(1) << p.EPTarget
	}

	c := p.ActiveColor
	enemies := p.Bitboards[board.BBWhite+(1^c)]
	pawns := p.Bitboards[board.PieceWPawn+c]

	dir, initRank, promoRank := 8, rank2, rank8
	if c == board.ColorBlack {
		dir, initRank, promoRank = -8, rank7, rank1
	}

	for pawns > 0 {
		pawn := board.PopLSB(&pawns)
		square := uint64(1) << pawn

		fwd, dblFwd := pawn+dir, pawn+2*dir
		fwdBB := uint64(1) << fwd

		if fwdBB&occupancy == 0 {
			if fwdBB&promoRank != 0 {
				pushPromotions(l, fwd, pawn)
			} else {
				l.Push(board.NewMove(fwd, pawn, board.MoveNormal))
			}
			if square&initRank != 0 && uint64(1)<<dblFwd&occupancy == 0 {
				l.Push(board.NewMove(dblFwd, pawn, board.MoveNormal))
			}
		}

		captures := attacks.Pawn(pawn, c) & (enemies | ep)
		for captures > 0 {
			to := board.PopLSB(&captures)
			switch {
			case uint64(1)<<to&promoRank != 0:
				pushPromotions(l, to, pawn)
			case uint64(1)<<to&ep != 0:
				l.Push(board.NewMove(to, pawn, board.MoveEnPassant))
			default:
				l.Push(board.NewMove(to, pawn, board.MoveNormal))
			}
		}
	}
}

// pushPromotions appends the single promotion move available to a
// pawn reaching the final rank: underpromotion is out of scope, every
// promoting pawn becomes a queen.
func pushPromotions(l *board.MoveList, to, from int) {
	l.Push(board.NewPromotionMove(to, from, board.PromotionQueen))
}

// genNormalMoves appends the active color's pseudo-legal knight,
// bishop, rook and queen moves to l.
func genNormalMoves(p board.Position, l *board.MoveList) {
	c := p.ActiveColor
	allies := p.Bitboards[board.BBWhite+c]
	occupancy := p.Bitboards[board.BBAll]

	for i := board.PieceWKnight + c; i <= board.PieceWQueen+c; i += 2 {
		pieces := p.Bitboards[i]
		for pieces > 0 {
			from := board.PopLSB(&pieces)

			var dests uint64
			switch i {
			case board.PieceWKnight, board.PieceBKnight:
				dests = attacks.Knight(from)
			case board.PieceWBishop, board.PieceBBishop:
				dests = attacks.Bishop(from, occupancy)
			case board.PieceWRook, board.PieceBRook:
				dests = attacks.Rook(from, occupancy)
			case board.PieceWQueen, board.PieceBQueen:
				dests = attacks.Queen(from, occupancy)
			}

			dests &= ^allies
			for dests > 0 {
				l.Push(board.NewMove(board.PopLSB(&dests), from, board.MoveNormal))
			}
		}
	}
}

const (
	rank1 uint64 = 0xFF
	rank2 uint64 = 0xFF00
	rank7 uint64 = 0xFF000000000000
	rank8 uint64 = 0xFF00000000000000
)
