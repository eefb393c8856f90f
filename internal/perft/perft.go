// Package perft implements the standard perft (performance test) node
// count, used to cross-check move generator correctness against known
// results for well-studied positions.
//
// See https://www.chessprogramming.org/Perft_Results
package perft

import (
	"strconv"
	"strings"

	"github.com/jorge1289/solomon/board"
	"github.com/jorge1289/solomon/movegen"
)

// Result accumulates detailed move statistics, filled in by Verbose.
type Result struct {
	Nodes        int
	Captures     int
	EPCaptures   int
	Castles      int
	Promotions   int
	Checks       int
	DoubleChecks int
	Checkmates   int
}

// Count walks the move generation tree to depth and returns the
// number of leaf nodes reached.
func Count(p board.Position, depth int) int {
	var l board.MoveList
	movegen.Legal(p, &l)

	if depth == 1 {
		return int(l.Len)
	}

	nodes := 0
	prev := p.Clone()
	for i := range l.Len {
		m := l.Moves[i]
		moved := p.PieceAt(m.From())
		captured := p.PieceAt(m.To())
		p.MakeMove(m, moved, captured)

		nodes += Count(p, depth-1)

		p = prev
	}

	return nodes
}

// Verbose follows the same tree walk as Count but also tallies move
// statistics into r, and (when isRoot) reports the node count
// contributed by each root move through report.
func Verbose(p board.Position, depth int, r *Result, isRoot bool, report func(move, nodes string)) int {
	var l board.MoveList
	movegen.Legal(p, &l)

	if depth == 1 {
		return int(l.Len)
	}

	prev := p.Clone()
	nodes := 0

	for i := range l.Len {
		m := l.Moves[i]
		if p.PieceAt(m.To()) != board.PieceNone {
			r.Captures++
		}

		moved := p.PieceAt(m.From())
		captured := p.PieceAt(m.To())
		p.MakeMove(m, moved, captured)

		if checks := movegen.CheckCount(p); checks > 0 {
			r.Checks++
			if checks > 1 {
				r.DoubleChecks++
			}
		}
		if movegen.IsCheckmate(p) {
			r.Checkmates++
		}

		cnt := Verbose(p, depth-1, r, false, report)
		if isRoot && report != nil {
			report(move2UCI(m), strconv.Itoa(cnt))
		}
		nodes += cnt

		switch m.Type() {
		case board.MoveCastling:
			r.Castles++
		case board.MoveEnPassant:
			r.EPCaptures++
		case board.MovePromotion:
			r.Promotions++
		}

		p = prev
	}

	return nodes
}

// move2UCI converts the move into long algebraic notation.
//
// Examples: e2e4, e7e5, e1g1 (white short castling), e7e8q (promotion).
func move2UCI(m board.Move) string {
	var b strings.Builder
	b.Grow(5)

	b.WriteString(board.SquareNames[m.From()])
	b.WriteString(board.SquareNames[m.To()])

	if m.Type() == board.MovePromotion {
		switch m.PromoPiece() {
		case board.PromotionKnight:
			b.WriteByte('n')
		case board.PromotionBishop:
			b.WriteByte('b')
		case board.PromotionRook:
			b.WriteByte('r')
		case board.PromotionQueen:
			b.WriteByte('q')
		}
	}

	return b.String()
}
