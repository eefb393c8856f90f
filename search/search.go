/*
Package search implements negamax alpha-beta search with iterative
deepening, a Zobrist-keyed transposition table, and captures-first
move ordering over a [board.Position].
*/
package search

import (
	"math/rand/v2"

	"github.com/golang/glog"
	"github.com/jorge1289/solomon/board"
	"github.com/jorge1289/solomon/eval"
	"github.com/jorge1289/solomon/movegen"
)

// CheckmateSentinel is returned (negated for the losing side) when a
// line forces checkmate. It is well clear of any real material sum so
// it can never be confused with an evaluator score.
const CheckmateSentinel = 1_000_000

// MaxDepth is the hard ceiling on search depth: depth 100 behaves
// identically to depth 6, per the engine's depth-cap contract.
const MaxDepth = 6

// DefaultDepth is used when a caller does not specify one.
const DefaultDepth = 4

// Result is the outcome of a BestMove call.
type Result struct {
	// Move is the zero value (Move(0)) if the position is checkmate or
	// stalemate; callers should check HasMove.
	Move    board.Move
	HasMove bool
	Score   int
	Nodes   int
}

// Engine owns one search's transposition table and node counter. It
// is not safe for concurrent use: callers wanting concurrent searches
// must use one Engine per goroutine.
type Engine struct {
	tt         map[uint64]ttEntry
	ttSizeHint int
	nodes      int
}

type ttEntry struct {
	score int
	depth int
}

// NewEngine returns a ready-to-use search engine with no transposition
// table size hint; its map grows unsized as entries are stored.
func NewEngine() *Engine {
	return NewEngineWithCapacity(0)
}

// NewEngineWithCapacity returns a ready-to-use search engine whose
// transposition table is pre-sized to ttSizeHint entries at the start
// of every BestMove call, avoiding the map's incremental growth
// rehashing when the expected peak entry count is known in advance.
func NewEngineWithCapacity(ttSizeHint int) *Engine {
	return &Engine{tt: make(map[uint64]ttEntry, ttSizeHint), ttSizeHint: ttSizeHint}
}

// BestMove runs iterative deepening up to min(maxDepth, MaxDepth) and
// returns the best move found, its score from the side-to-move's
// perspective, and the number of nodes visited.
func (e *Engine) BestMove(p board.Position, maxDepth int) Result {
	e.nodes = 0
	e.tt = make(map[uint64]ttEntry, e.ttSizeHint)

	var moves board.MoveList
	movegen.Legal(p, &moves)
	if moves.Len == 0 {
		return Result{Score: 0, Nodes: 0}
	}
	orderCapturesFirst(p, &moves)

	depthCap := min(maxDepth, MaxDepth)
	if depthCap < 1 {
		depthCap = 1
	}

	var best Result
	for d := 1; d <= depthCap; d++ {
		best = e.searchRoot(p, &moves, d)
		glog.V(2).Infof("search: depth=%d nodes=%d score=%d", d, e.nodes, best.Score)
		if abs(best.Score) > CheckmateSentinel-1000 {
			break
		}
	}
	best.Nodes = e.nodes
	return best
}

func (e *Engine) searchRoot(p board.Position, moves *board.MoveList, depth int) Result {
	bestScore := -(CheckmateSentinel + 1)
	var bestMove board.Move
	found := false

	for i := range moves.Len {
		m := moves.Moves[i]
		child := p.Clone()
		moved := child.PieceAt(m.From())
		captured := child.PieceAt(m.To())
		child.MakeMove(m, moved, captured)

		score := -e.minimax(child, depth-1, -(CheckmateSentinel + 1), CheckmateSentinel+1)

		if !found || score > bestScore {
			bestScore = score
			bestMove = m
			found = true
		}
	}

	return Result{Move: bestMove, HasMove: found, Score: bestScore}
}

// minimax returns the score of position from the perspective of the
// side to move at that node (negamax convention): a leaf's evaluator
// score is negated for black, and every recursive call negates the
// score it receives from its child.
func (e *Engine) minimax(p board.Position, depth, alpha, beta int) int {
	e.nodes++

	// The side to move has lost if its king was captured on the previous
	// ply; movegen cannot generate moves without that king.
	if p.Bitboards[board.PieceWKing+p.ActiveColor] == 0 {
		return -CheckmateSentinel
	}

	key := zobristKey(p)
	if entry, ok := e.tt[key]; ok && entry.depth >= depth {
		return entry.score
	}

	if depth == 0 {
		score := eval.Evaluate(p)
		if p.ActiveColor == board.ColorBlack {
			score = -score
		}
		e.tt[key] = ttEntry{score: score, depth: depth}
		return score
	}

	var moves board.MoveList
	movegen.Legal(p, &moves)
	if moves.Len == 0 {
		var score int
		if movegen.IsCheck(p) {
			score = -CheckmateSentinel
		} else {
			score = 0
		}
		e.tt[key] = ttEntry{score: score, depth: depth}
		return score
	}
	orderCapturesFirst(p, &moves)

	best := -(CheckmateSentinel + 1)
	for i := range moves.Len {
		m := moves.Moves[i]
		child := p.Clone()
		moved := child.PieceAt(m.From())
		captured := child.PieceAt(m.To())
		child.MakeMove(m, moved, captured)

		score := -e.minimax(child, depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	e.tt[key] = ttEntry{score: best, depth: depth}
	return best
}

// orderCapturesFirst partitions moves in place so that captures (any
// move whose target square is occupied) precede non-captures,
// preserving relative order within each group.
func orderCapturesFirst(p board.Position, moves *board.MoveList) {
	occupancy := p.Bitboards[board.BBAll]
	ordered := make([]board.Move, 0, moves.Len)

	for i := range moves.Len {
		m := moves.Moves[i]
		if occupancy&(uint64(1)<<m.To()) != 0 {
			ordered = append(ordered, m)
		}
	}
	for i := range moves.Len {
		m := moves.Moves[i]
		if occupancy&(uint64(1)<<m.To()) == 0 {
			ordered = append(ordered, m)
		}
	}

	copy(moves.Moves[:moves.Len], ordered)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Zobrist keys, covering the twelve piece bitboards plus side,
// castling rights and en passant target as the spec's transposition
// key requires.
var (
	pieceKeys    [12][64]uint64
	epKeys       [64]uint64
	castlingKeys [16]uint64
	colorKey     uint64
)

// InitZobristKeys seeds the pseudo-random keys used to hash
// positions. Call once, as early as possible in program startup;
// otherwise every position hashes to zero, the transposition table
// holds a single entry, and its stored score is returned for unrelated
// positions, so BestMove's results are not reliable.
func InitZobristKeys() {
	for i := range 12 {
		for sq := range 64 {
			pieceKeys[i][sq] = rand.Uint64()
		}
	}
	for sq := range 64 {
		epKeys[sq] = rand.Uint64()
	}
	for i := range 16 {
		castlingKeys[i] = rand.Uint64()
	}
	colorKey = rand.Uint64()
}

func zobristKey(p board.Position) (key uint64) {
	for i := board.PieceWPawn; i <= board.PieceBKing; i++ {
		bb := p.Bitboards[i]
		for bb > 0 {
			key ^= pieceKeys[i][board.PopLSB(&bb)]
		}
	}
	key ^= epKeys[p.EPTarget]
	key ^= castlingKeys[p.CastlingRights]
	if p.ActiveColor == board.ColorBlack {
		key ^= colorKey
	}
	return key
}
