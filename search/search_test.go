package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge1289/solomon/attacks"
	"github.com/jorge1289/solomon/board"
	"github.com/jorge1289/solomon/fen"
)

func TestMain(m *testing.M) {
	attacks.Init()
	InitZobristKeys()
	m.Run()
}

func TestBestMoveFromStartingPosition(t *testing.T) {
	p, err := fen.Decode(board.InitialFEN)
	require.NoError(t, err)

	result := NewEngine().BestMove(p, 3)
	require.True(t, result.HasMove, "expected a move from the starting position")

	from := result.Move.From() / 8
	assert.Containsf(t, []int{0, 1}, from, "expected white's move to originate from rank 1 or 2, got rank index %d", from)
}

func TestBestMoveRespectsSideToMove(t *testing.T) {
	p, err := fen.Decode("rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1")
	require.NoError(t, err)

	result := NewEngine().BestMove(p, 3)
	require.True(t, result.HasMove, "expected a move for black")

	from := result.Move.From() / 8
	assert.Containsf(t, []int{6, 7}, from, "expected black's move to originate from rank 7 or 8, got rank index %d", from)
}

func TestBestMoveFindsMateInOne(t *testing.T) {
	p, err := fen.Decode("r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 0 4")
	require.NoError(t, err)

	result := NewEngine().BestMove(p, 3)
	require.True(t, result.HasMove, "expected a mating move")
	assert.Equal(t, board.SF7, result.Move.From())
	assert.Equal(t, board.SE8, result.Move.To())
}

func TestBestMoveAvoidsWalkingIntoMate(t *testing.T) {
	p, err := fen.Decode("r1bqkb1r/ppp2ppp/2n5/3PN3/2BP4/8/PPP2PPP/R1BQK1NR b KQkq - 0 1")
	require.NoError(t, err)

	result := NewEngine().BestMove(p, 3)
	require.True(t, result.HasMove, "expected a legal move")

	walksIntoMate := result.Move.From() == board.SE8 &&
		(result.Move.To() == board.SD8 || result.Move.To() == board.SF8)
	assert.Falsef(t, walksIntoMate, "king should not walk into mate, got from=%d to=%d", result.Move.From(), result.Move.To())
}

func TestBestMoveDepthCapBeyondSixBehavesLikeSix(t *testing.T) {
	p, err := fen.Decode(board.InitialFEN)
	require.NoError(t, err)

	atSix := NewEngine().BestMove(p, 6)
	atHundred := NewEngine().BestMove(p, 100)

	assert.Equal(t, atSix.Move, atHundred.Move, "depth 100 should behave like depth 6")
}

func TestNewEngineWithCapacityFindsSameMoveAsNewEngine(t *testing.T) {
	p, err := fen.Decode(board.InitialFEN)
	require.NoError(t, err)

	plain := NewEngine().BestMove(p, 3)
	sized := NewEngineWithCapacity(1 << 10).BestMove(p, 3)

	assert.Equal(t, plain.Move, sized.Move, "expected a size hint not to change the chosen move")
}

func TestBestMoveNoLegalMovesReturnsNoMove(t *testing.T) {
	p, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	result := NewEngine().BestMove(p, 3)
	assert.False(t, result.HasMove, "expected no move: position is checkmate")
	assert.Zero(t, result.Score, "expected score 0 for a no-move outcome")
}
