package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge1289/solomon/attacks"
	"github.com/jorge1289/solomon/internal/config"
	"github.com/jorge1289/solomon/search"
)

func TestMain(m *testing.M) {
	attacks.Init()
	search.InitZobristKeys()
	m.Run()
}

func TestEvaluateReturnsAMove(t *testing.T) {
	resp, err := Evaluate(Request{FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Depth: 2}, config.Default())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Move, "expected a move for the starting position")
	assert.Len(t, resp.Move, 4, "expected a 4-character move string")
}

func TestEvaluateMalformedFENReturnsError(t *testing.T) {
	_, err := Evaluate(Request{FEN: "not a fen"}, config.Default())
	assert.Error(t, err, "expected an error for a malformed FEN")
}

func TestEvaluateNoMoveOutcome(t *testing.T) {
	resp, err := Evaluate(Request{FEN: "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", Depth: 2}, config.Default())
	require.NoError(t, err)
	assert.Empty(t, resp.Move, "expected no move for checkmate")
}

func TestEvaluateZeroDepthUsesDefault(t *testing.T) {
	cfg := config.Default()
	resp, err := Evaluate(Request{FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Depth: 0}, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Move, "expected default depth to still produce a move")
}
