package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge1289/solomon/board"
)

func TestDecodeStartingPosition(t *testing.T) {
	p, err := Decode(board.InitialFEN)
	require.NoError(t, err)

	assert.Equal(t, uint64(0xFF00), p.Bitboards[board.PieceWPawn], "white pawns on rank 2")
	assert.Equal(t, board.ColorWhite, p.ActiveColor)
	want := board.CastlingWhiteShort | board.CastlingWhiteLong | board.CastlingBlackShort | board.CastlingBlackLong
	assert.Equal(t, want, p.CastlingRights)
	assert.Zero(t, p.EPTarget, "no en passant target")
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	testcases := []string{
		board.InitialFEN,
		"8/4p3/1PR5/8/4R3/8/4p3/8 w - - 3 17",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	}

	for _, want := range testcases {
		p, err := Decode(want)
		require.NoErrorf(t, err, "decode %q", want)
		assert.Equal(t, want, Encode(p), "round trip")
	}
}

func TestSquareFromAlgebraicCorners(t *testing.T) {
	testcases := []struct {
		s    string
		want int
	}{
		{"a1", 0},
		{"h1", 7},
		{"a8", 56},
		{"h8", 63},
		{"e4", 28},
	}

	for _, tc := range testcases {
		got, err := SquareFromAlgebraic(tc.s)
		require.NoErrorf(t, err, "square %q", tc.s)
		assert.Equalf(t, tc.want, got, "square %q", tc.s)
	}
}

func TestAlgebraicFromSquareCorners(t *testing.T) {
	testcases := []struct {
		sq   int
		want string
	}{
		{0, "a1"},
		{7, "h1"},
		{56, "a8"},
		{63, "h8"},
		{28, "e4"},
	}

	for _, tc := range testcases {
		assert.Equalf(t, tc.want, AlgebraicFromSquare(tc.sq), "square %d", tc.sq)
	}
}

func TestSquareFromAlgebraicRejectsMalformed(t *testing.T) {
	testcases := []string{"", "a", "a0", "a9", "i1", "e44"}

	for _, in := range testcases {
		_, err := SquareFromAlgebraic(in)
		assert.ErrorIsf(t, err, ErrMalformed, "square %q", in)
	}
}

func TestDecodeMalformedReturnsError(t *testing.T) {
	testcases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
	}

	for _, in := range testcases {
		_, err := Decode(in)
		assert.ErrorIsf(t, err, ErrMalformed, "decoding %q", in)
	}
}
