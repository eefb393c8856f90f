package movegen

import (
	"testing"

	"github.com/jorge1289/solomon/attacks"
	"github.com/jorge1289/solomon/board"
	"github.com/jorge1289/solomon/fen"
)

func TestMain(m *testing.M) {
	attacks.Init()
	m.Run()
}

func countLegal(t *testing.T, fenStr string) int {
	t.Helper()
	p, err := fen.Decode(fenStr)
	if err != nil {
		t.Fatalf("decode %q: %v", fenStr, err)
	}
	var l board.MoveList
	Legal(p, &l)
	return int(l.Len)
}

func TestLegalStartingPosition(t *testing.T) {
	got := countLegal(t, board.InitialFEN)
	if got != 20 {
		t.Fatalf("expected 20 legal moves from the starting position, got %d", got)
	}
}

func TestLegalAfterE4(t *testing.T) {
	// rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1
	got := countLegal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if got != 20 {
		t.Fatalf("expected 20 legal replies to 1.e4, got %d", got)
	}
}

func TestGenKingMovesCastling(t *testing.T) {
	testcases := []struct {
		name     string
		fenStr   string
		expected int
	}{
		{"white can castle both sides", "8/8/8/8/8/8/8/R3K2R w KQ - 0 1", 7},
		{"black can castle both sides", "r3k2r/8/8/8/8/8/8/8 b kq - 0 1", 7},
	}

	for _, tc := range testcases {
		p, err := fen.Decode(tc.fenStr)
		if err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		var l board.MoveList
		genKingMoves(p, &l)
		if int(l.Len) != tc.expected {
			t.Fatalf("%s: expected %d king moves, got %d", tc.name, tc.expected, l.Len)
		}
	}
}

func TestGenKingMovesCastlingBlockedByAttack(t *testing.T) {
	p, err := fen.Decode("1q4q1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var l board.MoveList
	genKingMoves(p, &l)

	for i := range l.Len {
		if l.Moves[i].Type() == board.MoveCastling && l.Moves[i].To() == board.SG1 {
			t.Fatalf("short castling should be illegal: king's path is attacked")
		}
	}
}

func TestIsCheckmate(t *testing.T) {
	// Fool's mate.
	p, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatal(err)
	}
	if !IsCheckmate(p) {
		t.Fatal("expected checkmate")
	}
}

func TestIsStalemate(t *testing.T) {
	// Classic stalemate: black king has no legal moves and is not in check.
	p, err := fen.Decode("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !IsStalemate(p) {
		t.Fatal("expected stalemate")
	}
}

func TestMakeMoveEnPassant(t *testing.T) {
	p, err := fen.Decode("rnbqkbnr/ppp1pppp/8/8/1Pp5/5N2/P1PP1PPP/RNBQK2R b KQkq b3 0 3")
	if err != nil {
		t.Fatal(err)
	}
	p.MakeMove(board.NewMove(board.SB3, board.SC4, board.MoveEnPassant), board.PieceBPawn, board.PieceNone)

	got := fen.Encode(p)
	want := "rnbqkbnr/ppp1pppp/8/8/8/1p3N2/P1PP1PPP/RNBQK2R w KQkq - 0 4"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
