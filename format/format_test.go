package format

import (
	"strings"
	"testing"

	"github.com/jorge1289/solomon/board"
	"github.com/jorge1289/solomon/fen"
)

func TestBitboardMarksOccupiedSquares(t *testing.T) {
	out := Bitboard(board.A1|board.H8, board.PieceWPawn)

	lines := strings.Split(out, "\n")
	if len(lines) < 9 {
		t.Fatalf("expected 8 ranks plus a file header, got %d lines", len(lines))
	}
	// Rank 8 is printed first; h8 is its last square.
	if !strings.Contains(strings.TrimRight(lines[0], " "), "P") {
		t.Fatalf("expected h8 marked with the piece symbol, got %q", lines[0])
	}
	// Rank 1 is printed last; a1 is its first square.
	rank1 := lines[7]
	if !strings.Contains(rank1, "1  P") {
		t.Fatalf("expected a1 marked with the piece symbol, got %q", rank1)
	}
}

func TestPositionRendersActiveColorAndCastlingRights(t *testing.T) {
	p, err := fen.Decode(board.InitialFEN)
	if err != nil {
		t.Fatal(err)
	}

	out := Position(p)
	if !strings.Contains(out, "Active color: white") {
		t.Fatalf("expected active color line, got:\n%s", out)
	}
	if !strings.Contains(out, "Castling rights: KQkq") {
		t.Fatalf("expected full castling rights, got:\n%s", out)
	}
	if !strings.Contains(out, "En passant: none") {
		t.Fatalf("expected no en passant target, got:\n%s", out)
	}
}

func TestPositionNoCastlingRightsRendersDash(t *testing.T) {
	p, err := fen.Decode("8/8/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	out := Position(p)
	if !strings.Contains(out, "Castling rights: -") {
		t.Fatalf("expected a dash for no castling rights, got:\n%s", out)
	}
}

func TestMoveRendersLongAlgebraic(t *testing.T) {
	m := board.NewMove(board.SE4, board.SE2, board.MoveNormal)
	if got := Move(m); got != "e2e4" {
		t.Fatalf("expected e2e4, got %q", got)
	}
}

func TestMoveListRendersSpaceSeparated(t *testing.T) {
	var l board.MoveList
	l.Push(board.NewMove(board.SE4, board.SE2, board.MoveNormal))
	l.Push(board.NewMove(board.SD4, board.SD2, board.MoveNormal))

	if got := MoveList(l); got != "e2e4 d2d4" {
		t.Fatalf("expected \"e2e4 d2d4\", got %q", got)
	}
}
