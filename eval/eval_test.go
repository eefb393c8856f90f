package eval

import (
	"testing"

	"github.com/jorge1289/solomon/fen"
)

func TestPhaseStartingPosition(t *testing.T) {
	p, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := Phase(p); got != 256 {
		t.Fatalf("expected starting phase 256, got %d", got)
	}
}

func TestPhaseKingsAndPawnsOnly(t *testing.T) {
	p, err := fen.Decode("4k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := Phase(p); got != 0 {
		t.Fatalf("expected endgame phase 0, got %d", got)
	}
}

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	p, err := fen.Decode(startingFEN)
	if err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(p); got != 0 {
		t.Fatalf("expected a symmetric starting position to evaluate to 0, got %d", got)
	}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	withoutQueen, err := fen.Decode("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	// Black is missing its queen, so the position must favor white.
	if got := Evaluate(withoutQueen); got <= 0 {
		t.Fatalf("expected a material advantage for white, got %d", got)
	}
}

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
