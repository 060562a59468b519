package board_test

import (
	"testing"

	"gambit/board"
)

func TestApplyUciLegalMove(t *testing.T) {
	pos := mustLoad(t, board.StartFEN)
	if !board.ApplyUci(pos, "e2e4") {
		t.Fatalf("ApplyUci(e2e4) = false, want true")
	}
	if pos.Squares[board.ParseSquare("e4")].Type() != board.Pawn {
		t.Errorf("e4 should hold a pawn after e2e4")
	}
}

func TestApplyUciIllegalMoveLeavesPositionUnchanged(t *testing.T) {
	pos := mustLoad(t, board.StartFEN)
	before := *pos
	if board.ApplyUci(pos, "e2e5") {
		t.Fatalf("ApplyUci(e2e5) = true, want false (illegal pawn move)")
	}
	if *pos != before {
		t.Errorf("position changed after a rejected ApplyUci call")
	}
}

func TestApplyUciPromotion(t *testing.T) {
	pos := mustLoad(t, "7k/P7/8/8/8/8/7p/7K w - - 0 1")
	if !board.ApplyUci(pos, "a7a8q") {
		t.Fatalf("ApplyUci(a7a8q) = false, want true")
	}
	if pos.Squares[board.ParseSquare("a8")].Type() != board.Queen {
		t.Errorf("a8 should hold a queen after promotion")
	}
}

func TestMoveToUciNoMove(t *testing.T) {
	if got := board.MoveToUci(board.NoMove); got != "0000" {
		t.Errorf("MoveToUci(NoMove) = %q, want %q", got, "0000")
	}
}
