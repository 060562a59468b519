package board_test

import (
	"testing"

	"gambit/board"
)

func TestGenerateLegalMovesNoKingCaptures(t *testing.T) {
	pos := mustLoad(t, board.StartFEN)
	seen := make(map[board.Move]bool)
	for _, m := range board.GenerateLegalMoves(pos) {
		if m.Captured() == board.King {
			t.Errorf("legal move %s captures a king", m)
		}
		if seen[m] {
			t.Errorf("duplicate legal move %s", m)
		}
		seen[m] = true

		mover := pos.SideToMove
		var st board.MoveState
		pos.MakeMove(m, &st)
		if pos.InCheck(mover) {
			t.Errorf("legal move %s leaves mover's king in check", m)
		}
		pos.UndoMove(m, &st)
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos := mustLoad(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	var found board.Move
	for _, m := range board.GenerateLegalMoves(pos) {
		if m.IsEnPassant() && m.From().String() == "e5" && m.To().String() == "d6" {
			found = m
		}
	}
	if found == board.NoMove {
		t.Fatalf("expected en-passant move e5d6 in legal move list")
	}

	var st board.MoveState
	pos.MakeMove(found, &st)
	if pos.Squares[board.ParseSquare("d5")] != board.NoPiece {
		t.Errorf("d5 should be empty after en-passant capture")
	}
	if pos.Squares[board.ParseSquare("d6")].Type() != board.Pawn {
		t.Errorf("d6 should hold the capturing pawn")
	}
	pos.UndoMove(found, &st)
	if pos.Squares[board.ParseSquare("d5")].Type() != board.Pawn {
		t.Errorf("undo should restore the black pawn on d5")
	}
}

func TestDoublePushSetsEnPassantOnlyWhenCapturable(t *testing.T) {
	pos := mustLoad(t, "4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	var push board.Move
	for _, m := range board.GenerateLegalMoves(pos) {
		if m.IsDoublePush() {
			push = m
		}
	}
	if push == board.NoMove {
		t.Fatalf("expected a double push move")
	}
	var st board.MoveState
	pos.MakeMove(push, &st)
	if pos.EnPassantSquare != board.ParseSquare("e3") {
		t.Errorf("EnPassantSquare = %v, want e3", pos.EnPassantSquare)
	}
	pos.UndoMove(push, &st)

	pos2 := mustLoad(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	for _, m := range board.GenerateLegalMoves(pos2) {
		if m.IsDoublePush() {
			push = m
		}
	}
	pos2.MakeMove(push, &st)
	if pos2.EnPassantSquare != board.NoSquare {
		t.Errorf("EnPassantSquare = %v, want NoSquare (no capturing pawn present)", pos2.EnPassantSquare)
	}
}

func TestPromotionEmitsFourMoves(t *testing.T) {
	pos := mustLoad(t, "7k/P7/8/8/8/8/7p/7K w - - 0 1")
	count := 0
	for _, m := range board.GenerateLegalMoves(pos) {
		if m.IsPromotion() {
			count++
		}
	}
	if count != 4 {
		t.Errorf("promotion move count = %d, want 4", count)
	}
}
