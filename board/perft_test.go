package board_test

import (
	"testing"

	"gambit/board"
)

func mustLoad(t *testing.T, fen string) *board.Position {
	t.Helper()
	var pos board.Position
	if err := board.LoadPosition(&pos, fen); err != nil {
		t.Fatalf("LoadPosition(%q): %v", fen, err)
	}
	return &pos
}

func TestPerftInitialPosition(t *testing.T) {
	pos := mustLoad(t, board.StartFEN)
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		if got := board.Perft(pos, c.depth); got != c.want {
			t.Errorf("Perft(depth=%d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos := mustLoad(t, fen)

	if got := board.Perft(pos, 1); got != 48 {
		t.Fatalf("Perft(depth=1) = %d, want 48", got)
	}
	if got := board.Perft(pos, 2); got != 2039 {
		t.Fatalf("Perft(depth=2) = %d, want 2039", got)
	}

	var sawCastle bool
	for _, m := range board.GenerateLegalMoves(pos) {
		if m.IsCastle() && m.From().String() == "e1" && m.To().String() == "c1" {
			sawCastle = true
		}
	}
	if !sawCastle {
		t.Errorf("expected e1c1 castle in Kiwipete legal move list")
	}
}

func TestPerftCastlingRights(t *testing.T) {
	pos := mustLoad(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if got := board.Perft(pos, 1); got != 26 {
		t.Errorf("Perft(depth=1) = %d, want 26", got)
	}
	if got := board.Perft(pos, 2); got != 568 {
		t.Errorf("Perft(depth=2) = %d, want 568", got)
	}
}

func TestPerftZeroDepth(t *testing.T) {
	pos := mustLoad(t, board.StartFEN)
	if got := board.Perft(pos, 0); got != 1 {
		t.Errorf("Perft(depth=0) = %d, want 1", got)
	}
}

func TestPerftMatchesLegalMoveSum(t *testing.T) {
	pos := mustLoad(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	var sum uint64
	for _, m := range board.GenerateLegalMoves(pos) {
		var st board.MoveState
		pos.MakeMove(m, &st)
		sum += board.Perft(pos, 1)
		pos.UndoMove(m, &st)
	}
	if got := board.Perft(pos, 2); got != sum {
		t.Errorf("Perft(depth=2) = %d, want sum over root moves %d", got, sum)
	}
}
