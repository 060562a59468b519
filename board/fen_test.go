package board_test

import (
	"testing"

	"gambit/board"
)

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}
	for _, fen := range fens {
		pos := mustLoad(t, fen)
		got := board.RenderFen(pos)
		if got != fen {
			t.Errorf("RenderFen round-trip: got %q, want %q", got, fen)
		}
	}
}

func TestFenEnPassantOnlyWhenCapturable(t *testing.T) {
	// d6 is given as EP target but no white pawn can capture there, so the
	// field must be dropped to "-" on load and on render.
	var pos board.Position
	if err := board.LoadPosition(&pos, "4k3/8/8/8/8/8/8/4K3 w - d6 0 1"); err != nil {
		t.Fatalf("LoadPosition: %v", err)
	}
	if pos.EnPassantSquare != board.NoSquare {
		t.Errorf("EnPassantSquare = %v, want NoSquare when no pawn can capture", pos.EnPassantSquare)
	}
	if got := board.RenderFen(&pos); got != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("RenderFen = %q, want EP field dropped", got)
	}
}

func TestFenRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
	}
	for _, fen := range bad {
		var pos board.Position
		if err := board.LoadPosition(&pos, fen); err == nil {
			t.Errorf("LoadPosition(%q): expected error, got nil", fen)
		}
	}
}

func TestHashInvariant(t *testing.T) {
	pos := mustLoad(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	want := pos.Hash
	pos.ComputeHash()
	if pos.Hash != want {
		t.Errorf("ComputeHash produced a different value on recompute: got %#x, want %#x", pos.Hash, want)
	}
}
