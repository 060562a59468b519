package board_test

import (
	"testing"

	"gambit/board"
)

func TestZobristDeterministic(t *testing.T) {
	var a, b board.Position
	a.SetStartPosition()
	b.SetStartPosition()
	if a.Hash != b.Hash {
		t.Errorf("two independently-initialized start positions have different hashes: %#x vs %#x", a.Hash, b.Hash)
	}
}

func TestZobristDiffersAcrossPositions(t *testing.T) {
	start := mustLoad(t, board.StartFEN)
	kiwipete := mustLoad(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if start.Hash == kiwipete.Hash {
		t.Errorf("distinct positions hashed to the same value")
	}
}
