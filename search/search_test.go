package search_test

import (
	"testing"

	"gambit/board"
	"gambit/search"
)

func loadPos(t *testing.T, fen string) *board.Position {
	t.Helper()
	var pos board.Position
	if err := board.LoadPosition(&pos, fen); err != nil {
		t.Fatalf("LoadPosition(%q): %v", fen, err)
	}
	return &pos
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move: Re1-e8 is a back-rank mate.
	pos := loadPos(t, "6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1")
	tt := search.NewDefaultTranspositionTable()
	limits := search.SearchLimits{MaxDepth: 4}
	result := search.Search(pos, limits, tt, 1)
	if result.BestMove == board.NoMove {
		t.Fatalf("expected a best move")
	}
	if result.Score < search.MateThreshold {
		t.Errorf("expected a mate-range score, got %d", result.Score)
	}
}

func TestSearchDeterministicSingleThreadedDepth1(t *testing.T) {
	pos := loadPos(t, board.StartFEN)
	limits := search.SearchLimits{MaxDepth: 1}

	tt1 := search.NewDefaultTranspositionTable()
	r1 := search.Search(pos, limits, tt1, 1)

	pos2 := loadPos(t, board.StartFEN)
	tt2 := search.NewDefaultTranspositionTable()
	r2 := search.Search(pos2, limits, tt2, 1)

	if r1.BestMove != r2.BestMove {
		t.Errorf("depth-1 search not deterministic: %s vs %s", r1.BestMove, r2.BestMove)
	}
	if r1.Score != r2.Score {
		t.Errorf("depth-1 score not deterministic: %d vs %d", r1.Score, r2.Score)
	}
}

func TestSearchReturnsNoMoveWithoutLegalMoves(t *testing.T) {
	// Black is stalemated.
	pos := loadPos(t, "7k/5Q2/8/8/8/8/8/7K b - - 0 1")
	if len(board.GenerateLegalMoves(pos)) != 0 {
		t.Skip("position is not actually stalemate, adjust FEN")
	}
	tt := search.NewDefaultTranspositionTable()
	result := search.Search(pos, search.SearchLimits{MaxDepth: 1}, tt, 1)
	if result.BestMove != board.NoMove {
		t.Errorf("expected NoMove with no legal moves, got %s", result.BestMove)
	}
	if result.Score != 0 {
		t.Errorf("expected stalemate score 0, got %d", result.Score)
	}
}

func TestTTClearIsIdempotent(t *testing.T) {
	tt := search.NewDefaultTranspositionTable()
	tt.Store(0x1234, 3, 50, search.BoundExact, board.NoMove, 0)
	tt.Clear()
	if found, _, _, _, _ := tt.Probe(0x1234, 0); found {
		t.Errorf("expected a miss after Clear")
	}
	tt.Clear()
	if found, _, _, _, _ := tt.Probe(0x1234, 0); found {
		t.Errorf("expected a miss after a second Clear")
	}
}

func TestTTStoreAndProbe(t *testing.T) {
	tt := search.NewTranspositionTable(1024)
	move := board.NewMove(board.ParseSquare("e2"), board.ParseSquare("e4"), board.Pawn, board.NoPieceType, board.NoPieceType, board.FlagDoublePush)
	tt.Store(0x1234, 5, 120, search.BoundExact, move, 0)

	found, depth, score, bound, gotMove := tt.Probe(0x1234, 0)
	if !found {
		t.Fatalf("expected a hit")
	}
	if depth != 5 || score != 120 || bound != search.BoundExact || gotMove != move {
		t.Errorf("Probe returned (%d, %d, %v, %s), want (5, 120, Exact, %s)", depth, score, bound, gotMove, move)
	}

	if found, _, _, _, _ := tt.Probe(0x9999, 0); found {
		t.Errorf("expected a miss on an unstored key")
	}
}

func TestEvaluateSymmetric(t *testing.T) {
	white := loadPos(t, "4k3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	black := loadPos(t, "4k3/4r3/8/8/8/8/8/4K3 b - - 0 1")
	if search.Evaluate(white) != search.Evaluate(black) {
		t.Errorf("mirrored positions should evaluate equally from side to move's perspective: %d vs %d", search.Evaluate(white), search.Evaluate(black))
	}
}
