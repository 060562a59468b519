package board_test

import (
	"testing"

	"gambit/board"
)

func TestMakeUndoIsExactInverse(t *testing.T) {
	positions := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"7k/P7/8/8/8/8/7p/7K w - - 0 1",
	}
	for _, fen := range positions {
		pos := mustLoad(t, fen)
		before := *pos
		for _, m := range board.GenerateLegalMoves(pos) {
			var st board.MoveState
			pos.MakeMove(m, &st)
			pos.UndoMove(m, &st)
			if *pos != before {
				t.Fatalf("fen %q move %s: UndoMove(MakeMove) != original position", fen, m)
			}
		}
	}
}

func TestNullMoveIsOwnInverse(t *testing.T) {
	pos := mustLoad(t, board.StartFEN)
	before := *pos
	var st board.NullMoveState
	pos.MakeNullMove(&st)
	if pos.SideToMove == before.SideToMove {
		t.Errorf("MakeNullMove did not flip side to move")
	}
	pos.UndoNullMove(&st)
	if *pos != before {
		t.Errorf("UndoNullMove(MakeNullMove) != original position")
	}
}

func TestCastlingRightsLostOnKingMove(t *testing.T) {
	pos := mustLoad(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var from, to board.Square = board.ParseSquare("e1"), board.ParseSquare("e2")
	m := board.NewMove(from, to, board.King, board.NoPieceType, board.NoPieceType, board.NoFlag)
	var st board.MoveState
	pos.MakeMove(m, &st)
	if pos.CastlingRights&(board.WhiteKingside|board.WhiteQueenside) != 0 {
		t.Errorf("white castling rights should be cleared after king move")
	}
	pos.UndoMove(m, &st)
	if pos.CastlingRights&(board.WhiteKingside|board.WhiteQueenside) == 0 {
		t.Errorf("undo should restore white castling rights")
	}
}

func TestCastlingRightsLostOnRookCapture(t *testing.T) {
	pos := mustLoad(t, "r3k3/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	from, to := board.ParseSquare("a1"), board.ParseSquare("a8")
	m := board.NewMove(from, to, board.Rook, board.Rook, board.NoPieceType, board.NoFlag)
	var st board.MoveState
	pos.MakeMove(m, &st)
	if pos.CastlingRights&board.BlackQueenside != 0 {
		t.Errorf("black queenside right should be cleared once its rook is captured")
	}
	pos.UndoMove(m, &st)
	if pos.CastlingRights&board.BlackQueenside == 0 {
		t.Errorf("undo should restore the black queenside right")
	}
}
