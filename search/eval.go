package search

import "gambit/board"

// Material values in centipawns.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 0
)

var pieceValue = [7]int{0, PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// bishopPairBonus rewards holding two or more bishops (the colors of their
// squares are not checked), supplementing
// the material+PST evaluation with the cheapest tactically-relevant term
// the original engine carries that doesn't require extra move generation.
const bishopPairBonus = 30

// Piece-square tables, White's perspective, a1..h1 first row through a8..h8
// last row (index = rank*8+file). Black looks these up via vertical mirror.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPST = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

func pstFor(pt board.PieceType) *[64]int {
	switch pt {
	case board.Pawn:
		return &pawnPST
	case board.Knight:
		return &knightPST
	case board.Bishop:
		return &bishopPST
	case board.Rook:
		return &rookPST
	case board.Queen:
		return &queenPST
	case board.King:
		return &kingPST
	default:
		return nil
	}
}

// mirrorSquare flips a square vertically, so Black's piece-square lookups
// use the same table as White's from its own side of the board.
func mirrorSquare(sq board.Square) board.Square {
	return board.MakeSquare(sq.File(), 7-sq.Rank())
}

// Evaluate returns a material-plus-piece-square-table score from the
// side-to-move's perspective (negated for Black).
func Evaluate(pos *board.Position) int {
	score := 0
	for pt := board.Pawn; pt <= board.King; pt++ {
		pst := pstFor(pt)
		value := pieceValue[pt]

		whiteBB := pos.PieceBB[board.White][pt]
		for whiteBB != 0 {
			var sq board.Square
			sq, whiteBB = whiteBB.PopLSB()
			score += value + pst[sq]
		}

		blackBB := pos.PieceBB[board.Black][pt]
		for blackBB != 0 {
			var sq board.Square
			sq, blackBB = blackBB.PopLSB()
			score -= value + pst[mirrorSquare(sq)]
		}
	}

	if pos.PieceBB[board.White][board.Bishop].PopCount() >= 2 {
		score += bishopPairBonus
	}
	if pos.PieceBB[board.Black][board.Bishop].PopCount() >= 2 {
		score -= bishopPairBonus
	}

	if pos.SideToMove == board.Black {
		score = -score
	}
	return score
}
