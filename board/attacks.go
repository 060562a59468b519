package board

import (
	"fmt"
	"os"

	"golang.org/x/sys/cpu"
)

// Attack generation is deterministic and purely functional: same inputs
// produce the same bitboard. Sliding-piece attacks walk one step at a time
// in each ray direction and stop after the first blocker, matching the
// step-wise algorithm described for this engine rather than a magic-
// bitboard lookup table.
//
// That means this package never needs BMI2 PEXT/PDEP to build magic
// tables, but the information is worth a startup diagnostic: it tells
// anyone chasing perft performance on this host whether a future magic-
// bitboard implementation would even have hardware PEXT/PDEP to use.
func init() {
	if os.Getenv("GAMBIT_CPU_DIAGNOSTIC") != "" {
		fmt.Fprintf(os.Stderr, "board: host BMI2 support: %v (unused by this ray-walking attack generator)\n", cpu.X86.HasBMI2)
	}
}

var knightAttackTable [64]Bitboard
var kingAttackTable [64]Bitboard
var pawnAttackTable [2][64]Bitboard

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for sq := 0; sq < 64; sq++ {
		s := Square(sq)
		f, r := s.File(), s.Rank()

		var knight, king Bitboard
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if onBoard(nf, nr) {
				knight = knight.Set(MakeSquare(nf, nr))
			}
		}
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if onBoard(nf, nr) {
				king = king.Set(MakeSquare(nf, nr))
			}
		}
		knightAttackTable[sq] = knight
		kingAttackTable[sq] = king

		var whitePawn, blackPawn Bitboard
		if onBoard(f-1, r+1) {
			whitePawn = whitePawn.Set(MakeSquare(f-1, r+1))
		}
		if onBoard(f+1, r+1) {
			whitePawn = whitePawn.Set(MakeSquare(f+1, r+1))
		}
		if onBoard(f-1, r-1) {
			blackPawn = blackPawn.Set(MakeSquare(f-1, r-1))
		}
		if onBoard(f+1, r-1) {
			blackPawn = blackPawn.Set(MakeSquare(f+1, r-1))
		}
		pawnAttackTable[White][sq] = whitePawn
		pawnAttackTable[Black][sq] = blackPawn
	}
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// PawnAttacks returns the (up to two) forward-diagonal squares a pawn of the
// given color on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttackTable[c][sq]
}

// KnightAttacks returns the knight's destination squares from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttackTable[sq]
}

// KingAttacks returns the king's adjacent squares from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttackTable[sq]
}

var rayDirections = struct {
	bishop [4][2]int
	rook   [4][2]int
}{
	bishop: [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}},
	rook:   [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
}

func rayAttacks(sq Square, occupancy Bitboard, dirs [4][2]int) Bitboard {
	f, r := sq.File(), sq.Rank()
	var attacks Bitboard
	for _, d := range dirs {
		nf, nr := f+d[0], r+d[1]
		for onBoard(nf, nr) {
			target := MakeSquare(nf, nr)
			attacks = attacks.Set(target)
			if occupancy.Test(target) {
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return attacks
}

// BishopAttacks returns the bishop's attack set from sq given the combined
// board occupancy, including the first blocker on each ray.
func BishopAttacks(sq Square, occupancy Bitboard) Bitboard {
	return rayAttacks(sq, occupancy, rayDirections.bishop)
}

// RookAttacks returns the rook's attack set from sq given the combined board
// occupancy, including the first blocker on each ray.
func RookAttacks(sq Square, occupancy Bitboard) Bitboard {
	return rayAttacks(sq, occupancy, rayDirections.rook)
}

// QueenAttacks returns the union of bishop and rook attacks from sq.
func QueenAttacks(sq Square, occupancy Bitboard) Bitboard {
	return BishopAttacks(sq, occupancy) | RookAttacks(sq, occupancy)
}

// IsSquareAttacked reports whether any piece of byColor attacks sq on the
// given occupancy. Uses the pawn-attack symmetry trick: a pawn of byColor
// attacks sq iff it stands on one of the squares a pawn of the opposite
// color on sq would attack.
func IsSquareAttacked(pos *Position, sq Square, byColor Color) bool {
	occ := pos.AllOccupancy
	if PawnAttacks(byColor.Opposite(), sq)&pos.PieceBB[byColor][Pawn] != 0 {
		return true
	}
	if KnightAttacks(sq)&pos.PieceBB[byColor][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&pos.PieceBB[byColor][King] != 0 {
		return true
	}
	bishopsQueens := pos.PieceBB[byColor][Bishop] | pos.PieceBB[byColor][Queen]
	if BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := pos.PieceBB[byColor][Rook] | pos.PieceBB[byColor][Queen]
	if RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}
