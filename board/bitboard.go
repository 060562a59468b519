package board

import "math/bits"

// Bitboard is a 64-bit set of squares; bit i corresponds to Square(i).
type Bitboard uint64

const FullBoard Bitboard = 0xFFFFFFFFFFFFFFFF

// SquareMask returns the single-bit Bitboard for a square.
func SquareMask(s Square) Bitboard {
	return 1 << Bitboard(s)
}

// Test reports whether s is set in b.
func (b Bitboard) Test(s Square) bool {
	return b&SquareMask(s) != 0
}

// Set returns b with s set.
func (b Bitboard) Set(s Square) Bitboard {
	return b | SquareMask(s)
}

// Clear returns b with s cleared.
func (b Bitboard) Clear(s Square) Bitboard {
	return b &^ SquareMask(s)
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest set square, or NoSquare if b is empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB returns the lowest set square and the bitboard with that bit removed.
func (b Bitboard) PopLSB() (Square, Bitboard) {
	s := b.LSB()
	return s, b & (b - 1)
}

var fileMasks [8]Bitboard
var rankMasks [8]Bitboard

func init() {
	for f := 0; f < 8; f++ {
		var m Bitboard
		for r := 0; r < 8; r++ {
			m = m.Set(MakeSquare(f, r))
		}
		fileMasks[f] = m
	}
	for r := 0; r < 8; r++ {
		var m Bitboard
		for f := 0; f < 8; f++ {
			m = m.Set(MakeSquare(f, r))
		}
		rankMasks[r] = m
	}
}

// FileMask returns the bitboard of an entire file (0=a..7=h).
func FileMask(file int) Bitboard { return fileMasks[file] }

// RankMask returns the bitboard of an entire rank (0=rank1..7=rank8).
func RankMask(rank int) Bitboard { return rankMasks[rank] }
