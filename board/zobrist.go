package board

import "sync"

// splitmix64 is a fixed-seed counter-based PRNG: deterministic across runs
// and platforms, unlike math/rand whose stream is not guaranteed stable
// across Go versions. Grounded on the original engine's zobrist table
// construction (original_source/engine/src/zobrist.cpp), which seeds a
// counter-based generator the same way.
type splitmix64 struct {
	state uint64
}

func newSplitmix64(seed uint64) *splitmix64 {
	return &splitmix64{state: seed}
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return z
}

// zobristSeed is fixed so hashes are reproducible across runs.
const zobristSeed uint64 = 0x5EED5EED5EED5EED

var (
	zobristPieceSquare [15][64]uint64 // indexed by Piece (0..14, gaps unused)
	zobristCastling    [16]uint64
	zobristEnPassant   [8]uint64
	zobristSideToMove  uint64

	zobristOnce sync.Once
)

func initZobrist() {
	rng := newSplitmix64(zobristSeed)
	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPieceSquare[p][sq] = rng.next()
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// ensureZobrist lazily initializes the process-wide Zobrist table on first
// use. The table is immutable after this point.
func ensureZobrist() {
	zobristOnce.Do(initZobrist)
}

func zobristForPiece(p Piece, s Square) uint64 {
	ensureZobrist()
	return zobristPieceSquare[p][s]
}

func zobristForCastling(rights CastlingRights) uint64 {
	ensureZobrist()
	return zobristCastling[rights&0xF]
}

func zobristForEnPassant(file int) uint64 {
	ensureZobrist()
	return zobristEnPassant[file]
}

func zobristForSideToMove() uint64 {
	ensureZobrist()
	return zobristSideToMove
}
