package board

// Position is a value type holding the full board state plus derived
// bitboards and an incrementally-maintained Zobrist hash.
type Position struct {
	Squares [64]Piece

	PieceBB      [2][7]Bitboard // [color][pieceType], pieceType 0 unused
	Occupancy    [2]Bitboard
	AllOccupancy Bitboard

	SideToMove      Color
	CastlingRights  CastlingRights
	EnPassantSquare Square
	HalfmoveClock   int
	FullmoveNumber  int

	Hash uint64
}

// Clear zeroes the position to an empty board, White to move.
func (p *Position) Clear() {
	*p = Position{}
	for i := range p.Squares {
		p.Squares[i] = NoPiece
	}
	p.EnPassantSquare = NoSquare
	p.SideToMove = White
	p.FullmoveNumber = 1
}

// SetStartPosition seeds the standard chess initial position.
func (p *Position) SetStartPosition() {
	p.Clear()
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		p.PlacePiece(MakePiece(White, backRank[f]), MakeSquare(f, 0))
		p.PlacePiece(MakePiece(White, Pawn), MakeSquare(f, 1))
		p.PlacePiece(MakePiece(Black, Pawn), MakeSquare(f, 6))
		p.PlacePiece(MakePiece(Black, backRank[f]), MakeSquare(f, 7))
	}
	p.CastlingRights = AllCastling
	p.SideToMove = White
	p.EnPassantSquare = NoSquare
	p.HalfmoveClock = 0
	p.FullmoveNumber = 1
	p.ComputeHash()
}

// PlacePiece puts piece on sq, which must currently be empty. Updates
// Squares and bitboards but not the hash (callers that need a hash
// invariant must call ComputeHash once after a batch of placements, or use
// MakeMove/UndoMove which maintain it incrementally).
func (p *Position) PlacePiece(piece Piece, sq Square) {
	p.Squares[sq] = piece
	c, pt := piece.Color(), piece.Type()
	p.PieceBB[c][pt] = p.PieceBB[c][pt].Set(sq)
	p.Occupancy[c] = p.Occupancy[c].Set(sq)
	p.AllOccupancy = p.AllOccupancy.Set(sq)
}

// RemovePiece removes whatever piece sits on sq, which must be occupied.
func (p *Position) RemovePiece(sq Square) {
	piece := p.Squares[sq]
	p.Squares[sq] = NoPiece
	c, pt := piece.Color(), piece.Type()
	p.PieceBB[c][pt] = p.PieceBB[c][pt].Clear(sq)
	p.Occupancy[c] = p.Occupancy[c].Clear(sq)
	p.AllOccupancy = p.AllOccupancy.Clear(sq)
}

// MovePiece relocates the piece on from to to, which must be empty.
func (p *Position) MovePiece(from, to Square) {
	piece := p.Squares[from]
	p.RemovePiece(from)
	p.PlacePiece(piece, to)
}

// RebuildBitboards recomputes PieceBB/Occupancy/AllOccupancy from Squares
// and then recomputes the hash. Used after bulk mutation of Squares (e.g.
// FEN loading) where incremental bitboard maintenance wasn't used.
func (p *Position) RebuildBitboards() {
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 7; pt++ {
			p.PieceBB[c][pt] = 0
		}
		p.Occupancy[c] = 0
	}
	p.AllOccupancy = 0
	for sq := 0; sq < 64; sq++ {
		piece := p.Squares[sq]
		if piece == NoPiece {
			continue
		}
		c, pt := piece.Color(), piece.Type()
		p.PieceBB[c][pt] = p.PieceBB[c][pt].Set(Square(sq))
		p.Occupancy[c] = p.Occupancy[c].Set(Square(sq))
		p.AllOccupancy = p.AllOccupancy.Set(Square(sq))
	}
	p.ComputeHash()
}

// ComputeHash recomputes Hash from scratch as the Zobrist xor of every
// currently present (piece, square), the castling-rights entry, the
// en-passant-file entry if set, and the side-to-move entry if Black.
func (p *Position) ComputeHash() {
	var h uint64
	for sq := 0; sq < 64; sq++ {
		piece := p.Squares[sq]
		if piece != NoPiece {
			h ^= zobristForPiece(piece, Square(sq))
		}
	}
	h ^= zobristForCastling(p.CastlingRights)
	if p.EnPassantSquare != NoSquare {
		h ^= zobristForEnPassant(p.EnPassantSquare.File())
	}
	if p.SideToMove == Black {
		h ^= zobristForSideToMove()
	}
	p.Hash = h
}

// KingSquare returns the low bit of color's king bitboard, or NoSquare if
// that color has no king on the board.
func (p *Position) KingSquare(c Color) Square {
	return p.PieceBB[c][King].LSB()
}

// InCheck reports whether side's king is currently attacked.
func (p *Position) InCheck(side Color) bool {
	king := p.KingSquare(side)
	if king == NoSquare {
		return false
	}
	return IsSquareAttacked(p, king, side.Opposite())
}

// Clone returns an independent copy of p, safe to hand to another goroutine.
func (p *Position) Clone() Position {
	return *p
}
