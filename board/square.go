// Package board implements bitboard-based chess position representation,
// attack generation, move generation, make/undo, Zobrist hashing, FEN and
// UCI move I/O, and perft node counting.
package board

import "fmt"

// Color is one of two sides.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite returns the other color. Opposite is its own inverse.
func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType identifies the kind of piece, independent of color.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeLetters = [...]byte{0, 'p', 'n', 'b', 'r', 'q', 'k'}

func (pt PieceType) String() string {
	if pt == NoPieceType {
		return "-"
	}
	return string(pieceTypeLetters[pt])
}

// Piece is a (Color, PieceType) pair packed into one byte: WhitePawn..WhiteKing
// occupy 1..6, BlackPawn..BlackKing occupy 9..14, NoPiece is 0.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
)

const blackOffset = 8

const (
	BlackPawn = WhitePawn + blackOffset
	BlackKnight = WhiteKnight + blackOffset
	BlackBishop = WhiteBishop + blackOffset
	BlackRook = WhiteRook + blackOffset
	BlackQueen = WhiteQueen + blackOffset
	BlackKing = WhiteKing + blackOffset
)

// MakePiece builds a Piece from its color and type. pt must not be NoPieceType.
func MakePiece(c Color, pt PieceType) Piece {
	if c == White {
		return Piece(pt)
	}
	return Piece(pt) + blackOffset
}

// Type returns the piece's PieceType, or NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	if p >= blackOffset {
		return PieceType(p - blackOffset)
	}
	return PieceType(p)
}

// Color returns the piece's color. Undefined for NoPiece.
func (p Piece) Color() Color {
	if p >= blackOffset {
		return Black
	}
	return White
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	letter := pieceTypeLetters[p.Type()]
	if p.Color() == White {
		letter -= 'a' - 'A'
	}
	return string(letter)
}

// Square is a board index 0..63, a1=0, h1=7, a8=56, h8=63; or NoSquare.
type Square int8

const NoSquare Square = -1

// MakeSquare builds a Square from zero-based file (0=a..7=h) and rank (0=1..7=8).
func MakeSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func (s Square) File() int { return int(s) & 7 }
func (s Square) Rank() int { return int(s) >> 3 }

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+s.File(), '1'+s.Rank())
}

// ParseSquare parses an algebraic square like "e4". Returns NoSquare on failure.
func ParseSquare(str string) Square {
	if len(str) != 2 {
		return NoSquare
	}
	file := int(str[0] - 'a')
	rank := int(str[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return MakeSquare(file, rank)
}

// CastlingRights is a 4-bit mask: WK=1, WQ=2, BK=4, BQ=8.
type CastlingRights uint8

const (
	WhiteKingside  CastlingRights = 1 << 0
	WhiteQueenside CastlingRights = 1 << 1
	BlackKingside  CastlingRights = 1 << 2
	BlackQueenside CastlingRights = 1 << 3
	AllCastling    CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)
