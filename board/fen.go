package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceLetters = map[byte]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

// LoadPosition parses a FEN string into pos. On malformed input it returns
// an error and leaves pos unchanged.
func LoadPosition(pos *Position, fen string) error {
	var work Position
	work.Clear()

	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("board: malformed FEN %q: need at least 4 fields, got %d", fen, len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: malformed FEN %q: need 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, ok := fenPieceLetters[ch]
			if !ok {
				return fmt.Errorf("board: malformed FEN %q: bad piece letter %q", fen, ch)
			}
			if file > 7 {
				return fmt.Errorf("board: malformed FEN %q: rank %d overflows", fen, rank+1)
			}
			work.PlacePiece(piece, MakeSquare(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("board: malformed FEN %q: rank %d has %d files", fen, rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		work.SideToMove = White
	case "b":
		work.SideToMove = Black
	default:
		return fmt.Errorf("board: malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	work.CastlingRights = 0
	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				work.CastlingRights |= WhiteKingside
			case 'Q':
				work.CastlingRights |= WhiteQueenside
			case 'k':
				work.CastlingRights |= BlackKingside
			case 'q':
				work.CastlingRights |= BlackQueenside
			default:
				return fmt.Errorf("board: malformed FEN %q: bad castling rights %q", fen, fields[2])
			}
		}
	}

	work.EnPassantSquare = NoSquare
	if fields[3] != "-" {
		sq := ParseSquare(fields[3])
		if sq == NoSquare {
			return fmt.Errorf("board: malformed FEN %q: bad en-passant square %q", fen, fields[3])
		}
		// Accept the field only if an enemy pawn could actually capture
		// there, matching this engine's non-standard conditional-EP policy.
		enemy := work.SideToMove.Opposite()
		if PawnAttacks(enemy, sq)&work.PieceBB[work.SideToMove][Pawn] != 0 {
			work.EnPassantSquare = sq
		}
	}

	work.HalfmoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return fmt.Errorf("board: malformed FEN %q: bad halfmove clock %q", fen, fields[4])
		}
		work.HalfmoveClock = n
	}

	work.FullmoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return fmt.Errorf("board: malformed FEN %q: bad fullmove number %q", fen, fields[5])
		}
		work.FullmoveNumber = n
	}

	work.ComputeHash()
	*pos = work
	return nil
}

// RenderFen serializes pos to FEN. The en-passant field is emitted whenever
// EnPassantSquare is set; LoadPosition and MakeMove set it only when a pawn
// of the side to move could actually capture there.
func RenderFen(pos *Position) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := pos.Squares[MakeSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if pos.CastlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if pos.CastlingRights&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if pos.CastlingRights&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if pos.CastlingRights&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if pos.CastlingRights&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if pos.EnPassantSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.EnPassantSquare.String())
	}

	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.FullmoveNumber)
	return sb.String()
}
