package board

// MoveToUci renders a move in UCI notation ("e2e4", "e7e8q"), or "0000" for
// NoMove. Equivalent to Move.String, exposed as a standalone function to
// match this package's external-interface surface.
func MoveToUci(m Move) string {
	return m.String()
}

var uciPromotionTypes = map[byte]PieceType{
	'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen,
}

// ApplyUci parses a UCI move string against pos's current legal moves and,
// if it names a legal move, applies it and returns true. On failure
// (malformed string or illegal move) pos is left unchanged and false is
// returned.
func ApplyUci(pos *Position, uci string) bool {
	if len(uci) < 4 || len(uci) > 5 {
		return false
	}
	from := ParseSquare(uci[0:2])
	to := ParseSquare(uci[2:4])
	if from == NoSquare || to == NoSquare {
		return false
	}
	var promotion PieceType
	if len(uci) == 5 {
		pt, ok := uciPromotionTypes[uci[4]]
		if !ok {
			return false
		}
		promotion = pt
	}

	for _, m := range GenerateLegalMoves(pos) {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() && m.Promotion() != promotion {
			continue
		}
		if !m.IsPromotion() && promotion != NoPieceType {
			continue
		}
		var st MoveState
		pos.MakeMove(m, &st)
		return true
	}
	return false
}
