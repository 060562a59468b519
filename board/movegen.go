package board

// Move generation: pseudo-legal generation followed by a make/undo-based
// legality filter, matching the algorithm this engine specifies rather than
// a precomputed pin/check-mask optimization.

// GenerateLegalMoves returns every legal move for the side to move. No
// duplicates; no move whose capture is King; making any returned move
// yields a position where the mover's king is not attacked.
func GenerateLegalMoves(pos *Position) []Move {
	pseudo := make([]Move, 0, 64)
	generatePseudoMoves(pos, pos.SideToMove, &pseudo)

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if m.Captured() == King {
			continue
		}
		var st MoveState
		pos.MakeMove(m, &st)
		if !pos.InCheck(st.priorSideToMove) {
			legal = append(legal, m)
		}
		pos.UndoMove(m, &st)
	}
	return legal
}

func generatePseudoMoves(pos *Position, side Color, out *[]Move) {
	generatePawnMoves(pos, side, out)
	generateKnightMoves(pos, side, out)
	generateSliderMoves(pos, side, Bishop, out)
	generateSliderMoves(pos, side, Rook, out)
	generateSliderMoves(pos, side, Queen, out)
	generateKingMoves(pos, side, out)
	generateCastlingMoves(pos, side, out)
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func generatePawnMoves(pos *Position, side Color, out *[]Move) {
	forward := 1
	startRank := 1
	promoRank := 7
	enemy := side.Opposite()
	if side == Black {
		forward = -1
		startRank = 6
		promoRank = 0
	}

	pawns := pos.PieceBB[side][Pawn]
	for pawns != 0 {
		var from Square
		from, pawns = pawns.PopLSB()
		f, r := from.File(), from.Rank()

		// single push
		nr := r + forward
		if onBoard(f, nr) {
			to := MakeSquare(f, nr)
			if !pos.AllOccupancy.Test(to) {
				emitPawnMove(out, from, to, NoPieceType, nr == promoRank)
				// double push
				if r == startRank {
					nr2 := nr + forward
					to2 := MakeSquare(f, nr2)
					if !pos.AllOccupancy.Test(to2) {
						*out = append(*out, NewMove(from, to2, Pawn, NoPieceType, NoPieceType, FlagDoublePush))
					}
				}
			}
		}

		// captures
		for _, df := range [2]int{-1, 1} {
			nf := f + df
			if !onBoard(nf, nr) {
				continue
			}
			to := MakeSquare(nf, nr)
			if pos.Occupancy[enemy].Test(to) {
				captured := pos.Squares[to].Type()
				emitPawnMove(out, from, to, captured, nr == promoRank)
			} else if to == pos.EnPassantSquare {
				*out = append(*out, NewMove(from, to, Pawn, Pawn, NoPieceType, FlagEnPassant))
			}
		}
	}
}

func emitPawnMove(out *[]Move, from, to Square, captured PieceType, isPromotion bool) {
	if isPromotion {
		for _, promo := range promotionPieces {
			*out = append(*out, NewMove(from, to, Pawn, captured, promo, FlagPromotion))
		}
		return
	}
	*out = append(*out, NewMove(from, to, Pawn, captured, NoPieceType, NoFlag))
}

func generateKnightMoves(pos *Position, side Color, out *[]Move) {
	knights := pos.PieceBB[side][Knight]
	own := pos.Occupancy[side]
	for knights != 0 {
		var from Square
		from, knights = knights.PopLSB()
		targets := KnightAttacks(from) &^ own
		emitPieceMoves(pos, out, from, Knight, targets, side)
	}
}

func generateKingMoves(pos *Position, side Color, out *[]Move) {
	from := pos.KingSquare(side)
	if from == NoSquare {
		return
	}
	targets := KingAttacks(from) &^ pos.Occupancy[side]
	emitPieceMoves(pos, out, from, King, targets, side)
}

func generateSliderMoves(pos *Position, side Color, pt PieceType, out *[]Move) {
	pieces := pos.PieceBB[side][pt]
	own := pos.Occupancy[side]
	occ := pos.AllOccupancy
	for pieces != 0 {
		var from Square
		from, pieces = pieces.PopLSB()
		var targets Bitboard
		switch pt {
		case Bishop:
			targets = BishopAttacks(from, occ)
		case Rook:
			targets = RookAttacks(from, occ)
		case Queen:
			targets = QueenAttacks(from, occ)
		}
		targets &^= own
		emitPieceMoves(pos, out, from, pt, targets, side)
	}
}

func emitPieceMoves(pos *Position, out *[]Move, from Square, pt PieceType, targets Bitboard, side Color) {
	for targets != 0 {
		var to Square
		to, targets = targets.PopLSB()
		captured := pos.Squares[to].Type()
		*out = append(*out, NewMove(from, to, pt, captured, NoPieceType, NoFlag))
	}
}

func generateCastlingMoves(pos *Position, side Color, out *[]Move) {
	enemy := side.Opposite()
	rank := 0
	if side == Black {
		rank = 7
	}
	kingSq := MakeSquare(4, rank)
	if pos.KingSquare(side) != kingSq {
		return
	}
	if pos.InCheck(side) {
		return
	}

	kingsideRight, queensideRight := WhiteKingside, WhiteQueenside
	if side == Black {
		kingsideRight, queensideRight = BlackKingside, BlackQueenside
	}

	if pos.CastlingRights&kingsideRight != 0 {
		f, g, h := MakeSquare(5, rank), MakeSquare(6, rank), MakeSquare(7, rank)
		if pos.Squares[h] == MakePiece(side, Rook) &&
			!pos.AllOccupancy.Test(f) && !pos.AllOccupancy.Test(g) &&
			!IsSquareAttacked(pos, f, enemy) && !IsSquareAttacked(pos, g, enemy) {
			*out = append(*out, NewMove(kingSq, g, King, NoPieceType, NoPieceType, FlagCastle))
		}
	}
	if pos.CastlingRights&queensideRight != 0 {
		d, c, b, a := MakeSquare(3, rank), MakeSquare(2, rank), MakeSquare(1, rank), MakeSquare(0, rank)
		if pos.Squares[a] == MakePiece(side, Rook) &&
			!pos.AllOccupancy.Test(d) && !pos.AllOccupancy.Test(c) && !pos.AllOccupancy.Test(b) &&
			!IsSquareAttacked(pos, d, enemy) && !IsSquareAttacked(pos, c, enemy) {
			*out = append(*out, NewMove(kingSq, c, King, NoPieceType, NoPieceType, FlagCastle))
		}
	}
}
