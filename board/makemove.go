package board

// MoveState captures everything MakeMove needs to exactly reverse itself.
type MoveState struct {
	capturedPiece   Piece
	capturedSquare  Square
	priorCastling   CastlingRights
	priorEnPassant  Square
	priorHalfmove   int
	priorFullmove   int
	priorSideToMove Color
	priorHash       uint64
}

// MakeMove applies m to pos, recording enough state in st to undo it
// exactly. m is expected to be pseudo-legal (as produced by this package's
// generator); behavior is undefined for an arbitrary packed Move.
func (pos *Position) MakeMove(m Move, st *MoveState) {
	st.priorCastling = pos.CastlingRights
	st.priorEnPassant = pos.EnPassantSquare
	st.priorHalfmove = pos.HalfmoveClock
	st.priorFullmove = pos.FullmoveNumber
	st.priorSideToMove = pos.SideToMove
	st.priorHash = pos.Hash
	st.capturedPiece = NoPiece
	st.capturedSquare = NoSquare

	side := pos.SideToMove
	enemy := side.Opposite()
	from, to := m.From(), m.To()

	if pos.EnPassantSquare != NoSquare {
		pos.Hash ^= zobristForEnPassant(pos.EnPassantSquare.File())
	}
	pos.EnPassantSquare = NoSquare

	switch {
	case m.IsEnPassant():
		capSq := MakeSquare(to.File(), from.Rank())
		st.capturedPiece = pos.Squares[capSq]
		st.capturedSquare = capSq
		pos.removeWithHash(capSq)
	case pos.Squares[to] != NoPiece:
		st.capturedPiece = pos.Squares[to]
		st.capturedSquare = to
		pos.removeWithHash(to)
	}

	if m.IsPromotion() {
		pos.removeWithHash(from)
		pos.placeWithHash(MakePiece(side, m.Promotion()), to)
	} else {
		movedPiece := pos.Squares[from]
		pos.removeWithHash(from)
		pos.placeWithHash(movedPiece, to)
	}

	if m.IsCastle() {
		rank := from.Rank()
		if to.File() == 6 { // kingside
			pos.movePieceWithHash(MakeSquare(7, rank), MakeSquare(5, rank))
		} else { // queenside
			pos.movePieceWithHash(MakeSquare(0, rank), MakeSquare(3, rank))
		}
	}

	pos.updateCastlingRights(from, to, side)

	if m.IsDoublePush() {
		epSquare := MakeSquare(from.File(), (from.Rank()+to.Rank())/2)
		if PawnAttacks(side, epSquare)&pos.PieceBB[enemy][Pawn] != 0 {
			pos.EnPassantSquare = epSquare
			pos.Hash ^= zobristForEnPassant(epSquare.File())
		}
	}

	if m.Moved() == Pawn || m.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	if side == Black {
		pos.FullmoveNumber++
	}

	pos.SideToMove = enemy
	pos.Hash ^= zobristForSideToMove()
}

// UndoMove reverses the effect of a prior MakeMove(m, st) call. Restores
// the hash from the saved value rather than recomputing it, which trivially
// satisfies the exact-inverse invariant.
func (pos *Position) UndoMove(m Move, st *MoveState) {
	side := st.priorSideToMove
	from, to := m.From(), m.To()

	if m.IsPromotion() {
		pos.RemovePiece(to)
		pos.PlacePiece(MakePiece(side, Pawn), from)
	} else {
		pos.MovePiece(to, from)
	}

	if m.IsCastle() {
		rank := from.Rank()
		if to.File() == 6 {
			pos.MovePiece(MakeSquare(5, rank), MakeSquare(7, rank))
		} else {
			pos.MovePiece(MakeSquare(3, rank), MakeSquare(0, rank))
		}
	}

	if st.capturedPiece != NoPiece {
		pos.PlacePiece(st.capturedPiece, st.capturedSquare)
	}

	pos.CastlingRights = st.priorCastling
	pos.EnPassantSquare = st.priorEnPassant
	pos.HalfmoveClock = st.priorHalfmove
	pos.FullmoveNumber = st.priorFullmove
	pos.SideToMove = st.priorSideToMove
	pos.Hash = st.priorHash
}

// NullMoveState captures what MakeNullMove needs to undo it.
type NullMoveState struct {
	priorEnPassant  Square
	priorSideToMove Color
	priorHash       uint64
}

// MakeNullMove flips the side to move and clears the en-passant square
// without moving any piece. Its own inverse.
func (pos *Position) MakeNullMove(st *NullMoveState) {
	st.priorEnPassant = pos.EnPassantSquare
	st.priorSideToMove = pos.SideToMove
	st.priorHash = pos.Hash

	if pos.EnPassantSquare != NoSquare {
		pos.Hash ^= zobristForEnPassant(pos.EnPassantSquare.File())
		pos.EnPassantSquare = NoSquare
	}
	pos.SideToMove = pos.SideToMove.Opposite()
	pos.Hash ^= zobristForSideToMove()
}

// UndoNullMove reverses MakeNullMove.
func (pos *Position) UndoNullMove(st *NullMoveState) {
	pos.EnPassantSquare = st.priorEnPassant
	pos.SideToMove = st.priorSideToMove
	pos.Hash = st.priorHash
}

func (pos *Position) placeWithHash(piece Piece, sq Square) {
	pos.PlacePiece(piece, sq)
	pos.Hash ^= zobristForPiece(piece, sq)
}

func (pos *Position) removeWithHash(sq Square) {
	piece := pos.Squares[sq]
	if piece == NoPiece {
		return
	}
	pos.Hash ^= zobristForPiece(piece, sq)
	pos.RemovePiece(sq)
}

func (pos *Position) movePieceWithHash(from, to Square) {
	piece := pos.Squares[from]
	pos.removeWithHash(from)
	pos.placeWithHash(piece, to)
}

func (pos *Position) updateCastlingRights(from, to Square, side Color) {
	prior := pos.CastlingRights
	next := prior

	switch {
	case from == MakeSquare(4, 0):
		next &^= WhiteKingside | WhiteQueenside
	case from == MakeSquare(4, 7):
		next &^= BlackKingside | BlackQueenside
	}

	clearIfCorner := func(sq Square, right CastlingRights) {
		if from == sq || to == sq {
			next &^= right
		}
	}
	clearIfCorner(MakeSquare(7, 0), WhiteKingside)
	clearIfCorner(MakeSquare(0, 0), WhiteQueenside)
	clearIfCorner(MakeSquare(7, 7), BlackKingside)
	clearIfCorner(MakeSquare(0, 7), BlackQueenside)

	if next != prior {
		pos.Hash ^= zobristForCastling(prior)
		pos.Hash ^= zobristForCastling(next)
		pos.CastlingRights = next
	}
}
