package board

// MoveFlag distinguishes special move semantics beyond from/to/piece/capture.
type MoveFlag uint8

const (
	NoFlag MoveFlag = iota
	FlagPromotion
	FlagEnPassant
	FlagCastle
	FlagDoublePush
)

// Move is a packed move record: from, to, moved piece type, captured piece
// type, promotion piece type, and flag. NoMove compares unequal to every
// real move because its "moved" field is never NoPieceType for a real move.
//
// Bit layout (low to high): from(6) to(6) moved(3) captured(3) promotion(3) flag(3)
type Move uint32

const (
	moveFromShift      = 0
	moveToShift        = 6
	moveMovedShift     = 12
	moveCapturedShift  = 15
	movePromotionShift = 18
	moveFlagShift      = 21

	moveSquareMask = 0x3F
	moveTypeMask   = 0x7
	moveFlagMask   = 0x7
)

// NoMove is the sentinel "no move" value.
const NoMove Move = 0

// NewMove packs a move's fields.
func NewMove(from, to Square, moved, captured, promotion PieceType, flag MoveFlag) Move {
	return Move(uint32(from)&moveSquareMask)<<moveFromShift |
		Move(uint32(to)&moveSquareMask)<<moveToShift |
		Move(moved)<<moveMovedShift |
		Move(captured)<<moveCapturedShift |
		Move(promotion)<<movePromotionShift |
		Move(flag)<<moveFlagShift
}

func (m Move) From() Square      { return Square((m >> moveFromShift) & moveSquareMask) }
func (m Move) To() Square        { return Square((m >> moveToShift) & moveSquareMask) }
func (m Move) Moved() PieceType  { return PieceType((m >> moveMovedShift) & moveTypeMask) }
func (m Move) Captured() PieceType {
	return PieceType((m >> moveCapturedShift) & moveTypeMask)
}
func (m Move) Promotion() PieceType {
	return PieceType((m >> movePromotionShift) & moveTypeMask)
}
func (m Move) Flag() MoveFlag { return MoveFlag((m >> moveFlagShift) & moveFlagMask) }

func (m Move) IsCapture() bool   { return m.Captured() != NoPieceType }
func (m Move) IsPromotion() bool { return m.Flag() == FlagPromotion }
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }
func (m Move) IsCastle() bool    { return m.Flag() == FlagCastle }
func (m Move) IsDoublePush() bool { return m.Flag() == FlagDoublePush }

// IsTactical reports whether the move is a capture, promotion, or en passant —
// the set quiescence search considers.
func (m Move) IsTactical() bool {
	return m.IsCapture() || m.IsPromotion() || m.IsEnPassant()
}

var promotionLetters = [...]byte{0, 0, 'n', 'b', 'r', 'q', 0}

// String renders the move in UCI notation, or "0000" for NoMove.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promotionLetters[m.Promotion()])
	}
	return s
}
