package board

// Move packs a move into 32 bits: bits 0-5 origin square, 6-11 destination,
// 12-14 promotion piece type, and independent flag bits from 24 up. A quiet
// move carries no flags. A move holds no side information; it is only
// meaningful for the position it was generated in.
type Move uint32

// NoMove is the absent-move sentinel. APIs that may fail to produce a move
// pair it with an ok bool rather than overloading the zero value silently.
const NoMove Move = 0

const (
	FlagCapture Move = 1 << (24 + iota)
	FlagEnPassant
	FlagKingsideCastle
	FlagQueensideCastle
	FlagPromotion
)

// NewMove assembles a move from its components. promo is NoPieceType for
// everything but promotions.
func NewMove(from, to Square, promo PieceType, flags Move) Move {
	return Move(uint32(from)&0x3f) |
		Move(uint32(to)&0x3f)<<6 |
		Move(uint32(promo)&0x7)<<12 |
		flags
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & 0x3f) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> 6) & 0x3f) }

// Promotion returns the promotion piece type, or NoPieceType.
func (m Move) Promotion() PieceType { return PieceType((m >> 12) & 0x7) }

// IsCapture reports whether the move captures (including en passant).
func (m Move) IsCapture() bool { return m&FlagCapture != 0 }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m&FlagEnPassant != 0 }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m&FlagPromotion != 0 }

// IsCastle reports whether the move is a castle of either wing.
func (m Move) IsCastle() bool { return m&(FlagKingsideCastle|FlagQueensideCastle) != 0 }

// IsQuiet reports whether the move carries no flags at all.
func (m Move) IsQuiet() bool { return m&(FlagCapture|FlagEnPassant|FlagKingsideCastle|FlagQueensideCastle|FlagPromotion) == 0 }

// String renders lower-case coordinate notation ("e2e4", "e7e8q"). The
// promotion suffix appears exactly when the promotion flag is set.
func (m Move) String() string {
	buf := make([]byte, 0, 5)
	from, to := m.From(), m.To()
	buf = append(buf, 'a'+byte(from.File()), '1'+byte(from.Rank()))
	buf = append(buf, 'a'+byte(to.File()), '1'+byte(to.Rank()))
	if m.IsPromotion() {
		buf = append(buf, promoChar(m.Promotion()))
	}
	return string(buf)
}

func promoChar(t PieceType) byte {
	switch t {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	default:
		return 'q'
	}
}
