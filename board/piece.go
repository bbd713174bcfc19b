package board

import "fmt"

// Piece encodes a colored piece in 4 bits: the low 3 bits hold the type
// (1..6), bit 3 marks Black. NoPiece is zero so a fresh mailbox is empty.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is the colorless piece kind, used to index value and
// piece-square tables.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side owning the piece. NoPiece reports White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a side and a colorless type into a Piece.
func PieceFromType(c Color, t PieceType) Piece {
	if t == NoPieceType {
		return NoPiece
	}
	if c == Black {
		return Piece(t) | 8
	}
	return Piece(t)
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// CastlingRights is a 4-bit mask of the remaining castling options.
type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside

	CastleAll = CastleWhiteKingside | CastleWhiteQueenside | CastleBlackKingside | CastleBlackQueenside
)

// Square indexes the board rank-major: a1=0, h1=7, a8=56, h8=63.
type Square int

const NoSquare Square = -1

// SquareAt builds a square from zero-based file and rank.
func SquareAt(file, rank int) Square { return Square(rank*8 + file) }

// File returns the zero-based file of the square.
func (s Square) File() int { return int(s) & 7 }

// Rank returns the zero-based rank of the square.
func (s Square) Rank() int { return int(s) >> 3 }

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare reads coordinate notation like "e4".
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 || str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return NoSquare, fmt.Errorf("board: invalid square %q", str)
	}
	return SquareAt(int(str[0]-'a'), int(str[1]-'1')), nil
}
