package board

import "math/bits"

// Board is the authoritative position state: a mailbox, per-(color, type)
// bitboards, per-side occupancy, and the game-state scalars, all kept
// consistent with an incrementally maintained Zobrist key.
type Board struct {
	squares [64]Piece

	// bb[color][pieceType], type indices 1..6; slot 0 stays empty.
	bb        [2][7]uint64
	occupancy [2]uint64

	sideToMove     Color
	castlingRights CastlingRights
	enPassant      Square
	halfmoveClock  int
	fullmoveNumber int

	key uint64
}

// NewBoard returns an empty board with White to move and no castling rights.
func NewBoard() *Board {
	b := &Board{enPassant: NoSquare, fullmoveNumber: 1}
	b.key = b.ComputeZobrist()
	return b
}

var startSquares = [64]Piece{
	WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing, WhiteBishop, WhiteKnight, WhiteRook,
	WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece, NoPiece,
	BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn,
	BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing, BlackBishop, BlackKnight, BlackRook,
}

// StartingPosition returns the standard initial position.
func StartingPosition() *Board {
	b := NewBoard()
	for sq, p := range startSquares {
		if p != NoPiece {
			b.addPiece(Square(sq), p)
		}
	}
	b.SetCastlingRights(CastleAll)
	return b
}

// ==========================
// Accessors
// ==========================

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the remaining castling rights mask.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassant returns the en-passant target square, or NoSquare.
func (b *Board) EnPassant() Square { return b.enPassant }

// HalfmoveClock returns the plies since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter, incremented after Black moves.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the incrementally maintained Zobrist key.
func (b *Board) Hash() uint64 { return b.key }

// Bitboard returns the bitboard of the given side's pieces of one type.
func (b *Board) Bitboard(c Color, t PieceType) uint64 { return b.bb[c][t] }

// ColorOccupancy returns all squares occupied by the given side.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[c] }

// AllOccupancy returns all occupied squares.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[White] | b.occupancy[Black] }

// KingSquare returns the square of the given side's king, or NoSquare.
func (b *Board) KingSquare(c Color) Square {
	kbb := b.bb[c][King]
	if kbb == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(kbb))
}

// ==========================
// Position primitives
// ==========================

func sqBB(sq Square) uint64 { return 1 << uint(sq) }

// popLSB removes and returns the least significant set bit.
func popLSB(mask *uint64) Square {
	sq := Square(bits.TrailingZeros64(*mask))
	*mask &= *mask - 1
	return sq
}

// addPiece places a piece on an empty square, updating the mailbox, the
// piece bitboard, the occupancy and the key.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	c := p.Color()
	b.squares[sq] = p
	b.bb[c][p.Type()] |= sqBB(sq)
	b.occupancy[c] |= sqBB(sq)
	b.key ^= zobristPiece[p][sq]
}

// removePiece clears a square and returns the piece that was there.
func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece
	}
	c := p.Color()
	mask := ^sqBB(sq)
	b.squares[sq] = NoPiece
	b.bb[c][p.Type()] &= mask
	b.occupancy[c] &= mask
	b.key ^= zobristPiece[p][sq]
	return p
}

// movePiece slides a piece to an empty destination. Captures must be
// performed by a prior removePiece.
func (b *Board) movePiece(from, to Square) {
	p := b.squares[from]
	if p == NoPiece {
		return
	}
	c := p.Color()
	fb, tb := sqBB(from), sqBB(to)
	b.squares[from] = NoPiece
	b.squares[to] = p
	b.bb[c][p.Type()] ^= fb | tb
	b.occupancy[c] ^= fb | tb
	b.key ^= zobristPiece[p][from]
	b.key ^= zobristPiece[p][to]
}

// ==========================
// Setup surface
// ==========================

// SetPiece puts a piece on a square, replacing any occupant, keeping all
// views and the key in sync. Part of the caller-provided setup surface.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from the square.
func (b *Board) ClearSquare(sq Square) { b.removePiece(sq) }

// SetSideToMove sets the side to play. Normal move making toggles this
// automatically.
func (b *Board) SetSideToMove(c Color) {
	if b.sideToMove == c {
		return
	}
	b.sideToMove = c
	b.key ^= zobristSide
}

// SetCastlingRights replaces the castling-rights mask.
func (b *Board) SetCastlingRights(cr CastlingRights) {
	if cr == b.castlingRights {
		return
	}
	b.key ^= zobristCastle[b.castlingRights&15]
	b.key ^= zobristCastle[cr&15]
	b.castlingRights = cr
}

// SetEnPassant sets the en-passant target square (NoSquare to clear).
func (b *Board) SetEnPassant(sq Square) {
	if sq == b.enPassant {
		return
	}
	if b.enPassant != NoSquare {
		b.key ^= zobristEnPassant[b.enPassant.File()]
	}
	if sq != NoSquare {
		b.key ^= zobristEnPassant[sq.File()]
	}
	b.enPassant = sq
}

// SetHalfmoveClock sets the fifty-move counter.
func (b *Board) SetHalfmoveClock(n int) { b.halfmoveClock = n }

// SetFullmoveNumber sets the full move counter.
func (b *Board) SetFullmoveNumber(n int) { b.fullmoveNumber = n }

// ==========================
// Status helpers
// ==========================

// HasLegalMoves reports whether the side to move has any legal move.
func (b *Board) HasLegalMoves() bool {
	var buf [MaxMoves]Move
	for _, m := range b.GenerateMoves(buf[:0], false) {
		if ok, u := b.MakeMove(m); ok {
			b.UnmakeMove(u)
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// IsDrawBy50 reports a fifty-move-rule draw. The clock counts half-moves.
func (b *Board) IsDrawBy50() bool { return b.halfmoveClock >= 100 }

// IsDrawByRepetition reports threefold repetition given the keys of every
// earlier position of the game. The current position counts as one
// occurrence; a trailing history entry equal to it is not double-counted.
func (b *Board) IsDrawByRepetition(history []uint64) bool {
	end := len(history)
	if end > 0 && history[end-1] == b.key {
		end--
	}
	matches := 0
	for _, k := range history[:end] {
		if k == b.key {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}

// InsufficientMaterial reports the dead positions no sequence of legal
// moves can win: bare kings, king and single minor, or minor versus minor.
func (b *Board) InsufficientMaterial() bool {
	if b.bb[White][Pawn]|b.bb[Black][Pawn] != 0 {
		return false
	}
	if b.bb[White][Rook]|b.bb[Black][Rook]|b.bb[White][Queen]|b.bb[Black][Queen] != 0 {
		return false
	}
	wMinors := bits.OnesCount64(b.bb[White][Knight] | b.bb[White][Bishop])
	bMinors := bits.OnesCount64(b.bb[Black][Knight] | b.bb[Black][Bishop])
	return wMinors <= 1 && bMinors <= 1
}

// Validate cross-checks the mailbox against the bitboards, the occupancy,
// and the Zobrist key. It reports internal consistency.
func (b *Board) Validate() bool {
	var occ [2]uint64
	var piece [2][7]uint64
	for sq := 0; sq < 64; sq++ {
		p := b.squares[sq]
		if p == NoPiece {
			continue
		}
		c := p.Color()
		occ[c] |= 1 << uint(sq)
		piece[c][p.Type()] |= 1 << uint(sq)
	}
	if occ != b.occupancy || piece != b.bb {
		return false
	}
	return b.key == b.ComputeZobrist()
}
