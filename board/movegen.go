package board

// MaxMoves bounds the number of pseudo-legal moves any chess position can
// produce; buffers of this size never overflow.
const MaxMoves = 256

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// GenerateMoves appends the pseudo-legal moves of the side to move into dst
// and returns it. Moves may leave the mover's king in check; MakeMove
// rejects those. In captures-only mode (used by quiescence) quiet moves,
// castles and quiet promotions are suppressed while captures,
// capture-promotions and en passant are kept.
func (b *Board) GenerateMoves(dst []Move, capturesOnly bool) []Move {
	moves := dst[:0]
	us := b.sideToMove
	them := us.Other()
	own := b.occupancy[us]
	opp := b.occupancy[them]
	occ := own | opp

	// Pawns.
	pawnDir := 8
	startRank, promoRank := 1, 6
	if us == Black {
		pawnDir = -8
		startRank, promoRank = 6, 1
	}
	pawns := b.bb[us][Pawn]
	for pawns != 0 {
		from := popLSB(&pawns)
		rank := from.Rank()

		if !capturesOnly {
			one := from + Square(pawnDir)
			if one >= 0 && one < 64 && occ&sqBB(one) == 0 {
				if rank == promoRank {
					for _, t := range promotionTypes {
						moves = append(moves, NewMove(from, one, t, FlagPromotion))
					}
				} else {
					moves = append(moves, NewMove(from, one, NoPieceType, 0))
					if rank == startRank {
						two := one + Square(pawnDir)
						if occ&sqBB(two) == 0 {
							moves = append(moves, NewMove(from, two, NoPieceType, 0))
						}
					}
				}
			}
		}

		// Captures and en passant are generated in both modes.
		caps := pawnAttacks[us][from]
		for targets := caps & opp; targets != 0; {
			to := popLSB(&targets)
			if rank == promoRank {
				for _, t := range promotionTypes {
					moves = append(moves, NewMove(from, to, t, FlagCapture|FlagPromotion))
				}
			} else {
				moves = append(moves, NewMove(from, to, NoPieceType, FlagCapture))
			}
		}
		if b.enPassant != NoSquare && caps&sqBB(b.enPassant) != 0 {
			moves = append(moves, NewMove(from, b.enPassant, NoPieceType, FlagCapture|FlagEnPassant))
		}
	}

	// Knights, bishops, rooks, queens: attack set minus own occupancy.
	appendFrom := func(from Square, targets uint64) {
		if capturesOnly {
			targets &= opp
		}
		for targets != 0 {
			to := popLSB(&targets)
			var flags Move
			if opp&sqBB(to) != 0 {
				flags = FlagCapture
			}
			moves = append(moves, NewMove(from, to, NoPieceType, flags))
		}
	}

	for knights := b.bb[us][Knight]; knights != 0; {
		from := popLSB(&knights)
		appendFrom(from, knightAttacks[from]&^own)
	}
	for bishops := b.bb[us][Bishop]; bishops != 0; {
		from := popLSB(&bishops)
		appendFrom(from, BishopAttacks(from, occ)&^own)
	}
	for rooks := b.bb[us][Rook]; rooks != 0; {
		from := popLSB(&rooks)
		appendFrom(from, RookAttacks(from, occ)&^own)
	}
	for queens := b.bb[us][Queen]; queens != 0; {
		from := popLSB(&queens)
		appendFrom(from, QueenAttacks(from, occ)&^own)
	}

	// King.
	if kbb := b.bb[us][King]; kbb != 0 {
		from := popLSB(&kbb)
		appendFrom(from, kingAttacks[from]&^own)
		if !capturesOnly {
			moves = b.appendCastles(moves, from)
		}
	}

	return moves
}

// appendCastles emits the castle moves available to the king on from.
// A castle requires the right, an empty path, the rook on its corner, and
// that the king's square, the transit square and the destination are not
// attacked.
func (b *Board) appendCastles(moves []Move, from Square) []Move {
	us := b.sideToMove
	them := us.Other()
	occ := b.AllOccupancy()

	if us == White {
		if b.castlingRights&CastleWhiteKingside != 0 &&
			b.squares[5] == NoPiece && b.squares[6] == NoPiece && b.squares[7] == WhiteRook &&
			!b.isSquareAttackedWithOcc(4, them, occ) &&
			!b.isSquareAttackedWithOcc(5, them, occ) &&
			!b.isSquareAttackedWithOcc(6, them, occ) {
			moves = append(moves, NewMove(from, 6, NoPieceType, FlagKingsideCastle))
		}
		if b.castlingRights&CastleWhiteQueenside != 0 &&
			b.squares[1] == NoPiece && b.squares[2] == NoPiece && b.squares[3] == NoPiece && b.squares[0] == WhiteRook &&
			!b.isSquareAttackedWithOcc(4, them, occ) &&
			!b.isSquareAttackedWithOcc(3, them, occ) &&
			!b.isSquareAttackedWithOcc(2, them, occ) {
			moves = append(moves, NewMove(from, 2, NoPieceType, FlagQueensideCastle))
		}
		return moves
	}

	if b.castlingRights&CastleBlackKingside != 0 &&
		b.squares[61] == NoPiece && b.squares[62] == NoPiece && b.squares[63] == BlackRook &&
		!b.isSquareAttackedWithOcc(60, them, occ) &&
		!b.isSquareAttackedWithOcc(61, them, occ) &&
		!b.isSquareAttackedWithOcc(62, them, occ) {
		moves = append(moves, NewMove(from, 62, NoPieceType, FlagKingsideCastle))
	}
	if b.castlingRights&CastleBlackQueenside != 0 &&
		b.squares[57] == NoPiece && b.squares[58] == NoPiece && b.squares[59] == NoPiece && b.squares[56] == BlackRook &&
		!b.isSquareAttackedWithOcc(60, them, occ) &&
		!b.isSquareAttackedWithOcc(59, them, occ) &&
		!b.isSquareAttackedWithOcc(58, them, occ) {
		moves = append(moves, NewMove(from, 58, NoPieceType, FlagQueensideCastle))
	}
	return moves
}
