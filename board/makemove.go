package board

// Undo records what MakeMove changed, enough to restore the position
// exactly, including the Zobrist key.
type Undo struct {
	move          Move
	captured      Piece
	capturedSq    Square
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevKey       uint64
}

// Move returns the move this record undoes.
func (u Undo) Move() Move { return u.move }

// Captured returns the captured piece, or NoPiece.
func (u Undo) Captured() Piece { return u.captured }

// NullUndo records the state needed to take back a null move.
type NullUndo struct {
	prevEnPassant Square
	prevKey       uint64
}

// MakeMove applies a pseudo-legal move with full rule semantics: captures,
// en passant, castling, promotion, castling-right updates, clocks, and the
// side toggle, keeping the key incremental throughout. If the move would
// leave the mover's own king in check it is taken back and ok is false.
func (b *Board) MakeMove(m Move) (ok bool, u Undo) {
	u = Undo{
		move:          m,
		captured:      NoPiece,
		capturedSq:    NoSquare,
		prevCastling:  b.castlingRights,
		prevEnPassant: b.enPassant,
		prevHalfmove:  b.halfmoveClock,
		prevFullmove:  b.fullmoveNumber,
		prevKey:       b.key,
	}

	from, to := m.From(), m.To()
	mover := b.squares[from]
	us := b.sideToMove

	// Any move voids the en-passant target.
	if b.enPassant != NoSquare {
		b.key ^= zobristEnPassant[b.enPassant.File()]
		b.enPassant = NoSquare
	}

	// En-passant capture: the victim pawn sits one rank behind the target.
	if m.IsEnPassant() {
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		u.captured = b.removePiece(capSq)
		u.capturedSq = capSq
	}

	// Castling-right updates: king moves, rook moves off a corner, rook
	// captured on a corner.
	cr := b.castlingRights
	switch mover {
	case WhiteKing:
		cr &^= CastleWhiteKingside | CastleWhiteQueenside
	case BlackKing:
		cr &^= CastleBlackKingside | CastleBlackQueenside
	case WhiteRook:
		switch from {
		case 0:
			cr &^= CastleWhiteQueenside
		case 7:
			cr &^= CastleWhiteKingside
		}
	case BlackRook:
		switch from {
		case 56:
			cr &^= CastleBlackQueenside
		case 63:
			cr &^= CastleBlackKingside
		}
	}
	if m.IsCapture() && !m.IsEnPassant() {
		switch {
		case b.squares[to] == WhiteRook && to == 0:
			cr &^= CastleWhiteQueenside
		case b.squares[to] == WhiteRook && to == 7:
			cr &^= CastleWhiteKingside
		case b.squares[to] == BlackRook && to == 56:
			cr &^= CastleBlackQueenside
		case b.squares[to] == BlackRook && to == 63:
			cr &^= CastleBlackKingside
		}
	}
	if cr != b.castlingRights {
		b.key ^= zobristCastle[b.castlingRights&15]
		b.key ^= zobristCastle[cr&15]
		b.castlingRights = cr
	}

	// Ordinary capture before the mover lands.
	if m.IsCapture() && !m.IsEnPassant() {
		u.captured = b.removePiece(to)
		u.capturedSq = to
	}

	if m.IsPromotion() {
		b.removePiece(from)
		b.addPiece(to, PieceFromType(us, m.Promotion()))
	} else {
		b.movePiece(from, to)
	}

	// Castling slides the rook alongside the king.
	switch {
	case m&FlagKingsideCastle != 0:
		if us == White {
			b.movePiece(7, 5)
		} else {
			b.movePiece(63, 61)
		}
	case m&FlagQueensideCastle != 0:
		if us == White {
			b.movePiece(0, 3)
		} else {
			b.movePiece(56, 59)
		}
	}

	// A double pawn push exposes the midpoint to en passant.
	if mover.Type() == Pawn {
		if d := to.Rank() - from.Rank(); d == 2 || d == -2 {
			b.enPassant = (from + to) / 2
			b.key ^= zobristEnPassant[b.enPassant.File()]
		}
	}

	if mover.Type() == Pawn || u.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}

	b.sideToMove = us.Other()
	b.key ^= zobristSide

	if b.InCheck(us) {
		b.UnmakeMove(u)
		return false, u
	}
	return true, u
}

// UnmakeMove restores the position recorded in u exactly.
func (b *Board) UnmakeMove(u Undo) {
	m := u.move
	from, to := m.From(), m.To()

	b.sideToMove = b.sideToMove.Other()
	us := b.sideToMove

	if m.IsPromotion() {
		b.removePiece(to)
		b.addPiece(from, PieceFromType(us, Pawn))
	} else {
		b.movePiece(to, from)
	}

	switch {
	case m&FlagKingsideCastle != 0:
		if us == White {
			b.movePiece(5, 7)
		} else {
			b.movePiece(61, 63)
		}
	case m&FlagQueensideCastle != 0:
		if us == White {
			b.movePiece(3, 0)
		} else {
			b.movePiece(59, 56)
		}
	}

	if u.captured != NoPiece {
		b.addPiece(u.capturedSq, u.captured)
	}

	b.castlingRights = u.prevCastling
	b.enPassant = u.prevEnPassant
	b.halfmoveClock = u.prevHalfmove
	b.fullmoveNumber = u.prevFullmove
	b.key = u.prevKey
}

// MakeNullMove passes the turn without moving a piece: the en-passant
// target is cleared and the side toggled, with matching key updates. Used
// by null-move pruning.
func (b *Board) MakeNullMove() NullUndo {
	u := NullUndo{prevEnPassant: b.enPassant, prevKey: b.key}
	if b.enPassant != NoSquare {
		b.key ^= zobristEnPassant[b.enPassant.File()]
		b.enPassant = NoSquare
	}
	b.sideToMove = b.sideToMove.Other()
	b.key ^= zobristSide
	return u
}

// UnmakeNullMove restores both the en-passant target and the side to move.
func (b *Board) UnmakeNullMove(u NullUndo) {
	b.sideToMove = b.sideToMove.Other()
	b.enPassant = u.prevEnPassant
	b.key = u.prevKey
}
