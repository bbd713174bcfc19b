package engine

import (
	"math/bits"

	"chesscore/board"
)

// Piece values in centipawns, indexed by board.PieceType. The king scores
// zero; mate handling lives in the search.
var pieceValue = [7]int{0, 100, 320, 330, 500, 900, 0}

// Piece-square tables indexed by piece type and square. White reads them
// by square directly, Black through the mirrored index 63-sq.
var pstMG = [7][64]int{
	board.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 27, 27, 10, 5, 5,
		0, 0, 0, 25, 25, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -25, -25, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	board.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	board.Rook: {
		0, 0, 5, 10, 10, 5, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	board.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

var pstEG = [7][64]int{
	board.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 25, 25, 10, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 0, -10, -10, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Knight: {
		-40, -30, -20, -20, -20, -20, -30, -40,
		-30, -10, 0, 0, 0, 0, -10, -30,
		-20, 0, 10, 15, 15, 10, 0, -20,
		-20, 5, 15, 20, 20, 15, 5, -20,
		-20, 0, 15, 20, 20, 15, 0, -20,
		-20, 5, 10, 15, 15, 10, 5, -20,
		-30, -10, 0, 0, 0, 0, -10, -30,
		-40, -30, -20, -20, -20, -20, -30, -40,
	},
	board.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 10, 15, 15, 10, 5, -10,
		-10, 0, 10, 15, 15, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	board.Rook: {
		0, 0, 5, 15, 15, 5, 0, 0,
		-5, 0, 0, 5, 5, 0, 0, -5,
		-5, 0, 0, 5, 5, 0, 0, -5,
		-5, 0, 0, 5, 5, 0, 0, -5,
		-5, 0, 0, 5, 5, 0, 0, -5,
		-5, 0, 0, 5, 5, 0, 0, -5,
		5, 10, 10, 15, 15, 10, 10, 5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	board.Queen: {
		-10, -10, -10, -5, -5, -10, -10, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, -10, -10, -5, -5, -10, -10, -10,
	},
	board.King: {
		-50, -40, -30, -20, -20, -30, -40, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	},
}

const maxPhase = 24

// phaseOf estimates the game stage from remaining material: one point per
// minor, two per rook, four per queen, over both sides. 24 means full
// material, 0 bare kings.
func phaseOf(b *board.Board) int {
	phase := 0
	for c := board.White; c <= board.Black; c++ {
		phase += bits.OnesCount64(b.Bitboard(c, board.Knight))
		phase += bits.OnesCount64(b.Bitboard(c, board.Bishop))
		phase += 2 * bits.OnesCount64(b.Bitboard(c, board.Rook))
		phase += 4 * bits.OnesCount64(b.Bitboard(c, board.Queen))
	}
	return clamp(phase, 0, maxPhase)
}

func isCenter(sq board.Square) bool {
	f, r := sq.File(), sq.Rank()
	return (f == 3 || f == 4) && (r == 3 || r == 4)
}

func isKnightStart(c board.Color, sq board.Square) bool {
	if c == board.White {
		return sq == 1 || sq == 6
	}
	return sq == 57 || sq == 62
}

func isBishopStart(c board.Color, sq board.Square) bool {
	if c == board.White {
		return sq == 2 || sq == 5
	}
	return sq == 58 || sq == 61
}

func isKingCastled(c board.Color, sq board.Square) bool {
	if c == board.White {
		return sq == 6 || sq == 2
	}
	return sq == 62 || sq == 58
}

// Evaluate scores the position from the side to move's perspective: a
// tapered blend of the mid-game and end-game terms, weighted by phase.
func Evaluate(b *board.Board) int {
	phase := phaseOf(b)

	var pawnFiles [2][8]int
	for c := board.White; c <= board.Black; c++ {
		pawns := b.Bitboard(c, board.Pawn)
		for pawns != 0 {
			sq := bits.TrailingZeros64(pawns)
			pawns &= pawns - 1
			pawnFiles[c][sq%8]++
		}
	}

	score := evalSide(b, board.White, phase, &pawnFiles) - evalSide(b, board.Black, phase, &pawnFiles)
	if b.SideToMove() == board.Black {
		return -score
	}
	return score
}

func evalSide(b *board.Board, c board.Color, phase int, pawnFiles *[2][8]int) int {
	var mg, eg int
	own := b.ColorOccupancy(c)
	all := b.AllOccupancy()
	myPawns := &pawnFiles[c]
	oppPawns := &pawnFiles[c.Other()]

	for s := board.Square(0); s < 64; s++ {
		p := b.PieceAt(s)
		if p == board.NoPiece || p.Color() != c {
			continue
		}
		t := p.Type()
		idx := s
		if c == board.Black {
			idx = 63 - s
		}

		mg += pieceValue[t] + pstMG[t][idx]
		eg += pieceValue[t] + pstEG[t][idx]

		if isCenter(s) {
			switch t {
			case board.Pawn:
				mg += 10
				eg += 5
			case board.Knight, board.Bishop:
				mg += 8
				eg += 5
			case board.Queen:
				mg += 4
			}
		}

		// A minor still at home past the opening is a tempo owed.
		if phase > 12 {
			if t == board.Knight && isKnightStart(c, s) {
				mg -= 10
			}
			if t == board.Bishop && isBishopStart(c, s) {
				mg -= 10
			}
		}

		switch t {
		case board.Pawn:
			pmg, peg := evalPawn(b, c, s, myPawns, oppPawns)
			mg += pmg
			eg += peg
		case board.Knight:
			mg += 2 * bits.OnesCount64(board.KnightAttacks(s)&^own)
		case board.Bishop:
			mg += 2 * bits.OnesCount64(board.BishopAttacks(s, all)&^own)
		case board.Rook:
			mg += bits.OnesCount64(board.RookAttacks(s, all) &^ own)
			f := s.File()
			switch {
			case myPawns[f] == 0 && oppPawns[f] == 0:
				mg += 15
				eg += 10
			case myPawns[f] == 0:
				mg += 8
				eg += 5
			}
		case board.Queen:
			mob := bits.OnesCount64(board.QueenAttacks(s, all) &^ own)
			mg += mob
			eg += mob
		}
	}

	kmg, keg := evalKing(b, c, phase)
	mg += kmg
	eg += keg

	return (mg*phase + eg*(maxPhase-phase)) / maxPhase
}

// evalPawn scores the structure terms of a single pawn: doubled, isolated,
// backward, and passed with its protected and connected refinements.
func evalPawn(b *board.Board, c board.Color, s board.Square, myPawns, oppPawns *[8]int) (mg, eg int) {
	f := s.File()
	rank := s.Rank()
	relRank := rank
	if c == board.Black {
		relRank = 7 - rank
	}

	doubled := myPawns[f] > 1
	isolated := (f == 0 || myPawns[f-1] == 0) && (f == 7 || myPawns[f+1] == 0)
	if doubled {
		mg -= 10
		eg -= 5
	}
	if isolated {
		mg -= 15
		eg -= 10
	}

	ownPawnAt := func(file, r int) bool {
		p := b.PieceAt(board.SquareAt(file, r))
		return p.Type() == board.Pawn && p.Color() == c
	}
	enemyPawnAt := func(file, r int) bool {
		p := b.PieceAt(board.SquareAt(file, r))
		return p.Type() == board.Pawn && p.Color() == c.Other()
	}

	// Backward: an enemy pawn blocks the file ahead and no friendly pawn
	// on an adjacent file stands level or behind to support the advance.
	if !isolated {
		frontEnemy := false
		if c == board.White {
			for r := rank + 1; r < 8; r++ {
				if enemyPawnAt(f, r) {
					frontEnemy = true
					break
				}
			}
		} else {
			for r := rank - 1; r >= 0; r-- {
				if enemyPawnAt(f, r) {
					frontEnemy = true
					break
				}
			}
		}
		if frontEnemy {
			supported := false
			for _, df := range [2]int{-1, 1} {
				ff := f + df
				if ff < 0 || ff > 7 {
					continue
				}
				if c == board.White {
					for r := 0; r <= rank && !supported; r++ {
						supported = ownPawnAt(ff, r)
					}
				} else {
					for r := 7; r >= rank && !supported; r-- {
						supported = ownPawnAt(ff, r)
					}
				}
			}
			if !supported {
				mg -= 10
				eg -= 10
			}
		}
	}

	// Passed: no enemy pawn anywhere ahead on the same file.
	passed := true
	if c == board.White {
		for r := rank + 1; r < 8; r++ {
			if enemyPawnAt(f, r) {
				passed = false
				break
			}
		}
	} else {
		for r := rank - 1; r >= 0; r-- {
			if enemyPawnAt(f, r) {
				passed = false
				break
			}
		}
	}
	if passed {
		mg += relRank * 10
		eg += relRank * 20

		defRank := rank - 1
		if c == board.Black {
			defRank = rank + 1
		}
		if defRank >= 0 && defRank < 8 {
			for _, df := range [2]int{-1, 1} {
				if ff := f + df; ff >= 0 && ff <= 7 && ownPawnAt(ff, defRank) {
					mg += 15
					eg += 25
					break
				}
			}
		}

		connected := (f > 0 && myPawns[f-1] > 0) || (f < 7 && myPawns[f+1] > 0)
		if connected {
			mg += 10
			eg += 15
		}
	}
	return mg, eg
}

// evalKing scores castling status, the pawn shield, and end-game king
// activity.
func evalKing(b *board.Board, c board.Color, phase int) (mg, eg int) {
	ks := b.KingSquare(c)
	if ks == board.NoSquare {
		return 0, 0
	}

	if isKingCastled(c, ks) {
		mg += 30
	} else if phase > 12 && (ks == 4 || ks == 60) {
		mg -= 30
	}

	shield := 0
	kf, kr := ks.File(), ks.Rank()
	sr := kr + 1
	if c == board.Black {
		sr = kr - 1
	}
	if sr >= 0 && sr < 8 {
		for df := -1; df <= 1; df++ {
			ff := kf + df
			if ff < 0 || ff > 7 {
				continue
			}
			p := b.PieceAt(board.SquareAt(ff, sr))
			if p.Type() == board.Pawn && p.Color() == c {
				shield++
			}
		}
	}
	mg += shield * 8
	if shield == 0 && phase > 8 {
		mg -= 20
	}

	if phase < 8 {
		relRank := kr
		if c == board.Black {
			relRank = 7 - kr
		}
		eg += (3 - relRank) * 5
	}
	return mg, eg
}
