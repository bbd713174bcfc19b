package engine

import "chesscore/board"

// Ordering score bands. Captures always outrank quiet heuristics; the
// transposition move outranks everything.
const (
	ttMoveScore    = 100_000_000
	captureScore   = 1_000_000
	promoCapBonus  = 5_000
	castleScore    = 20_000
	killer0Score   = 9_000
	killer1Score   = 8_000
)

// mvvLVA[victim][attacker]: most valuable victim, least valuable attacker.
var mvvLVA [7][7]int

func init() {
	for victim := 0; victim < 7; victim++ {
		for attacker := 0; attacker < 7; attacker++ {
			v := pieceValue[victim]
			a := pieceValue[attacker]
			if attacker == int(board.NoPieceType) {
				a = 1
			}
			mvvLVA[victim][attacker] = v*10 - a
		}
	}
}

type scoredMove struct {
	move  board.Move
	score int
}

// scoreMoves assigns the ordering score of every move in the current
// position: TT move, then captures by MVV-LVA (capture-promotions get a
// fixed bonus on top), castles, killers, and finally the history counter.
func (e *Engine) scoreMoves(b *board.Board, moves []board.Move, dst []scoredMove, ttMove board.Move, ply int) []scoredMove {
	dst = dst[:0]
	us := b.SideToMove()
	for _, m := range moves {
		s := 0
		switch {
		case m == ttMove:
			s = ttMoveScore
		case m.IsCapture():
			victim := board.Pawn
			if !m.IsEnPassant() {
				victim = b.PieceAt(m.To()).Type()
			}
			attacker := b.PieceAt(m.From()).Type()
			s = captureScore + mvvLVA[victim][attacker]
			if m.IsPromotion() {
				s += promoCapBonus
			}
		case m.IsCastle():
			s = castleScore
		default:
			if ply < MaxPly {
				if m == e.killers[ply][0] {
					s += killer0Score
				} else if m == e.killers[ply][1] {
					s += killer1Score
				}
			}
			s += e.history[us][m.From()][m.To()]
		}
		dst = append(dst, scoredMove{move: m, score: s})
	}
	return dst
}

// orderNextMove swaps the best remaining move into position i. Selecting
// one move at a time beats a full sort when cutoffs end the loop early.
func orderNextMove(i int, moves []scoredMove) {
	best := i
	for j := i + 1; j < len(moves); j++ {
		if moves[j].score > moves[best].score {
			best = j
		}
	}
	moves[i], moves[best] = moves[best], moves[i]
}

// storeKiller shifts the old first killer into the second slot unless the
// move already leads.
func (e *Engine) storeKiller(m board.Move, ply int) {
	if ply >= MaxPly || e.killers[ply][0] == m {
		return
	}
	e.killers[ply][1] = e.killers[ply][0]
	e.killers[ply][0] = m
}
