package engine

import (
	"time"

	"chesscore/board"
)

// BestMove searches the position by iterative deepening until the move
// time elapses or maxDepth completes, and returns the score and move of
// the deepest finished iteration. When an iteration is cut off mid-search
// its partial result is discarded and the previous iteration's move
// stands. If no iteration finishes in time, the first legal move is
// returned with the static evaluation as its score. ok is false only when
// the side to move has no legal move; the caller distinguishes mate from
// stalemate via InCheck.
func (e *Engine) BestMove(b *board.Board, moveTime time.Duration, maxDepth int) (score int, move board.Move, ok bool) {
	e.nodes = 0
	e.stopped = false
	e.deadline = time.Now().Add(moveTime)
	e.clearSearchTables()
	e.seedRepetition(b)

	maxDepth = clamp(maxDepth, 1, MaxPly)

	best := board.NoMove
	bestScore := -Infinity
	started := time.Now()

	var movesBuf [board.MaxMoves]board.Move
	var scoredBuf [board.MaxMoves]scoredMove

	for depth := 1; depth <= maxDepth; depth++ {
		if e.stopped {
			break
		}

		moves := b.GenerateMoves(movesBuf[:0], false)
		_, ttMove, _ := e.tt.probe(b.Hash(), depth, -Infinity, Infinity)
		scored := e.scoreMoves(b, moves, scoredBuf[:0], ttMove, 0)

		localBest := board.NoMove
		localScore := -Infinity

		for i := 0; i < len(scored); i++ {
			orderNextMove(i, scored)
			m := scored[i].move
			legal, u := b.MakeMove(m)
			if !legal {
				continue
			}
			s := -e.negamax(b, depth-1, -Infinity, Infinity, 1)
			b.UnmakeMove(u)
			if e.stopped {
				break
			}
			if s > localScore {
				localScore = s
				localBest = m
			}
		}
		if e.stopped {
			break
		}
		if localBest != board.NoMove {
			best = localBest
			bestScore = localScore

			elapsed := time.Since(started)
			nps := uint64(0)
			if ms := elapsed.Milliseconds(); ms > 0 {
				nps = e.nodes * 1000 / uint64(ms)
			}
			e.log.Debug().
				Int("depth", depth).
				Int("score", bestScore).
				Str("move", best.String()).
				Uint64("nodes", e.nodes).
				Uint64("nps", nps).
				Dur("elapsed", elapsed).
				Msg("iteration complete")
		}
	}

	if best == board.NoMove {
		// No iteration finished before the deadline: fall back to the first
		// legal move.
		for _, m := range b.GenerateMoves(movesBuf[:0], false) {
			if legal, u := b.MakeMove(m); legal {
				b.UnmakeMove(u)
				return Evaluate(b), m, true
			}
		}
		return bestScore, board.NoMove, false
	}
	return bestScore, best, true
}

// negamax is the alpha-beta core: transposition probes, null-move pruning,
// futility pruning at the frontier, late-move reductions, and the killer
// and history updates on quiet cutoffs.
func (e *Engine) negamax(b *board.Board, depth, alpha, beta, ply int) int {
	if e.stopped {
		return 0
	}
	if !time.Now().Before(e.deadline) {
		e.stopped = true
		return 0
	}
	e.nodes++

	hp := e.basePly + ply
	if hp >= maxHistory {
		hp = maxHistory - 1
	}
	e.repStack[hp] = b.Hash()

	if b.HalfmoveClock() >= 100 || e.repetitionCount(b.Hash(), hp, b.HalfmoveClock()) >= 3 {
		return 0
	}

	if depth <= 0 {
		return e.quiescence(b, alpha, beta, ply)
	}

	us := b.SideToMove()
	inCheck := b.InCheck(us)
	alphaOrig := alpha

	ttScore, ttMove, ttHit := e.tt.probe(b.Hash(), depth, alpha, beta)
	if ttHit {
		return ttScore
	}

	// At the frontier a static eval above beta stands; below alpha it
	// arms futility pruning of quiet moves.
	staticEval := 0
	useFutility := false
	if depth == 1 && !inCheck {
		staticEval = Evaluate(b)
		if staticEval >= beta {
			return staticEval
		}
		useFutility = true
	}

	// Null move: hand the opponent a free move; if the reduced search
	// still clears beta the real position surely does.
	if depth >= 3 && !inCheck && hasNonPawnMaterial(b, us) && ply < MaxPly-1 {
		nu := b.MakeNullMove()
		r := 2
		if depth > 5 {
			r = 3
		}
		s := -e.negamax(b, depth-1-r, -beta, -beta+1, ply+1)
		b.UnmakeNullMove(nu)
		if e.stopped {
			return 0
		}
		if s >= beta {
			return beta
		}
	}

	var movesBuf [board.MaxMoves]board.Move
	var scoredBuf [board.MaxMoves]scoredMove
	moves := b.GenerateMoves(movesBuf[:0], false)
	scored := e.scoreMoves(b, moves, scoredBuf[:0], ttMove, ply)

	bestScore := -Infinity
	bestMove := board.NoMove
	anyLegal := false

	for i := 0; i < len(scored); i++ {
		orderNextMove(i, scored)
		m := scored[i].move

		legal, u := b.MakeMove(m)
		if !legal {
			continue
		}
		anyLegal = true

		if useFutility && m.IsQuiet() && staticEval+futilityMargin <= alpha {
			b.UnmakeMove(u)
			continue
		}

		var s int
		if m.IsQuiet() && !inCheck && depth >= 3 && i > 3 && ply > 0 {
			// Late quiet moves search shallower first; a surprise
			// improvement earns the full-depth re-search.
			r := 1
			if depth > 5 && i > 7 {
				r = 2
			}
			s = -e.negamax(b, depth-1-r, -beta, -alpha, ply+1)
			if s > alpha {
				s = -e.negamax(b, depth-1, -beta, -alpha, ply+1)
			}
		} else {
			s = -e.negamax(b, depth-1, -beta, -alpha, ply+1)
		}
		b.UnmakeMove(u)
		if e.stopped {
			return 0
		}

		if s > bestScore {
			bestScore = s
			bestMove = m
		}
		if s > alpha {
			alpha = s
			if alpha >= beta {
				if m.IsQuiet() && ply < MaxPly {
					e.storeKiller(m, ply)
					e.history[us][m.From()][m.To()] += depth * depth
				}
				break
			}
		}
	}

	if !anyLegal {
		if inCheck {
			return -Mate + ply
		}
		return 0
	}

	flag := flagExact
	if bestScore <= alphaOrig {
		flag = flagUpper
	} else if bestScore >= beta {
		flag = flagLower
	}
	e.tt.store(b.Hash(), depth, bestScore, flag, bestMove)

	return bestScore
}

// quiescence extends the search through capture chains so the static
// evaluation is only ever taken in quiet positions.
func (e *Engine) quiescence(b *board.Board, alpha, beta, ply int) int {
	if e.stopped {
		return 0
	}
	if !time.Now().Before(e.deadline) {
		e.stopped = true
		return 0
	}
	e.nodes++

	hp := e.basePly + ply
	if hp >= maxHistory {
		hp = maxHistory - 1
	}
	e.repStack[hp] = b.Hash()

	if b.HalfmoveClock() >= 100 || e.repetitionCount(b.Hash(), hp, b.HalfmoveClock()) >= 3 {
		return 0
	}

	stand := Evaluate(b)
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}

	var movesBuf [board.MaxMoves]board.Move
	var scoredBuf [board.MaxMoves]scoredMove
	moves := b.GenerateMoves(movesBuf[:0], true)
	scored := e.scoreMoves(b, moves, scoredBuf[:0], board.NoMove, ply)
	for i := 0; i < len(scored); i++ {
		orderNextMove(i, scored)
		m := scored[i].move
		legal, u := b.MakeMove(m)
		if !legal {
			continue
		}
		s := -e.quiescence(b, -beta, -alpha, ply+1)
		b.UnmakeMove(u)
		if e.stopped {
			return 0
		}
		if s >= beta {
			return beta
		}
		if s > alpha {
			alpha = s
		}
	}
	return alpha
}
