// Command bench runs the searcher over a small built-in suite of positions
// and reports the move, score, node count and speed of each search.
package main

import (
	"flag"
	"strings"
	"time"

	"chesscore/board"
	"chesscore/engine"
	"chesscore/internal/logx"
)

// Each suite entry reaches its position by a move sequence from the
// starting position, so the tool needs no position-format input.
var suite = []struct {
	name  string
	moves string
}{
	{name: "startpos", moves: ""},
	{name: "italian", moves: "e2e4 e7e5 g1f3 b8c6 f1c4 f8c5 c2c3 g8f6 d2d3 d7d6"},
	{name: "sicilian", moves: "e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6"},
	{name: "queens-gambit", moves: "d2d4 d7d5 c2c4 e7e6 b1c3 g8f6 c4d5 e6d5 c1g5 f8e7"},
	{name: "scandinavian", moves: "e2e4 d7d5 e4d5 d8d5 b1c3 d5a5"},
}

func main() {
	moveTime := flag.Duration("movetime", 2*time.Second, "time budget per search")
	depth := flag.Int("depth", 64, "maximum search depth")
	verbose := flag.Bool("v", false, "log per-iteration search progress")
	flag.Parse()

	log := logx.NewLogger()

	opts := engine.Options{}
	if *verbose {
		opts.Logger = &log
	}
	e := engine.New(opts)

	var totalNodes uint64
	start := time.Now()

	for _, entry := range suite {
		b := board.StartingPosition()
		e.NewGame(b)
		ok := true
		for _, tok := range strings.Fields(entry.moves) {
			m, found := findMove(b, tok)
			if !found || !e.ApplyMove(b, m) {
				log.Error().Str("position", entry.name).Str("move", tok).Msg("bad suite move")
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		searchStart := time.Now()
		score, move, any := e.BestMove(b, *moveTime, *depth)
		elapsed := time.Since(searchStart)
		if !any {
			log.Warn().Str("position", entry.name).Msg("no legal move")
			continue
		}

		nodes := e.Nodes()
		totalNodes += nodes
		nps := uint64(0)
		if ms := elapsed.Milliseconds(); ms > 0 {
			nps = nodes * 1000 / uint64(ms)
		}
		log.Info().
			Str("position", entry.name).
			Str("move", move.String()).
			Int("score", score).
			Uint64("nodes", nodes).
			Uint64("nps", nps).
			Dur("elapsed", elapsed).
			Msg("search complete")
	}

	log.Info().
		Uint64("nodes", totalNodes).
		Dur("elapsed", time.Since(start)).
		Msg("bench complete")
}

func findMove(b *board.Board, token string) (board.Move, bool) {
	var buf [board.MaxMoves]board.Move
	for _, m := range b.GenerateMoves(buf[:0], false) {
		if m.String() == token {
			return m, true
		}
	}
	return board.NoMove, false
}
