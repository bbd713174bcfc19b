// Command perft walks the legal move tree from the starting position (or a
// position reached by a move sequence) and reports leaf counts, optionally
// split per root move or across CPUs.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"chesscore/board"
	"chesscore/internal/logx"
)

func main() {
	depth := flag.Int("depth", 0, "perft depth (required)")
	moves := flag.String("moves", "", "space-separated coordinate moves applied from the starting position")
	divide := flag.Bool("divide", false, "print per-move node counts at root")
	parallel := flag.Bool("parallel", false, "split root moves across goroutines")
	flag.Parse()

	log := logx.NewLogger()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b := board.StartingPosition()
	for _, tok := range strings.Fields(*moves) {
		m, ok := findMove(b, tok)
		if !ok {
			log.Fatal().Str("move", tok).Msg("move not legal in this position")
		}
		if legal, _ := b.MakeMove(m); !legal {
			log.Fatal().Str("move", tok).Msg("move leaves king in check")
		}
	}

	start := time.Now()

	if *divide {
		div := board.PerftDivide(b, *depth)
		type kv struct {
			m board.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var nodes uint64
	if *parallel {
		nodes = parallelPerft(b, *depth)
	} else {
		nodes = board.Perft(b, *depth)
	}

	elapsed := time.Since(start)
	nps := uint64(0)
	if ms := elapsed.Milliseconds(); ms > 0 {
		nps = nodes * 1000 / uint64(ms)
	}
	log.Info().
		Int("depth", *depth).
		Uint64("nodes", nodes).
		Dur("elapsed", elapsed).
		Uint64("nps", nps).
		Msg("perft complete")
}

// parallelPerft splits the root moves across goroutines, each on its own
// copy of the position.
func parallelPerft(b *board.Board, depth int) uint64 {
	var buf [board.MaxMoves]board.Move
	roots := b.GenerateMoves(buf[:0], false)
	counts := make([]uint64, len(roots))

	var g errgroup.Group
	for i, m := range roots {
		i, m := i, m
		child := *b
		if ok, _ := child.MakeMove(m); !ok {
			continue
		}
		g.Go(func() error {
			counts[i] = board.Perft(&child, depth-1)
			return nil
		})
	}
	_ = g.Wait()

	var sum uint64
	for _, n := range counts {
		sum += n
	}
	return sum
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
