// Package engine implements the search side of the chess core: tapered
// evaluation, a transposition table, move ordering heuristics, and a
// negamax alpha-beta search driven by iterative deepening under a
// wall-clock budget.
package engine

import (
	"time"

	"github.com/rs/zerolog"

	"chesscore/board"
)

const (
	// MaxPly bounds the search stack: killer slots, null-move recursion
	// and mate-distance scores all stay below it.
	MaxPly = 64

	// Infinity bounds the alpha-beta window; Mate is the base of
	// mate-distance scores (Mate-n means mate delivered in n plies).
	Infinity = 30000
	Mate     = 29000

	futilityMargin = 150

	// maxHistory bounds the combined game-plus-search repetition stack.
	maxHistory = 4096
)

// Options configures an Engine. The zero value gives a 2^20-entry
// transposition table and a silent logger.
type Options struct {
	// TTBits is log2 of the transposition table entry count.
	TTBits int
	// Logger receives per-iteration search events at debug level.
	Logger *zerolog.Logger
}

// Engine owns all state that outlives a single search call: the
// transposition table, the killer and history tables, and the game-level
// key history used for repetition detection across the search root.
// It is not safe for concurrent use; the search is single-threaded.
type Engine struct {
	tt      *transTable
	killers [MaxPly][2]board.Move
	history [2][64][64]int

	// gameHistory holds the key of every position actually played, from
	// the start of the game up to and including the current root.
	gameHistory []uint64

	// repStack is seeded with gameHistory at search entry and extended by
	// the search as it descends; basePly is the root's index into it.
	repStack [maxHistory]uint64
	basePly  int

	nodes    uint64
	deadline time.Time
	stopped  bool

	log zerolog.Logger
}

// New constructs an engine context. Tables are allocated once and reused
// across searches; the transposition table persists between calls.
func New(opts Options) *Engine {
	bits := opts.TTBits
	if bits <= 0 {
		bits = defaultTTBits
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Engine{
		tt:          newTransTable(bits),
		gameHistory: make([]uint64, 0, 512),
		log:         log,
	}
}

// NewGame resets b to the standard initial position and starts a fresh
// game history containing its key. The transposition table is cleared so
// entries from a previous game cannot leak stale best moves.
func (e *Engine) NewGame(b *board.Board) {
	*b = *board.StartingPosition()
	e.gameHistory = append(e.gameHistory[:0], b.Hash())
	e.tt.clear()
}

// SetPosition adopts an externally prepared position as the new game root,
// restarting the history at its key.
func (e *Engine) SetPosition(b *board.Board) {
	e.gameHistory = append(e.gameHistory[:0], b.Hash())
}

// ApplyMove plays a move on the game board and appends the resulting key
// to the game history. It reports false, leaving the position untouched,
// when the move is illegal.
func (e *Engine) ApplyMove(b *board.Board, m board.Move) bool {
	ok, _ := b.MakeMove(m)
	if !ok {
		return false
	}
	if len(e.gameHistory) < maxHistory {
		e.gameHistory = append(e.gameHistory, b.Hash())
	}
	return true
}

// GameDrawn reports whether the game is over by rule at the root: fifty
// quiet moves, threefold repetition of the current position, or dead
// material. Mate and stalemate are the driver's to detect via
// HasLegalMoves and InCheck.
func (e *Engine) GameDrawn(b *board.Board) bool {
	return b.IsDrawBy50() || b.IsDrawByRepetition(e.gameHistory) || b.InsufficientMaterial()
}

// Nodes returns the node count of the most recent search.
func (e *Engine) Nodes() uint64 { return e.nodes }

func (e *Engine) clearSearchTables() {
	for ply := range e.killers {
		e.killers[ply][0] = board.NoMove
		e.killers[ply][1] = board.NoMove
	}
	for c := range e.history {
		for from := range e.history[c] {
			for to := range e.history[c][from] {
				e.history[c][from][to] = 0
			}
		}
	}
}

// seedRepetition copies the game history into the bottom of the search
// repetition stack so repetitions straddling the root are found.
func (e *Engine) seedRepetition(b *board.Board) {
	if len(e.gameHistory) == 0 {
		e.gameHistory = append(e.gameHistory, b.Hash())
	}
	n := len(e.gameHistory)
	if n > maxHistory {
		n = maxHistory
	}
	copy(e.repStack[:n], e.gameHistory[len(e.gameHistory)-n:])
	e.basePly = n - 1
}

// repetitionCount counts occurrences of key in the reversible tail of the
// repetition stack, the window the halfmove clock spans up to hp.
func (e *Engine) repetitionCount(key uint64, hp, halfmove int) int {
	start := hp - halfmove
	if start < 0 {
		start = 0
	}
	count := 0
	for i := start; i <= hp; i++ {
		if e.repStack[i] == key {
			count++
		}
	}
	return count
}
