package engine

import (
	"testing"

	"chesscore/board"
)

func TestEvaluateStartposIsBalanced(t *testing.T) {
	if got := Evaluate(board.StartingPosition()); got != 0 {
		t.Fatalf("starting position evaluates to %d, want 0", got)
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White up a knight from the start.
	b := board.StartingPosition()
	b.ClearSquare(board.SquareAt(1, 7)) // remove b8 knight
	if got := Evaluate(b); got < 200 {
		t.Fatalf("a clean extra knight evaluates to %d, want a solid plus", got)
	}

	// The same position from Black's perspective is the same amount worse.
	b.SetSideToMove(board.Black)
	if got := Evaluate(b); got > -200 {
		t.Fatalf("side-to-move perspective not applied, got %d", got)
	}
}

// TestEvaluateMirrorSymmetry reflects positions point-wise with colors
// swapped; the evaluation seen by the side to move must be identical.
// Kings stay off the castling and e-file squares, whose bonuses are tied
// to absolute board geography.
func TestEvaluateMirrorSymmetry(t *testing.T) {
	fens := []string{
		"k7/8/8/2p5/4N3/1P6/8/K7 w - - 0 1",
		"k6r/pp6/8/3P4/1q6/8/5PPP/K5NR w - - 0 1",
		"k7/2p5/1p6/p7/8/5P2/4P1P1/K7 b - - 0 1",
		"k2r4/8/8/3Pp3/8/2N5/1B6/K7 w - - 0 1",
	}
	for _, fen := range fens {
		b := mustParseFEN(t, fen)
		m := mirror(t, b)
		if got, want := Evaluate(m), Evaluate(b); got != want {
			t.Fatalf("%s: mirrored evaluation %d differs from %d", fen, got, want)
		}
	}
}

func TestEvaluatePassedPawnGrowsWithRank(t *testing.T) {
	// The same passed pawn further up the board must be worth more.
	low := mustParseFEN(t, "k7/8/8/8/8/1P6/8/K7 w - - 0 1")
	high := mustParseFEN(t, "k7/1P6/8/8/8/8/8/K7 w - - 0 1")
	if Evaluate(high) <= Evaluate(low) {
		t.Fatalf("advanced passed pawn %d should outscore %d", Evaluate(high), Evaluate(low))
	}
}

func TestEvaluatePawnStructurePenalties(t *testing.T) {
	// Doubled, isolated d-pawns against a healthy pair.
	weak := mustParseFEN(t, "k7/8/8/8/3P4/3P4/8/K7 w - - 0 1")
	healthy := mustParseFEN(t, "k7/8/8/8/8/3P4/2P5/K7 w - - 0 1")
	if Evaluate(weak) >= Evaluate(healthy) {
		t.Fatalf("doubled isolated pawns %d should trail connected pawns %d",
			Evaluate(weak), Evaluate(healthy))
	}
}

func TestEvaluateRookOpenFile(t *testing.T) {
	// A rook on an open file versus the same rook behind its own pawn.
	open := mustParseFEN(t, "k7/5p2/8/8/8/8/4P3/KR6 w - - 0 1")
	closed := mustParseFEN(t, "k7/5p2/8/8/8/8/1P6/KR6 w - - 0 1")
	if Evaluate(open) <= Evaluate(closed) {
		t.Fatalf("open-file rook %d should outscore blocked rook %d",
			Evaluate(open), Evaluate(closed))
	}
}

func TestEvaluateEndgameKingActivity(t *testing.T) {
	// With bare kings the phase is 0; the end-game king table lifts a
	// centralised king well above a cornered one, more than offsetting the
	// 5*(3-rank) term, which favours the back rank.
	central := mustParseFEN(t, "k7/8/8/8/3K4/8/8/8 w - - 0 1")
	corner := mustParseFEN(t, "k7/8/8/8/8/8/8/K7 w - - 0 1")
	if Evaluate(central) <= Evaluate(corner) {
		t.Fatalf("active king %d should outscore cornered king %d",
			Evaluate(central), Evaluate(corner))
	}
}

func TestPhaseBounds(t *testing.T) {
	if got := phaseOf(board.StartingPosition()); got != maxPhase {
		t.Fatalf("full material phase %d, want %d", got, maxPhase)
	}
	bare := mustParseFEN(t, "k7/8/8/8/8/8/8/K7 w - - 0 1")
	if got := phaseOf(bare); got != 0 {
		t.Fatalf("bare kings phase %d, want 0", got)
	}
}
