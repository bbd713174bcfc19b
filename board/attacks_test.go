package board

import (
	"math/bits"
	"testing"
)

func TestLeaperAttackCounts(t *testing.T) {
	// Corner and centre counts pin down the table construction.
	if got := bits.OnesCount64(KnightAttacks(0)); got != 2 {
		t.Fatalf("knight on a1 attacks %d squares, want 2", got)
	}
	if got := bits.OnesCount64(KnightAttacks(SquareAt(4, 3))); got != 8 {
		t.Fatalf("knight on e4 attacks %d squares, want 8", got)
	}
	if got := bits.OnesCount64(KingAttacks(0)); got != 3 {
		t.Fatalf("king on a1 attacks %d squares, want 3", got)
	}
	if got := bits.OnesCount64(KingAttacks(SquareAt(4, 3))); got != 8 {
		t.Fatalf("king on e4 attacks %d squares, want 8", got)
	}
}

func TestPawnAttackDirections(t *testing.T) {
	e4 := SquareAt(4, 3)
	want := uint64(1)<<uint(SquareAt(3, 4)) | uint64(1)<<uint(SquareAt(5, 4))
	if PawnAttacks(White, e4) != want {
		t.Fatalf("white pawn on e4 must attack d5 and f5")
	}
	want = uint64(1)<<uint(SquareAt(3, 2)) | uint64(1)<<uint(SquareAt(5, 2))
	if PawnAttacks(Black, e4) != want {
		t.Fatalf("black pawn on e4 must attack d3 and f3")
	}
	if bits.OnesCount64(PawnAttacks(White, SquareAt(0, 1))) != 1 {
		t.Fatalf("white pawn on a2 attacks exactly one square")
	}
}

func TestSliderAttacksStopAtBlockers(t *testing.T) {
	e4 := SquareAt(4, 3)

	// Empty board: a rook sweeps 14 squares, a bishop on e4 sweeps 13.
	if got := bits.OnesCount64(RookAttacks(e4, 0)); got != 14 {
		t.Fatalf("rook on empty board attacks %d squares, want 14", got)
	}
	if got := bits.OnesCount64(BishopAttacks(e4, 0)); got != 13 {
		t.Fatalf("bishop on e4, empty board, attacks %d squares, want 13", got)
	}

	// A blocker on e6 cuts the northern ray after itself.
	occ := uint64(1) << uint(SquareAt(4, 5))
	att := RookAttacks(e4, occ)
	if att&(1<<uint(SquareAt(4, 5))) == 0 {
		t.Fatalf("first blocker must be included in the attack set")
	}
	if att&(1<<uint(SquareAt(4, 6))) != 0 {
		t.Fatalf("squares beyond the blocker must be excluded")
	}

	if QueenAttacks(e4, occ) != RookAttacks(e4, occ)|BishopAttacks(e4, occ) {
		t.Fatalf("queen attacks must be the union of rook and bishop attacks")
	}
}

func TestIsSquareAttacked(t *testing.T) {
	b := mustParseFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if !b.IsSquareAttacked(SquareAt(0, 7), White) {
		t.Fatalf("a1 rook must attack a8 on an open file")
	}
	if b.IsSquareAttacked(SquareAt(1, 7), White) {
		t.Fatalf("a1 rook must not attack b8")
	}

	// A piece in the way shadows the far side of the file.
	b = mustParseFEN(t, "4k3/8/8/N7/8/8/8/R3K3 w - - 0 1")
	if b.IsSquareAttacked(SquareAt(0, 7), White) {
		t.Fatalf("blocked rook must not attack a8")
	}
	if !b.IsSquareAttacked(SquareAt(0, 4), White) {
		t.Fatalf("rook must attack its own blocker's square a5")
	}
}

func TestInCheck(t *testing.T) {
	cases := []struct {
		fen   string
		color Color
		want  bool
	}{
		{"4k3/8/8/8/8/8/8/4K2R w - - 0 1", Black, false},
		{"4k3/8/8/8/8/8/8/4RK2 w - - 0 1", Black, true},
		{"4k3/8/8/1b6/8/8/8/4K3 w - - 0 1", White, false},
		{"4k3/8/8/8/1b6/8/8/4K3 w - - 0 1", White, true},
		{"4k3/8/8/8/8/3n4/8/4K3 w - - 0 1", White, true},
		{"4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", White, true},
		{"4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", White, false},
	}
	for _, tc := range cases {
		b := mustParseFEN(t, tc.fen)
		if got := b.InCheck(tc.color); got != tc.want {
			t.Fatalf("%s: InCheck(%v)=%v, want %v", tc.fen, tc.color, got, tc.want)
		}
	}
}
