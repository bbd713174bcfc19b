package engine

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"chesscore/board"
)

// clamp restricts v to the inclusive range [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// hasNonPawnMaterial reports whether the side still owns a piece besides
// king and pawns. Null-move pruning is unsound in pawn endings because of
// zugzwang.
func hasNonPawnMaterial(b *board.Board, c board.Color) bool {
	pieces := b.Bitboard(c, board.Knight) | b.Bitboard(c, board.Bishop) |
		b.Bitboard(c, board.Rook) | b.Bitboard(c, board.Queen)
	return bits.OnesCount64(pieces) > 0
}
