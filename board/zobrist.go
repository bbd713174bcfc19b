package board

import "math/rand"

// Zobrist keys for pieces on squares, castling-rights states, en-passant
// files, and the side to move.
var zobristPiece [15][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristSide uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed keeps hashes reproducible across runs and tests.
	rnd := rand.New(rand.NewSource(0x5EED))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist recomputes the hash of the position from scratch. The
// incrementally maintained key must always equal this value; Validate
// checks exactly that.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castlingRights&15]
	if b.enPassant != NoSquare {
		key ^= zobristEnPassant[b.enPassant.File()]
	}
	return key
}
