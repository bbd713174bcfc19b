package board

import (
	"strconv"
	"strings"
	"testing"
)

var pieceFromFENChar = map[byte]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

// mustParseFEN builds a position from FEN through the exported setup
// surface. FEN handling is deliberately test-only; the core has no
// position-format API.
func mustParseFEN(t *testing.T, fen string) *Board {
	t.Helper()
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		t.Fatalf("bad FEN %q", fen)
	}

	b := NewBoard()
	rank := 7
	file := 0
	for i := 0; i < len(fields[0]); i++ {
		ch := fields[0][i]
		switch {
		case ch == '/':
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			p, ok := pieceFromFENChar[ch]
			if !ok {
				t.Fatalf("bad FEN piece %q in %q", ch, fen)
			}
			b.SetPiece(SquareAt(file, rank), p)
			file++
		}
	}

	if fields[1] == "b" {
		b.SetSideToMove(Black)
	}

	var cr CastlingRights
	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case 'K':
			cr |= CastleWhiteKingside
		case 'Q':
			cr |= CastleWhiteQueenside
		case 'k':
			cr |= CastleBlackKingside
		case 'q':
			cr |= CastleBlackQueenside
		}
	}
	b.SetCastlingRights(cr)

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			t.Fatalf("bad FEN ep square %q", fields[3])
		}
		b.SetEnPassant(sq)
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			t.Fatalf("bad FEN halfmove %q", fields[4])
		}
		b.SetHalfmoveClock(n)
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			t.Fatalf("bad FEN fullmove %q", fields[5])
		}
		b.SetFullmoveNumber(n)
	}

	if !b.Validate() {
		t.Fatalf("FEN setup produced inconsistent board: %q", fen)
	}
	return b
}

// findMoveStr locates a legal move by its coordinate notation.
func findMoveStr(t *testing.T, b *Board, token string) Move {
	t.Helper()
	var buf [MaxMoves]Move
	for _, m := range b.GenerateMoves(buf[:0], false) {
		if m.String() != token {
			continue
		}
		if ok, u := b.MakeMove(m); ok {
			b.UnmakeMove(u)
			return m
		}
	}
	t.Fatalf("move %s not legal here", token)
	return NoMove
}

// play applies a sequence of coordinate moves.
func play(t *testing.T, b *Board, moves ...string) {
	t.Helper()
	for _, token := range moves {
		m := findMoveStr(t, b, token)
		if ok, _ := b.MakeMove(m); !ok {
			t.Fatalf("move %s unexpectedly illegal", token)
		}
	}
}

// legalMoves returns the legal moves of the position.
func legalMoves(b *Board) []Move {
	var buf [MaxMoves]Move
	var out []Move
	for _, m := range b.GenerateMoves(buf[:0], false) {
		if ok, u := b.MakeMove(m); ok {
			b.UnmakeMove(u)
			out = append(out, m)
		}
	}
	return out
}
