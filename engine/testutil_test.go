package engine

import (
	"strconv"
	"strings"
	"testing"

	"chesscore/board"
)

var pieceFromFENChar = map[byte]board.Piece{
	'P': board.WhitePawn, 'N': board.WhiteKnight, 'B': board.WhiteBishop,
	'R': board.WhiteRook, 'Q': board.WhiteQueen, 'K': board.WhiteKing,
	'p': board.BlackPawn, 'n': board.BlackKnight, 'b': board.BlackBishop,
	'r': board.BlackRook, 'q': board.BlackQueen, 'k': board.BlackKing,
}

// mustParseFEN builds a position through the board setup surface. Kept
// test-local; the core deliberately has no position-format API.
func mustParseFEN(t *testing.T, fen string) *board.Board {
	t.Helper()
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		t.Fatalf("bad FEN %q", fen)
	}

	b := board.NewBoard()
	rank, file := 7, 0
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
			b.SetPiece(board.SquareAt(file, rank), p)
			file++
		}
	}
	if fields[1] == "b" {
		b.SetSideToMove(board.Black)
	}
	var cr board.CastlingRights
	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case 'K':
			cr |= board.CastleWhiteKingside
		case 'Q':
			cr |= board.CastleWhiteQueenside
		case 'k':
			cr |= board.CastleBlackKingside
		case 'q':
			cr |= board.CastleBlackQueenside
		}
	}
	b.SetCastlingRights(cr)
	if fields[3] != "-" {
		sq, err := board.ParseSquare(fields[3])
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

func findMoveStr(t *testing.T, b *board.Board, token string) board.Move {
	t.Helper()
	var buf [board.MaxMoves]board.Move
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
	return board.NoMove
}

func legalMoves(b *board.Board) []board.Move {
	var buf [board.MaxMoves]board.Move
	var out []board.Move
	for _, m := range b.GenerateMoves(buf[:0], false) {
		if ok, u := b.MakeMove(m); ok {
			b.UnmakeMove(u)
			out = append(out, m)
		}
	}
	return out
}

// mirror builds the color-swapped point reflection of a position: every
// piece moves to square 63-s with its color flipped, and the side to move
// flips. Castling rights and en passant are assumed absent.
func mirror(t *testing.T, b *board.Board) *board.Board {
	t.Helper()
	m := board.NewBoard()
	for s := board.Square(0); s < 64; s++ {
		p := b.PieceAt(s)
		if p == board.NoPiece {
			continue
		}
		m.SetPiece(63-s, board.PieceFromType(p.Color().Other(), p.Type()))
	}
	m.SetSideToMove(b.SideToMove().Other())
	m.SetHalfmoveClock(b.HalfmoveClock())
	if !m.Validate() {
		t.Fatalf("mirror produced inconsistent board")
	}
	return m
}
