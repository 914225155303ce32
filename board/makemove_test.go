package board

import "testing"

// assertMakeMove parses a position, applies one move given in coordinate
// notation, and checks the resulting FEN plus full internal consistency.
func assertMakeMove(t *testing.T, startFEN, wantFEN, moveStr string) {
	t.Helper()
	b, err := ParseFEN(startFEN)
	if err != nil {
		t.Fatal(err)
	}
	m, err := b.ParseMove(moveStr)
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsPseudoLegal(m) {
		t.Fatalf("%s not pseudo-legal in %q", moveStr, startFEN)
	}
	if !b.IsLegal(m) {
		t.Fatalf("%s not legal in %q", moveStr, startFEN)
	}
	b.Make(m)
	if got := b.ToFEN(); got != wantFEN {
		t.Fatalf("FEN after %s: got %q want %q", moveStr, got, wantFEN)
	}
	if !b.Validate() {
		t.Fatalf("board inconsistent after %s", moveStr)
	}
}

func TestMakeStandardMove(t *testing.T) {
	assertMakeMove(t,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		"g1f3")
}

func TestMakeCapture(t *testing.T) {
	assertMakeMove(t,
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
		"e4d5")
}

func TestMakeDoublePush(t *testing.T) {
	assertMakeMove(t,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"c7c5")
}

func TestMakeEnPassant(t *testing.T) {
	assertMakeMove(t,
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		"e5f6")
}

func TestMakeCastleKingsideWhite(t *testing.T) {
	assertMakeMove(t,
		"r1bqk1nr/pppp1ppp/2n5/1Bb1p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"r1bqk1nr/pppp1ppp/2n5/1Bb1p3/4P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		"e1g1")
}

func TestMakeCastleKingsideBlack(t *testing.T) {
	assertMakeMove(t,
		"rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/2P2N2/PP1P1PPP/RNBQK2R b KQkq - 0 4",
		"rnbq1rk1/pppp1ppp/5n2/2b1p3/2B1P3/2P2N2/PP1P1PPP/RNBQK2R w KQ - 1 5",
		"e8g8")
}

func TestMakeCastleQueensideWhite(t *testing.T) {
	assertMakeMove(t,
		"r3kbnr/pppqpppp/2n5/3p1b2/3P1B2/2N5/PPPQPPPP/R3KBNR w KQkq - 6 5",
		"r3kbnr/pppqpppp/2n5/3p1b2/3P1B2/2N5/PPPQPPPP/2KR1BNR b kq - 7 5",
		"e1c1")
}

func TestMakeCastleQueensideBlack(t *testing.T) {
	assertMakeMove(t,
		"r3kbnr/pppqpppp/2n5/3p1b2/8/2N2NP1/PPPPPPBP/R1BQ1K1R b kq - 6 5",
		"2kr1bnr/pppqpppp/2n5/3p1b2/8/2N2NP1/PPPPPPBP/R1BQ1K1R w - - 7 6",
		"e8c8")
}

func TestMakeQueenPromotion(t *testing.T) {
	assertMakeMove(t,
		"rn1q1bnr/pppbkPpp/8/8/8/8/PPPP1PPP/RNBQKBNR w KQ - 1 5",
		"rn1q1bQr/pppbk1pp/8/8/8/8/PPPP1PPP/RNBQKBNR b KQ - 0 5",
		"f7g8q")
}

func TestMakeUnderPromotionCapture(t *testing.T) {
	// Promotion by capture clears the halfmove clock and removes the rook.
	assertMakeMove(t,
		"rn1q1bnr/pppbkPpp/8/8/8/8/PPPP1PPP/RNBQKBNR w KQ - 1 5",
		"rn1q1bNr/pppbk1pp/8/8/8/8/PPPP1PPP/RNBQKBNR b KQ - 0 5",
		"f7g8n")
}

// Rook captures on a home corner must clear that corner's right even though
// the capture is made by the opponent.
func TestRookCaptureClearsCastlingRight(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, _ := b.ParseMove("a8a1")
	b.Make(m)
	rights := b.CastlingRightsMask()
	if rights&CastlingWhiteQ != 0 {
		t.Fatalf("white queen-side right survived rook capture on a1: %04b", rights)
	}
	if rights&CastlingBlackQ != 0 {
		t.Fatalf("black queen-side right survived rook leaving a8: %04b", rights)
	}
	if rights&(CastlingWhiteK|CastlingBlackK) != (CastlingWhiteK | CastlingBlackK) {
		t.Fatalf("king-side rights should be untouched: %04b", rights)
	}
	if !b.Validate() {
		t.Fatal("board inconsistent after rook capture")
	}
}

// Castling rights may only ever shrink along a move sequence.
func TestCastlingRightsMonotonic(t *testing.T) {
	b := New()
	prev := b.CastlingRightsMask()
	for _, ms := range []string{
		"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1", "f8c5",
		"d2d3", "e8g8", "c1g5", "d7d6", "b1c3", "c8g4",
	} {
		m, err := b.ParseMove(ms)
		if err != nil {
			t.Fatal(err)
		}
		if !b.IsLegal(m) {
			t.Fatalf("scripted move %s is not legal", ms)
		}
		b.Make(m)
		cur := b.CastlingRightsMask()
		if cur&^prev != 0 {
			t.Fatalf("castling right reappeared after %s: had %04b now %04b", ms, prev, cur)
		}
		prev = cur
	}
	if prev != 0 {
		t.Fatalf("both sides castled, expected no rights left, got %04b", prev)
	}
}

// An en-passant target set by a double push is gone after exactly one
// subsequent move, whatever that move is.
func TestEnPassantTargetLiveness(t *testing.T) {
	b := New()
	m, _ := b.ParseMove("e2e4")
	b.Make(m)
	if b.EnPassantSquare() != E3 {
		t.Fatalf("expected en-passant target e3, got %v", b.EnPassantSquare())
	}
	m, _ = b.ParseMove("g8f6")
	b.Make(m)
	if b.EnPassantSquare() != NoSquare {
		t.Fatalf("en-passant target should be cleared, got %v", b.EnPassantSquare())
	}
	if !b.Validate() {
		t.Fatal("board inconsistent after clearing en-passant target")
	}
}

func TestHalfmoveClock(t *testing.T) {
	b := New()
	for _, step := range []struct {
		move string
		want int
	}{
		{"g1f3", 1},
		{"b8c6", 2},
		{"e2e4", 0}, // pawn move resets
		{"c6d4", 1},
		{"f3d4", 0}, // capture resets
	} {
		m, _ := b.ParseMove(step.move)
		b.Make(m)
		if b.HalfmoveClock() != step.want {
			t.Fatalf("halfmove clock after %s: got %d want %d", step.move, b.HalfmoveClock(), step.want)
		}
	}
}

func TestFullmoveCounter(t *testing.T) {
	b := New()
	m, _ := b.ParseMove("e2e4")
	b.Make(m)
	if b.FullmoveNumber() != 1 {
		t.Fatalf("fullmove after white's move: got %d want 1", b.FullmoveNumber())
	}
	m, _ = b.ParseMove("e7e5")
	b.Make(m)
	if b.FullmoveNumber() != 2 {
		t.Fatalf("fullmove after black's move: got %d want 2", b.FullmoveNumber())
	}
}

func TestMakeNull(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2")
	if err != nil {
		t.Fatal(err)
	}
	placement := b.PawnHash()
	b.MakeNull()
	if b.SideToMove() != Black {
		t.Fatal("side to move should flip on a null move")
	}
	if b.EnPassantSquare() != NoSquare {
		t.Fatal("null move should clear the en-passant target")
	}
	if b.HalfmoveClock() != 0 {
		t.Fatal("null move should reset the halfmove clock")
	}
	if b.PawnHash() != placement {
		t.Fatal("null move must not touch piece placement channels")
	}
	if b.Hash() != b.ComputeHash() {
		t.Fatal("hash drifted across a null move")
	}

	// Without an en-passant target in play, two null moves cancel out.
	b2 := New()
	want := b2.Hash()
	b2.MakeNull()
	b2.MakeNull()
	if b2.Hash() != want {
		t.Fatal("two null moves from the start position should restore the hash")
	}
}
