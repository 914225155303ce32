package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"4k3/8/8/8/8/8/8/4K2R w K - 12 40",
		"8/1k6/8/8/8/8/6K1/8 b - - 99 120",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, b.ToFEN())
		assert.True(t, b.Validate(), fen)
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",          // seven ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", // bad piece letter
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // nine columns
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",  // seven columns
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq - 0 1", // bad castling char
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", // bad en passant
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq",       // missing en passant field
	}
	for _, fen := range bad {
		_, err := ParseFEN(fen)
		assert.Error(t, err, "FEN %q should be rejected", fen)
	}
}

func TestParseFENClockDefaults(t *testing.T) {
	b, err := ParseFEN("8/8/8/4k3/8/8/8/4K3 w - -")
	require.NoError(t, err)
	assert.Equal(t, 0, b.HalfmoveClock())
	assert.Equal(t, 0, b.FullmoveNumber())

	b, err = ParseFEN("8/8/8/4k3/8/8/8/4K3 w - - x y")
	require.NoError(t, err)
	assert.Equal(t, 0, b.HalfmoveClock())
	assert.Equal(t, 0, b.FullmoveNumber())
}

func TestParseFENHashesMatchComputed(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, b.ComputeHash(), b.Hash())
	assert.Equal(t, b.computePawnHash(), b.PawnHash())
	assert.Equal(t, b.computeMajorHash(), b.MajorHash())
	assert.Equal(t, b.computeMinorHash(), b.MinorHash())
}

func TestNewIsStartPosition(t *testing.T) {
	b := New()
	assert.Equal(t, FENStartPos, b.ToFEN())
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, E1, b.KingSquare(White))
	assert.Equal(t, E8, b.KingSquare(Black))
	assert.Equal(t, NoSquare, b.EnPassantSquare())
}
