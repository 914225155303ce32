package board

import "math/rand"

// Zobrist key tables. Process-wide immutable state, filled once before any
// position is built; the core only ever reads them.
var zobristPiece [2][7][64]uint64 // [Color][PieceType][Square]; index 0 unused
var zobristCastle [16]uint64      // one key per castling-rights state
var zobristEnPassant [8]uint64    // one key per en-passant file
var zobristSide uint64            // XORed when Black is to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed for reproducibility across runs and in tests
	rnd := rand.New(rand.NewSource(0x40BBE5))

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][pt][sq] = rnd.Uint64()
			}
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

// ComputeHash recalculates the full-position hash from scratch: every
// (piece, side, square) key plus side to move, castling rights and the
// en-passant file. Normal play never needs this; it exists for position
// setup and integrity checks.
func (b *Board) ComputeHash() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		pt := b.pieces[sq]
		if pt == NoPieceType {
			continue
		}
		c, _ := b.SideAt(sq)
		key ^= zobristPiece[c][pt][sq]
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castlingRights]
	if b.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	return key
}

func (b *Board) computePawnHash() uint64 {
	var key uint64
	for c := White; c <= Black; c++ {
		pawns := b.Pawns(c)
		for pawns != 0 {
			sq := popLSB(&pawns)
			key ^= zobristPiece[c][Pawn][sq]
		}
	}
	return key
}

func (b *Board) computeNonPawnHash(c Color) uint64 {
	var key uint64
	for pt := Knight; pt <= King; pt++ {
		pcs := b.pieceBB(pt) & b.sideBB(c)
		for pcs != 0 {
			sq := popLSB(&pcs)
			key ^= zobristPiece[c][pt][sq]
		}
	}
	return key
}

func (b *Board) computeMajorHash() uint64 {
	var key uint64
	for c := White; c <= Black; c++ {
		for _, pt := range [2]PieceType{Rook, Queen} {
			pcs := b.pieceBB(pt) & b.sideBB(c)
			for pcs != 0 {
				sq := popLSB(&pcs)
				key ^= zobristPiece[c][pt][sq]
			}
		}
	}
	return key
}

func (b *Board) computeMinorHash() uint64 {
	var key uint64
	for c := White; c <= Black; c++ {
		for _, pt := range [2]PieceType{Knight, Bishop} {
			pcs := b.pieceBB(pt) & b.sideBB(c)
			for pcs != 0 {
				sq := popLSB(&pcs)
				key ^= zobristPiece[c][pt][sq]
			}
		}
	}
	return key
}
