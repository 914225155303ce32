package board

import "math/bits"

// Board index of the White occupancy bitboard; Black follows at 7.
// Slots 0-5 hold the piece-type bitboards, see PieceType.bbIndex.
const occupancySlot = 6

// Board holds the full position state. It is a flat value: copying a Board
// yields an independent position, which is how speculative legality probing
// works (see IsLegal).
type Board struct {
	// The eight square sets: six piece-type bitboards shared by both sides,
	// then the White and Black occupancy bitboards.
	bb [8]uint64

	// Mailbox mirror of the bitboards for O(1) point lookup. Side ownership
	// is derived from the occupancy bitboards.
	pieces [64]PieceType

	sideToMove     Color
	castlingRights CastlingRights

	// En passant target square (set by a double pawn push, otherwise NoSquare)
	enPassantSquare Square

	// Halfmove clock (half-moves since last capture or pawn advance, for the 50-move rule)
	halfmoveClock int

	// Fullmove number (incremented after Black's move)
	fullmoveNumber int

	// Incrementally maintained hash channels. The full hash also covers side
	// to move, castling rights and the en-passant file; the sub-channels
	// cover piece placement only.
	hash        uint64
	pawnHash    uint64
	nonPawnHash [2]uint64
	majorHash   uint64
	minorHash   uint64
}

// toggle flips the occupancy of a square for the given piece and side in
// every representation at once: the piece-type bitboard, the side occupancy,
// the mailbox entry, and every hash channel the piece type belongs to. It is
// self-inverse and is the only writer of bitboards, mailbox and hashes.
func (b *Board) toggle(sq Square, pt PieceType, c Color) {
	mask := bb(sq)
	b.bb[pt.bbIndex()] ^= mask
	b.bb[occupancySlot+int(c)] ^= mask
	if b.pieces[sq] == pt {
		b.pieces[sq] = NoPieceType
	} else {
		b.pieces[sq] = pt
	}
	key := zobristPiece[c][pt][sq]
	b.hash ^= key
	if pt == Pawn {
		b.pawnHash ^= key
	} else {
		b.nonPawnHash[c] ^= key
		if pt.IsMajor() {
			b.majorHash ^= key
		}
		if pt.IsMinor() {
			b.minorHash ^= key
		}
	}
}

// toggleMove relocates a piece by toggling its origin and destination.
func (b *Board) toggleMove(from, to Square, pt PieceType, c Color) {
	b.toggle(from, pt, c)
	b.toggle(to, pt, c)
}

// ==========================
// Accessors
// ==========================

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRightsMask returns the current castling permissions.
func (b *Board) CastlingRightsMask() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock returns half-moves since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the full-position hash.
func (b *Board) Hash() uint64 { return b.hash }

// PawnHash returns the pawns-only hash channel.
func (b *Board) PawnHash() uint64 { return b.pawnHash }

// NonPawnHash returns the non-pawn hash channel for one side.
func (b *Board) NonPawnHash(c Color) uint64 { return b.nonPawnHash[c] }

// MajorHash returns the rooks-and-queens hash channel.
func (b *Board) MajorHash() uint64 { return b.majorHash }

// MinorHash returns the knights-and-bishops hash channel.
func (b *Board) MinorHash() uint64 { return b.minorHash }

// PieceAt returns the piece type on a square, or NoPieceType.
func (b *Board) PieceAt(sq Square) PieceType { return b.pieces[sq] }

// SideAt returns the side occupying a square; ok is false for empty squares.
func (b *Board) SideAt(sq Square) (c Color, ok bool) {
	mask := bb(sq)
	if b.bb[occupancySlot]&mask != 0 {
		return White, true
	}
	if b.bb[occupancySlot+1]&mask != 0 {
		return Black, true
	}
	return White, false
}

func (b *Board) pieceBB(pt PieceType) uint64 { return b.bb[pt.bbIndex()] }

func (b *Board) sideBB(c Color) uint64 { return b.bb[occupancySlot+int(c)] }

// ColorOccupancy returns the occupancy bitboard for the given side.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.sideBB(c) }

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() uint64 { return b.bb[occupancySlot] | b.bb[occupancySlot+1] }

// Pawns returns the pawn bitboard for one side.
func (b *Board) Pawns(c Color) uint64 { return b.pieceBB(Pawn) & b.sideBB(c) }

// Knights returns the knight bitboard for one side.
func (b *Board) Knights(c Color) uint64 { return b.pieceBB(Knight) & b.sideBB(c) }

// Bishops returns the bishop bitboard for one side.
func (b *Board) Bishops(c Color) uint64 { return b.pieceBB(Bishop) & b.sideBB(c) }

// Rooks returns the rook bitboard for one side.
func (b *Board) Rooks(c Color) uint64 { return b.pieceBB(Rook) & b.sideBB(c) }

// Queens returns the queen bitboard for one side.
func (b *Board) Queens(c Color) uint64 { return b.pieceBB(Queen) & b.sideBB(c) }

// Kings returns the king bitboard for one side.
func (b *Board) Kings(c Color) uint64 { return b.pieceBB(King) & b.sideBB(c) }

// KingSquare returns the square of the side's king. Positions hold exactly
// one king per side; anything else is outside the supported state space.
func (b *Board) KingSquare(c Color) Square {
	return Square(bits.TrailingZeros64(b.Kings(c)))
}

// Captured returns the piece type a move would capture in the current
// position, or NoPieceType. Castles never capture; en passant always
// captures a pawn.
func (b *Board) Captured(m Move) PieceType {
	if m.IsCastle() {
		return NoPieceType
	}
	if m.IsEnPassant() {
		return Pawn
	}
	return b.pieces[m.To()]
}

// IsNoisy reports whether the move is a capture or promotion.
func (b *Board) IsNoisy(m Move) bool {
	return m.IsPromotion() || b.Captured(m) != NoPieceType
}

// HasNonPawns reports whether the side to move owns any piece besides its
// king and pawns. Search layers gate null-move pruning on this.
func (b *Board) HasNonPawns() bool {
	us := b.sideBB(b.sideToMove)
	return (b.Kings(b.sideToMove)|b.Pawns(b.sideToMove)) != us
}

// ==========================
// Terminal predicates
// ==========================

// IsDrawBy50 reports a 50-move rule draw (halfmoveClock counts half-moves).
func (b *Board) IsDrawBy50() bool { return b.halfmoveClock >= 100 }

// IsInsufficientMaterial reports whether neither side retains mating
// material: no pawns, rooks or queens anywhere, and too few minor pieces to
// force mate. One minor total is never enough; if only bishops remain and a
// single side owns two or more, mate is possible; otherwise up to three
// minors total is a draw.
func (b *Board) IsInsufficientMaterial() bool {
	if b.pieceBB(Pawn)|b.pieceBB(Rook)|b.pieceBB(Queen) != 0 {
		return false
	}
	knights := b.pieceBB(Knight)
	bishops := b.pieceBB(Bishop)
	minors := bits.OnesCount64(knights | bishops)
	if minors <= 1 {
		return true
	}
	if knights == 0 {
		if bits.OnesCount64(bishops&b.sideBB(White)) >= 2 ||
			bits.OnesCount64(bishops&b.sideBB(Black)) >= 2 {
			return false
		}
	}
	return minors <= 3
}

// IsDrawByRepetition reports a draw by threefold repetition based on the
// provided history of full-position hashes. The current position counts as
// one occurrence; the hash already encodes side to move, castling rights and
// the en-passant file, which the repetition rule requires. Callers typically
// pass hashes since the last irreversible move.
func (b *Board) IsDrawByRepetition(history []uint64) bool {
	target := b.hash
	// Do not double-count if the last history entry is the current position.
	end := len(history)
	if end > 0 && history[end-1] == target {
		end--
	}
	matches := 0
	for i := 0; i < end; i++ {
		if history[i] == target {
			matches++
			if matches >= 2 { // plus current occurrence makes threefold
				return true
			}
		}
	}
	return false
}

// Validate checks internal consistency between the mailbox, the piece and
// occupancy bitboards, and all five hash channels against from-scratch
// recomputation. Returns true if consistent.
func (b *Board) Validate() bool {
	if b.bb[occupancySlot]&b.bb[occupancySlot+1] != 0 {
		return false
	}
	all := b.AllOccupancy()
	var union uint64
	for pt := Pawn; pt <= King; pt++ {
		pcs := b.pieceBB(pt)
		if pcs&union != 0 {
			return false
		}
		union |= pcs
	}
	if union != all {
		return false
	}
	for sq := Square(0); sq < 64; sq++ {
		pt := b.pieces[sq]
		mask := bb(sq)
		if pt == NoPieceType {
			if all&mask != 0 {
				return false
			}
			continue
		}
		if b.pieceBB(pt)&mask == 0 {
			return false
		}
	}
	if b.hash != b.ComputeHash() ||
		b.pawnHash != b.computePawnHash() ||
		b.nonPawnHash[White] != b.computeNonPawnHash(White) ||
		b.nonPawnHash[Black] != b.computeNonPawnHash(Black) ||
		b.majorHash != b.computeMajorHash() ||
		b.minorHash != b.computeMinorHash() {
		return false
	}
	return true
}

// ==========================
// Bitboard helpers
// ==========================

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	x := *mask & -(*mask)
	idx := bits.TrailingZeros64(x)
	*mask &= *mask - 1
	return idx
}
