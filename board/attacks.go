package board

import "math/bits"

// Precomputed attack masks for knights and kings from each square.
var knightMoves [64]uint64
var kingMoves [64]uint64

// Pawn attack masks: pawnAttacks[color][sq] gives the squares a pawn of
// 'color' attacks from 'sq'.
var pawnAttacks [2][64]uint64

// Precomputed rays for sliders. For each square and direction, the bitboard
// of squares in that ray (excluding the origin square).
// Rook directions: 0=N, 1=S, 2=E, 3=W
var rookRays [64][4]uint64

// Bishop directions: 0=NE, 1=NW, 2=SE, 3=SW
var bishopRays [64][4]uint64

func init() {
	initAttackTables()
	initRays()
}

func initAttackTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		var knightMask, kingMask uint64
		for _, off := range knightOffsets {
			rf := rank + off[0]
			ff := file + off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				knightMask |= uint64(1) << (rf*8 + ff)
			}
		}
		for _, off := range kingOffsets {
			rf := rank + off[0]
			ff := file + off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				kingMask |= uint64(1) << (rf*8 + ff)
			}
		}
		knightMoves[sq] = knightMask
		kingMoves[sq] = kingMask

		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= uint64(1) << ((rank+1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[White][sq] |= uint64(1) << ((rank+1)*8 + file + 1)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= uint64(1) << ((rank-1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= uint64(1) << ((rank-1)*8 + file + 1)
			}
		}
	}
}

func initRays() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var ray uint64
		for r := rank + 1; r < 8; r++ {
			ray |= 1 << uint(r*8+file)
		}
		rookRays[sq][0] = ray // N

		ray = 0
		for r := rank - 1; r >= 0; r-- {
			ray |= 1 << uint(r*8+file)
		}
		rookRays[sq][1] = ray // S

		ray = 0
		for f := file + 1; f < 8; f++ {
			ray |= 1 << uint(rank*8+f)
		}
		rookRays[sq][2] = ray // E

		ray = 0
		for f := file - 1; f >= 0; f-- {
			ray |= 1 << uint(rank*8+f)
		}
		rookRays[sq][3] = ray // W

		ray = 0
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][0] = ray // NE

		ray = 0
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][1] = ray // NW

		ray = 0
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][2] = ray // SE

		ray = 0
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][3] = ray // SW
	}
}

// rookAttacks returns the rook attack bitboard from sq given current occupancy.
func rookAttacks(sq int, occ uint64) uint64 {
	var attacks uint64

	// N (increasing indices)
	ray := rookRays[sq][0]
	if blockers := ray & occ; blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= rookRays[first][0]
	}
	attacks |= ray

	// S (decreasing indices)
	ray = rookRays[sq][1]
	if blockers := ray & occ; blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= rookRays[first][1]
	}
	attacks |= ray

	// E (increasing)
	ray = rookRays[sq][2]
	if blockers := ray & occ; blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= rookRays[first][2]
	}
	attacks |= ray

	// W (decreasing)
	ray = rookRays[sq][3]
	if blockers := ray & occ; blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= rookRays[first][3]
	}
	attacks |= ray

	return attacks
}

// bishopAttacks returns the bishop attack bitboard from sq given current occupancy.
func bishopAttacks(sq int, occ uint64) uint64 {
	var attacks uint64

	// NE (increasing)
	ray := bishopRays[sq][0]
	if blockers := ray & occ; blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= bishopRays[first][0]
	}
	attacks |= ray

	// NW (increasing)
	ray = bishopRays[sq][1]
	if blockers := ray & occ; blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= bishopRays[first][1]
	}
	attacks |= ray

	// SE (decreasing)
	ray = bishopRays[sq][2]
	if blockers := ray & occ; blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= bishopRays[first][2]
	}
	attacks |= ray

	// SW (decreasing)
	ray = bishopRays[sq][3]
	if blockers := ray & occ; blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= bishopRays[first][3]
	}
	attacks |= ray

	return attacks
}

// AttacksFrom returns the attack set of a piece of the given type and side
// standing on sq, computed against the supplied occupancy. Pawn attack sets
// contain capture squares only.
func AttacksFrom(sq Square, pt PieceType, c Color, occ uint64) uint64 {
	s := int(sq)
	switch pt {
	case Pawn:
		return pawnAttacks[c][s]
	case Knight:
		return knightMoves[s]
	case Bishop:
		return bishopAttacks(s, occ)
	case Rook:
		return rookAttacks(s, occ)
	case Queen:
		return rookAttacks(s, occ) | bishopAttacks(s, occ)
	case King:
		return kingMoves[s]
	}
	return 0
}

// IsSquareAttacked reports whether the given square is attacked by the given color.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.isSquareAttackedWithOcc(int(sq), by, b.AllOccupancy())
}

func (b *Board) isSquareAttackedWithOcc(s int, by Color, occ uint64) bool {
	// Pawn attacks via the reverse mask: the squares a pawn of the defending
	// color would attack from s are exactly the squares attacking pawns sit on.
	if pawnAttacks[by.Flip()][s]&b.Pawns(by) != 0 {
		return true
	}
	if knightMoves[s]&b.Knights(by) != 0 {
		return true
	}
	if kingMoves[s]&b.Kings(by) != 0 {
		return true
	}
	if rq := b.Rooks(by) | b.Queens(by); rq != 0 && rookAttacks(s, occ)&rq != 0 {
		return true
	}
	if bq := b.Bishops(by) | b.Queens(by); bq != 0 && bishopAttacks(s, occ)&bq != 0 {
		return true
	}
	return false
}

// anyAttacked reports whether any square in mask is attacked by 'by' under
// the supplied occupancy.
func (b *Board) anyAttacked(mask uint64, by Color, occ uint64) bool {
	for mask != 0 {
		sq := popLSB(&mask)
		if b.isSquareAttackedWithOcc(sq, by, occ) {
			return true
		}
	}
	return false
}

// InCheck reports whether the specified color's king is currently attacked.
func (b *Board) InCheck(c Color) bool {
	kingBB := b.Kings(c)
	if kingBB == 0 {
		return false
	}
	return b.isSquareAttackedWithOcc(bits.TrailingZeros64(kingBB), c.Flip(), b.AllOccupancy())
}
