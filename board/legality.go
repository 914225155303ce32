package board

// Squares that must be unoccupied when the king castles.
const (
	castleTravelWhiteK uint64 = 0x0000000000000060
	castleTravelWhiteQ uint64 = 0x000000000000000E
	castleTravelBlackK uint64 = 0x6000000000000000
	castleTravelBlackQ uint64 = 0x0E00000000000000
)

// Squares that must not be attacked when the king castles: the king's
// origin, every square it passes through, and its destination.
const (
	castleSafetyWhiteK uint64 = 0x0000000000000070
	castleSafetyWhiteQ uint64 = 0x000000000000001C
	castleSafetyBlackK uint64 = 0x7000000000000000
	castleSafetyBlackQ uint64 = 0x1C00000000000000
)

// IsPseudoLegal reports whether the move is structurally valid in the
// current position, ignoring whether it leaves the mover's king attacked.
// It never mutates the board.
func (b *Board) IsPseudoLegal(m Move) bool {
	if m == NullMove {
		return false
	}

	from := m.From()
	to := m.To()
	if from == to {
		// Cannot move to the same square
		return false
	}

	pt := b.pieces[from]
	if pt == NoPieceType {
		return false
	}

	us := b.sideBB(b.sideToMove)
	them := b.sideBB(b.sideToMove.Flip())
	occ := us | them

	// Cannot move a piece that is not ours
	if us&bb(from) == 0 {
		return false
	}
	// Cannot capture our own piece
	if us&bb(to) != 0 {
		return false
	}

	captured := b.Captured(m)
	// Kings are never capturable
	if captured == King {
		return false
	}

	if m.IsCastle() {
		return b.isPseudoLegalCastle(m, pt, occ)
	}

	if pt == Pawn {
		return b.isPseudoLegalPawn(m, captured, occ, them)
	}

	// Pawn-specific flags are invalid on any other piece
	if m.IsEnPassant() || m.IsPromotion() || m.IsDoublePush() {
		return false
	}
	return AttacksFrom(from, pt, b.sideToMove, occ)&bb(to) != 0
}

func (b *Board) isPseudoLegalCastle(m Move, pt PieceType, occ uint64) bool {
	// Can only castle with the king
	if pt != King {
		return false
	}

	from, to := m.From(), m.To()
	homeRank := 0
	if b.sideToMove == Black {
		homeRank = 7
	}
	if from.Rank() != homeRank || to.Rank() != homeRank {
		return false
	}

	kingsideSq, queensideSq := G1, C1
	if b.sideToMove == Black {
		kingsideSq, queensideSq = G8, C8
	}
	if to != kingsideSq && to != queensideSq {
		return false
	}

	kingside := to == kingsideSq
	if (m.Flag() == FlagCastleKingside) != kingside {
		return false
	}

	var right CastlingRights
	var travel, safety uint64
	switch {
	case b.sideToMove == White && kingside:
		right, travel, safety = CastlingWhiteK, castleTravelWhiteK, castleSafetyWhiteK
	case b.sideToMove == White:
		right, travel, safety = CastlingWhiteQ, castleTravelWhiteQ, castleSafetyWhiteQ
	case kingside:
		right, travel, safety = CastlingBlackK, castleTravelBlackK, castleSafetyBlackK
	default:
		right, travel, safety = CastlingBlackQ, castleTravelBlackQ, castleSafetyBlackQ
	}

	if b.castlingRights&right == 0 {
		return false
	}
	// Cannot castle through occupied squares
	if occ&travel != 0 {
		return false
	}
	// Cannot castle out of, through, or into check
	return !b.anyAttacked(safety, b.sideToMove.Flip(), occ)
}

func (b *Board) isPseudoLegalPawn(m Move, captured PieceType, occ, them uint64) bool {
	from, to := m.From(), m.To()

	if m.IsEnPassant() {
		if to != b.enPassantSquare {
			return false
		}
		// The implied capture square must hold an opponent piece
		if them&bb(b.epCaptureSquare(to)) == 0 {
			return false
		}
	}

	fromRank, toRank := from.Rank(), to.Rank()
	// Cannot move a pawn backwards
	if b.sideToMove == White && toRank < fromRank {
		return false
	}
	if b.sideToMove == Black && toRank > fromRank {
		return false
	}

	promoRank := 7
	if b.sideToMove == Black {
		promoRank = 0
	}
	// The promotion flag and a far-rank landing must come together
	if m.IsPromotion() != (toRank == promoRank) {
		return false
	}

	if fileDiff := to.File() - from.File(); fileDiff != 0 {
		// Diagonal: one rank forward onto an adjacent file
		if fileDiff != 1 && fileDiff != -1 {
			return false
		}
		if toRank-fromRank != 1 && fromRank-toRank != 1 {
			return false
		}
		if m.IsDoublePush() {
			return false
		}
		// Must be capturing
		return captured != NoPieceType || m.IsEnPassant()
	}

	// Cannot capture with a pawn push
	if captured != NoPieceType {
		return false
	}

	if m.IsDoublePush() {
		homeRank := 1
		if b.sideToMove == Black {
			homeRank = 6
		}
		if fromRank != homeRank {
			return false
		}
		if occ&bb(b.epCaptureSquare(to)) != 0 {
			return false
		}
		return occ&bb(to) == 0
	}

	step := Square(8)
	if b.sideToMove == Black {
		step = -8
	}
	if to != from+step {
		return false
	}
	return occ&bb(to) == 0
}

// IsLegal reports whether a pseudo-legal move leaves the mover's own king
// safe. The position is copied, the move applied to the copy, and the copy
// discarded; the receiver is never mutated.
func (b *Board) IsLegal(m Move) bool {
	child := *b
	child.Make(m)
	return !child.InCheck(b.sideToMove)
}
