package board

// Make applies a move to the board. The move must already have passed
// pseudo-legal validation; Make performs no checking of its own and a
// structurally invalid descriptor (empty origin, origin equal to
// destination) corrupts the position.
//
// The update is fully incremental: every representation change flows through
// the toggle primitive, and no bitboard or hash is ever recomputed from the
// full board.
func (b *Board) Make(m Move) {
	us := b.sideToMove
	from, to, flag := m.From(), m.To(), m.Flag()
	moved := b.pieces[from]

	placed := moved
	if m.IsPromotion() {
		placed = m.PromotionPiece()
	}

	captured := b.pieces[to]
	capSq := to
	if flag == FlagEnPassant {
		captured = Pawn
		capSq = b.epCaptureSquare(to)
	}

	b.toggle(from, moved, us)
	if captured != NoPieceType {
		b.toggle(capSq, captured, us.Flip())
	}
	b.toggle(to, placed, us)

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(to)
		b.toggleMove(rookFrom, rookTo, Rook, us)
	}

	b.setEnPassant(flag, to)
	b.updateCastlingRights(from, to, moved)

	if us == Black {
		b.fullmoveNumber++
	}
	if captured != NoPieceType || moved == Pawn {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	b.hash ^= zobristSide
	b.sideToMove = us.Flip()
}

// MakeNull passes the turn without moving a piece. Castling rights and piece
// placement are untouched; the halfmove clock resets and any en-passant
// target is cleared.
func (b *Board) MakeNull() {
	b.halfmoveClock = 0
	b.sideToMove = b.sideToMove.Flip()
	b.hash ^= zobristSide
	if b.enPassantSquare != NoSquare {
		b.hash ^= zobristEnPassant[b.enPassantSquare.File()]
		b.enPassantSquare = NoSquare
	}
}

// epCaptureSquare returns the square of the pawn an en-passant capture to
// 'to' removes. The same arithmetic yields the skipped square of a double
// push, which becomes the new en-passant target.
func (b *Board) epCaptureSquare(to Square) Square {
	if b.sideToMove == White {
		return to - 8
	}
	return to + 8
}

// castleRookSquares maps a castling king destination to the fixed rook
// relocation for that corner.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case C1:
		return A1, D1
	case G1:
		return H1, F1
	case C8:
		return A8, D8
	case G8:
		return H8, F8
	}
	// Unreachable for moves that passed pseudo-legal validation.
	return NoSquare, NoSquare
}

// setEnPassant replaces the en-passant target, XORing the hash key of the
// old target out and the new one in. Only a double push sets a target; any
// other move clears it.
func (b *Board) setEnPassant(flag uint8, to Square) {
	if b.enPassantSquare != NoSquare {
		b.hash ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	if flag == FlagDoublePush {
		b.enPassantSquare = b.epCaptureSquare(to)
		b.hash ^= zobristEnPassant[b.enPassantSquare.File()]
	} else {
		b.enPassantSquare = NoSquare
	}
}

// updateCastlingRights clears the rights a move forfeits. A king move drops
// both of the mover's rights; any move touching a rook-home corner drops
// that corner's right, which covers both the rook leaving and the rook being
// captured in place.
func (b *Board) updateCastlingRights(from, to Square, moved PieceType) {
	old := b.castlingRights
	if old == 0 {
		// Both sides already lost castling rights, nothing to update.
		return
	}
	next := old
	if moved == King {
		if b.sideToMove == White {
			next &= castlingBlack
		} else {
			next &= castlingWhite
		}
	}
	if from == H1 || to == H1 {
		next &^= CastlingWhiteK
	}
	if from == A1 || to == A1 {
		next &^= CastlingWhiteQ
	}
	if from == H8 || to == H8 {
		next &^= CastlingBlackK
	}
	if from == A8 || to == A8 {
		next &^= CastlingBlackQ
	}
	if next != old {
		b.hash ^= zobristCastle[old] ^ zobristCastle[next]
		b.castlingRights = next
	}
}
