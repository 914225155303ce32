package board

import "math/bits"

// PseudoLegalMovesInto appends every pseudo-legal move for the side to move
// into dst (reusing its backing storage) and returns the filled slice.
// Candidates come from the attack tables with their move-kind flags assigned
// at generation time; each one is then vetted by IsPseudoLegal, so castle
// candidates that pass rights and path-occupancy checks are still dropped
// when the king's path is attacked.
func (b *Board) PseudoLegalMovesInto(dst []Move) []Move {
	moves := b.candidateMoves(dst[:0])
	kept := moves[:0]
	for _, m := range moves {
		if b.IsPseudoLegal(m) {
			kept = append(kept, m)
		}
	}
	return kept
}

// PseudoLegalMoves returns all pseudo-legal moves (allocates a new slice).
func (b *Board) PseudoLegalMoves() []Move {
	return b.PseudoLegalMovesInto(make([]Move, 0, 128))
}

// LegalMovesInto appends every legal move for the side to move into dst and
// returns the filled slice. Each pseudo-legal move is probed on a copy of
// the position.
func (b *Board) LegalMovesInto(dst []Move) []Move {
	moves := b.PseudoLegalMovesInto(dst)
	kept := moves[:0]
	for _, m := range moves {
		if b.IsLegal(m) {
			kept = append(kept, m)
		}
	}
	return kept
}

// LegalMoves returns all legal moves (allocates a new slice).
func (b *Board) LegalMoves() []Move {
	return b.LegalMovesInto(make([]Move, 0, 128))
}

// candidateMoves proposes flagged candidate moves for the side to move.
func (b *Board) candidateMoves(moves []Move) []Move {
	side := b.sideToMove
	own := b.sideBB(side)
	opp := b.sideBB(side.Flip())
	all := own | opp

	// Pawns
	push := 8
	homeRank, promoRank := 1, 7
	if side == Black {
		push = -8
		homeRank, promoRank = 6, 0
	}
	pawns := b.Pawns(side)
	for pawns != 0 {
		from := popLSB(&pawns)
		fromSq := Square(from)

		one := from + push
		if all&bb(Square(one)) == 0 {
			if one/8 == promoRank {
				moves = appendPromotions(moves, fromSq, Square(one))
			} else {
				moves = append(moves, NewMove(fromSq, Square(one), FlagQuiet))
				if from/8 == homeRank {
					two := from + 2*push
					if all&bb(Square(two)) == 0 {
						moves = append(moves, NewMove(fromSq, Square(two), FlagDoublePush))
					}
				}
			}
		}

		caps := pawnAttacks[side][from]
		for targets := caps & opp; targets != 0; {
			to := popLSB(&targets)
			if to/8 == promoRank {
				moves = appendPromotions(moves, fromSq, Square(to))
			} else {
				moves = append(moves, NewMove(fromSq, Square(to), FlagQuiet))
			}
		}
		if b.enPassantSquare != NoSquare && caps&bb(b.enPassantSquare) != 0 {
			moves = append(moves, NewMove(fromSq, b.enPassantSquare, FlagEnPassant))
		}
	}

	// Knights, bishops, rooks, queens
	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		pcs := b.pieceBB(pt) & own
		for pcs != 0 {
			from := popLSB(&pcs)
			targets := AttacksFrom(Square(from), pt, side, all) &^ own
			for targets != 0 {
				to := popLSB(&targets)
				moves = append(moves, NewMove(Square(from), Square(to), FlagQuiet))
			}
		}
	}

	// King
	kingBB := b.Kings(side)
	if kingBB != 0 {
		from := bits.TrailingZeros64(kingBB)
		fromSq := Square(from)
		targets := kingMoves[from] &^ own
		for targets != 0 {
			to := popLSB(&targets)
			moves = append(moves, NewMove(fromSq, Square(to), FlagQuiet))
		}

		// Castle candidates on rights and an empty path; the pseudo-legal
		// filter rejects the ones that castle through attacked squares.
		if side == White {
			if b.castlingRights&CastlingWhiteK != 0 && all&castleTravelWhiteK == 0 && fromSq == E1 {
				moves = append(moves, NewMove(E1, G1, FlagCastleKingside))
			}
			if b.castlingRights&CastlingWhiteQ != 0 && all&castleTravelWhiteQ == 0 && fromSq == E1 {
				moves = append(moves, NewMove(E1, C1, FlagCastleQueenside))
			}
		} else {
			if b.castlingRights&CastlingBlackK != 0 && all&castleTravelBlackK == 0 && fromSq == E8 {
				moves = append(moves, NewMove(E8, G8, FlagCastleKingside))
			}
			if b.castlingRights&CastlingBlackQ != 0 && all&castleTravelBlackQ == 0 && fromSq == E8 {
				moves = append(moves, NewMove(E8, C8, FlagCastleQueenside))
			}
		}
	}

	return moves
}

func appendPromotions(moves []Move, from, to Square) []Move {
	moves = append(moves, NewMove(from, to, FlagPromoQueen))
	moves = append(moves, NewMove(from, to, FlagPromoRook))
	moves = append(moves, NewMove(from, to, FlagPromoBishop))
	moves = append(moves, NewMove(from, to, FlagPromoKnight))
	return moves
}

// Perft counts leaf nodes (move sequences) from the position for a given
// depth. It descends by copy-make and reuses per-depth move buffers to keep
// allocations off the hot path.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(b, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(b *Board, depth int, pc *perftCtx) uint64 {
	moves := b.LegalMovesInto(pc.bufFor(depth))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := *b
		child.Make(m)
		nodes += perftRec(&child, depth-1, pc)
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf
// nodes reachable through it at the given depth. Useful for debugging.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.LegalMoves() {
		child := *b
		child.Make(m)
		result[m] = Perft(&child, depth-1)
	}
	return result
}
