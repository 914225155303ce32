package board

import (
	"errors"
	"strings"
)

// Move encodes a move descriptor in 16 bits.
type Move uint16

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift = 0  // 6 bits
	moveToShift   = 6  // 6 bits
	moveFlagShift = 12 // 4 bits
)

// Move flags. Promotions set bit 3 of the flag nibble and carry the promoted
// piece in the low two bits (knight..queen), so a single nibble covers every
// move kind.
const (
	FlagQuiet           uint8 = 0
	FlagDoublePush      uint8 = 1
	FlagCastleKingside  uint8 = 2
	FlagCastleQueenside uint8 = 3
	FlagEnPassant       uint8 = 4
	FlagPromoKnight     uint8 = 8
	FlagPromoBishop     uint8 = 9
	FlagPromoRook       uint8 = 10
	FlagPromoQueen      uint8 = 11
)

// NullMove is the zero descriptor; it encodes no real move.
const NullMove Move = 0

// NewMove constructs a Move value from components.
func NewMove(from, to Square, flag uint8) Move {
	return Move(uint16(from&0x3F) |
		(uint16(to&0x3F) << moveToShift) |
		(uint16(flag&0xF) << moveFlagShift))
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint16(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint16(m) >> moveToShift) & 0x3F) }

// Flag returns the move-kind nibble.
func (m Move) Flag() uint8 { return uint8(uint16(m)>>moveFlagShift) & 0xF }

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKingside || f == FlagCastleQueenside
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }

// IsDoublePush reports whether the move is a two-square pawn advance.
func (m Move) IsDoublePush() bool { return m.Flag() == FlagDoublePush }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flag()&8 != 0 }

// PromotionPiece returns the piece type a promotion places, or NoPieceType
// for non-promotions.
func (m Move) PromotionPiece() PieceType {
	if !m.IsPromotion() {
		return NoPieceType
	}
	return Knight + PieceType(m.Flag()&3)
}

// String renders the move in coordinate notation (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	switch m.PromotionPiece() {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}

// ParseMove decodes coordinate notation into a Move, inferring the move-kind
// flag from the current position: a two-file king move is a castle, a pawn
// landing on the en-passant target is an en-passant capture, a two-rank pawn
// advance is a double push. "0000" decodes to NullMove.
func (b *Board) ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) != 4 && len(s) != 5 {
		return NullMove, errors.New("invalid move: must be 4 or 5 characters")
	}
	from, err := parseSquare(s[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return NullMove, err
	}

	flag := FlagQuiet
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			flag = FlagPromoKnight
		case 'b':
			flag = FlagPromoBishop
		case 'r':
			flag = FlagPromoRook
		case 'q':
			flag = FlagPromoQueen
		default:
			return NullMove, errors.New("invalid move: unknown promotion piece")
		}
		return NewMove(from, to, flag), nil
	}

	switch b.PieceAt(from) {
	case King:
		if to.File()-from.File() == 2 {
			flag = FlagCastleKingside
		} else if from.File()-to.File() == 2 {
			flag = FlagCastleQueenside
		}
	case Pawn:
		if to == b.enPassantSquare && to.File() != from.File() {
			flag = FlagEnPassant
		} else if to.Rank()-from.Rank() == 2 || from.Rank()-to.Rank() == 2 {
			flag = FlagDoublePush
		}
	}
	return NewMove(from, to, flag), nil
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, errors.New("invalid move: bad square coordinates")
	}
	return squareAt(int(s[0]-'a'), int(s[1]-'1')), nil
}
