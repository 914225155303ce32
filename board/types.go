package board

// Color identifies a side. The numeric value doubles as the index into the
// side-occupancy half of the bitboard array.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Flip returns the opposing side.
func (c Color) Flip() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind. Zero means "no piece" so that an empty
// mailbox is the zero value.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// bbIndex maps a piece type to its slot in Board.bb. Slots 0-5 hold the six
// piece-type bitboards (pawn..king); the side occupancies live at 6 and 7.
func (pt PieceType) bbIndex() int { return int(pt) - 1 }

// IsMajor reports whether the piece type counts as a major piece.
func (pt PieceType) IsMajor() bool { return pt == Rook || pt == Queen }

// IsMinor reports whether the piece type counts as a minor piece.
func (pt PieceType) IsMinor() bool { return pt == Knight || pt == Bishop }

// Square is a board coordinate in 0..63, a1=0, h1=7, a8=56, h8=63.
type Square int

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File returns the square's file in 0..7 (a=0).
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the square's rank in 0..7 (rank 1 = 0).
func (sq Square) Rank() int { return int(sq) >> 3 }

func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// squareAt builds a square from file and rank indices in 0..7.
func squareAt(file, rank int) Square { return Square(rank*8 + file) }

// CastlingRights is a bitmask of the four castling permissions.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

const (
	castlingWhite = CastlingWhiteK | CastlingWhiteQ
	castlingBlack = CastlingBlackK | CastlingBlackQ
)
