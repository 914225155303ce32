package board

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New returns a board set up with the canonical starting position.
func New() *Board {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err) // the start position constant always parses
	}
	return b
}

// pieceFromChar converts a FEN piece letter to its type and side.
func pieceFromChar(ch rune) (PieceType, Color) {
	switch ch {
	case 'P':
		return Pawn, White
	case 'N':
		return Knight, White
	case 'B':
		return Bishop, White
	case 'R':
		return Rook, White
	case 'Q':
		return Queen, White
	case 'K':
		return King, White
	case 'p':
		return Pawn, Black
	case 'n':
		return Knight, Black
	case 'b':
		return Bishop, Black
	case 'r':
		return Rook, Black
	case 'q':
		return Queen, Black
	case 'k':
		return King, Black
	default:
		return NoPieceType, White
	}
}

// charFromPiece converts a piece type and side to its FEN letter.
func charFromPiece(pt PieceType, c Color) byte {
	var ch byte
	switch pt {
	case Pawn:
		ch = 'p'
	case Knight:
		ch = 'n'
	case Bishop:
		ch = 'b'
	case Rook:
		ch = 'r'
	case Queen:
		ch = 'q'
	case King:
		ch = 'k'
	default:
		return '?' // should not happen for valid pieces
	}
	if c == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// ParseFEN parses a FEN string and returns a new Board set up to that
// position. On any malformed input it returns an error and no board; a
// partially built position is never handed out. Missing or unparseable
// clock fields default to zero.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	b := &Board{enPassantSquare: NoSquare}

	// 1. Piece placement: every piece goes through the toggle primitive so
	// bitboards and mailbox can never disagree.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt, c := pieceFromChar(ch)
			if pt == NoPieceType {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			b.toggle(squareAt(file, rank), pt, c)
			file++
		}
		if file != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castlingRights |= CastlingWhiteK
			case 'Q':
				b.castlingRights |= CastlingWhiteQ
			case 'k':
				b.castlingRights |= CastlingBlackK
			case 'q':
				b.castlingRights |= CastlingBlackQ
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, errors.New("invalid FEN: invalid en passant square")
		}
		b.enPassantSquare = sq
	}

	// 5+6. Clocks; absent or unparseable fields default to zero.
	if len(fields) > 4 {
		if halfmove, err := strconv.Atoi(fields[4]); err == nil {
			b.halfmoveClock = halfmove
		}
	}
	if len(fields) > 5 {
		if fullmove, err := strconv.Atoi(fields[5]); err == nil {
			b.fullmoveNumber = fullmove
		}
	}

	// One from-scratch computation of every hash channel; all later updates
	// are incremental.
	b.hash = b.ComputeHash()
	b.pawnHash = b.computePawnHash()
	b.nonPawnHash[White] = b.computeNonPawnHash(White)
	b.nonPawnHash[Black] = b.computeNonPawnHash(Black)
	b.majorHash = b.computeMajorHash()
	b.minorHash = b.computeMinorHash()
	return b, nil
}

// ToFEN produces the FEN string for the current position.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := squareAt(file, rank)
			pt := b.pieces[sq]
			if pt == NoPieceType {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			c, _ := b.SideAt(sq)
			sb.WriteByte(charFromPiece(pt, c))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights in fixed KQkq order
	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(b.enPassantSquare.String())
	sb.WriteByte(' ')

	// 5+6. Clocks
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
