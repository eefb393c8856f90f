/*
position.go defines the Position structure and its methods for
chessboard state management.
*/

package board

/*
Position represents a chessboard state that can be converted to or
parsed from a FEN string.

Bitboards holds one bitboard per piece (indices 0-11, see the Piece
constants), plus the white occupancy (index [BBWhite]), black
occupancy (index [BBBlack]) and combined occupancy (index [BBAll]).
*/
type Position struct {
	Bitboards      [15]uint64
	ActiveColor    Color
	CastlingRights CastlingRights
	// EPTarget is the en passant target square, or 0 if none is set.
	// 0 (a1) can never itself be a legal en passant target, so it
	// doubles as the "unset" sentinel.
	EPTarget    int
	HalfmoveCnt int
	FullmoveCnt int
}

// Clone returns a value copy of the position. Position contains no
// pointers or slices, so a plain struct copy already suffices; Clone
// exists to make that independence explicit at call sites that make a
// move speculatively (search, move generation).
func (p Position) Clone() Position {
	return p
}

/*
MakeMove mutates the position by applying the specified move. It is
the caller's responsibility to ensure that the move is at least
pseudo-legal.

The entire position is updated: piece placement, castling rights, en
passant target, halfmove counter, fullmove counter, and active color.
*/
func (p *Position) MakeMove(m Move, moved, captured Piece) {
	to := uint64(1) << m.To()
	from := uint64(1) << m.From()

	// Clear the origin square.
	p.removePiece(moved, from)

	// Increment halfmove counter to detect the 50-move rule; reset
	// below if the move is a capture or pawn push.
	p.HalfmoveCnt++

	// Remove the captured piece from the board. This skips en
	// passant captures, since the captured pawn does not occupy the
	// square the capturing piece moves to.
	if captured != PieceNone {
		p.removePiece(captured, to)
		p.HalfmoveCnt = 0
	}

	switch m.Type() {
	case MoveNormal:
		p.placePiece(moved, to)

	case MoveEnPassant:
		p.placePiece(moved, to)
		if moved == PieceWPawn {
			p.removePiece(PieceBPawn, to>>8)
		} else {
			p.removePiece(PieceWPawn, to<<8)
		}

	case MoveCastling:
		p.placePiece(moved, to)
		switch to {
		case G1: // White O-O.
			p.removePiece(PieceWRook, H1)
			p.placePiece(PieceWRook, F1)
		case G8: // Black O-O.
			p.removePiece(PieceBRook, H8)
			p.placePiece(PieceBRook, F8)
		case C1: // White O-O-O.
			p.removePiece(PieceWRook, A1)
			p.placePiece(PieceWRook, D1)
		case C8: // Black O-O-O.
			p.removePiece(PieceBRook, A8)
			p.placePiece(PieceBRook, D8)
		}

	case MovePromotion:
		switch m.PromoPiece() {
		case PromotionKnight:
			p.placePiece(PieceWKnight+p.ActiveColor, to)
		case PromotionBishop:
			p.placePiece(PieceWBishop+p.ActiveColor, to)
		case PromotionRook:
			p.placePiece(PieceWRook+p.ActiveColor, to)
		case PromotionQueen:
			p.placePiece(PieceWQueen+p.ActiveColor, to)
		}
	}

	// En passant is only legal for the move immediately following the
	// double push, so the target is always cleared here first.
	p.EPTarget = 0

	switch moved {
	case PieceWPawn, PieceBPawn:
		if m.To()+16 == m.From() {
			p.EPTarget = m.To() + 8
		} else if m.To()-16 == m.From() {
			p.EPTarget = m.To() - 8
		}
		p.HalfmoveCnt = 0
	case PieceWRook:
		switch m.From() {
		case SA1:
			p.CastlingRights &= ^CastlingWhiteLong
		case SH1:
			p.CastlingRights &= ^CastlingWhiteShort
		}
	case PieceBRook:
		switch m.From() {
		case SA8:
			p.CastlingRights &= ^CastlingBlackLong
		case SH8:
			p.CastlingRights &= ^CastlingBlackShort
		}
	case PieceWKing:
		p.CastlingRights &= ^(CastlingWhiteShort | CastlingWhiteLong)
	case PieceBKing:
		p.CastlingRights &= ^(CastlingBlackShort | CastlingBlackLong)
	}

	if p.ActiveColor == ColorBlack {
		p.FullmoveCnt++
	}

	p.ActiveColor ^= 1
}

// PieceAt returns the piece occupying the specified square, or
// [PieceNone] if the square is empty.
func (p *Position) PieceAt(square int) Piece {
	bb := uint64(1) << square
	for i := range 12 {
		if bb&p.Bitboards[i] != 0 {
			return i
		}
	}
	return PieceNone
}

/*
CanCastle reports whether the king can perform castling in the
specified direction.

side is one of the Castling* flags; attacks is the bitboard of squares
attacked by the opponent (king excluded from occupancy); occupancy is
the combined occupancy bitboard.
*/
func (p *Position) CanCastle(side CastlingRights, attacks, occupancy uint64) bool {
	c := BitScan(uint64(side))
	path := castlingPath[c]
	return p.CastlingRights&side != 0 &&
		attacks&castlingAttackPath[c] == 0 &&
		occupancy&path == 0
}

/*
Toggle XORs the piece on/off the specified square, along with its
color and combined occupancy bitboards. It is exported for callers
that need to temporarily remove a piece and restore it (e.g. move
generation excluding the king from occupancy while computing the
squares it is forbidden to step into) without going through the
halfmove-counter/castling-rights bookkeeping [Position.MakeMove]
performs.
*/
func (p *Position) Toggle(piece Piece, square uint64) {
	p.removePiece(piece, square)
}

// placePiece places the piece on the specified square and updates the
// color and combined occupancy bitboards.
func (p *Position) placePiece(piece Piece, square uint64) {
	p.Bitboards[piece] |= square
	p.Bitboards[BBWhite+(piece%2)] |= square
	p.Bitboards[BBAll] |= square
}

/*
removePiece removes the piece from the specified square and updates
the color and combined occupancy bitboards.

NOTE: if a piece of the specified type is not present on the square,
it will be placed rather than removed (removePiece toggles with XOR,
unlike placePiece's OR — callers are expected to always pass a piece
actually occupying the square).
*/
func (p *Position) removePiece(piece Piece, square uint64) {
	p.Bitboards[piece] ^= square
	p.Bitboards[BBWhite+(piece%2)] ^= square
	p.Bitboards[BBAll] ^= square
}

// Each path includes the king's own square.
// 0: White O-O, 1: White O-O-O, 2: Black O-O, 3: Black O-O-O.
var castlingPath = [4]uint64{
	0x70, 0x1E, 0x7000000000000000, 0x1E00000000000000,
}

var castlingAttackPath = [4]uint64{
	0x70, 0x1C, 0x7000000000000000, 0x1C00000000000000,
}
