/*
attacks.go implements attack-set generation for every piece type.

Leaper pieces (pawn, knight, king) use precalculated lookup tables,
initialized once via [Init]. Sliding pieces (bishop, rook, queen) are
generated on demand by walking each ray until a board edge or blocking
piece is reached; no magic-bitboard tables are kept, since the lookup
tables would have no caller other than this ray-walk itself.
*/
package attacks

import "github.com/jorge1289/solomon/board"

const (
	notAFile  uint64 = 0xFEFEFEFEFEFEFEFE
	notHFile  uint64 = 0x7F7F7F7F7F7F7F7F
	notABFile uint64 = 0xFCFCFCFCFCFCFCFC
	notGHFile uint64 = 0x3F3F3F3F3F3F3F3F
	not1Rank  uint64 = 0xFFFFFFFFFFFFFF00
	not8Rank  uint64 = 0x00FFFFFFFFFFFFFF
)

var (
	pawnAttacks   [2][64]uint64
	knightAttacks [64]uint64
	kingAttacks   [64]uint64
)

// Init populates the leaper-piece attack tables. Call it once before
// using any other function in this package.
func Init() {
	for sq := range 64 {
		bb := uint64(1) << sq
		pawnAttacks[board.ColorWhite][sq] = genPawnAttacks(bb, board.ColorWhite)
		pawnAttacks[board.ColorBlack][sq] = genPawnAttacks(bb, board.ColorBlack)
		knightAttacks[sq] = genKnightAttacks(bb)
		kingAttacks[sq] = genKingAttacks(bb)
	}
}

// Pawn returns the attack bitboard of a single pawn of color c
// standing on sq.
func Pawn(sq int, c board.Color) uint64 { return pawnAttacks[c][sq] }

// Knight returns the attack bitboard of a knight standing on sq.
func Knight(sq int) uint64 { return knightAttacks[sq] }

// King returns the attack bitboard of a king standing on sq.
func King(sq int) uint64 { return kingAttacks[sq] }

// Bishop returns the attack bitboard of a bishop standing on sq,
// given the combined occupancy bitboard of the position.
func Bishop(sq int, occupancy uint64) uint64 {
	return genBishopAttacks(uint64(1)<<sq, occupancy)
}

// Rook returns the attack bitboard of a rook standing on sq, given
// the combined occupancy bitboard of the position.
func Rook(sq int, occupancy uint64) uint64 {
	return genRookAttacks(uint64(1)<<sq, occupancy)
}

// Queen returns the attack bitboard of a queen standing on sq, given
// the combined occupancy bitboard of the position.
func Queen(sq int, occupancy uint64) uint64 {
	return Bishop(sq, occupancy) | Rook(sq, occupancy)
}

// genPawnAttacks computes the attack bitboard for one or more pawns of
// the given color simultaneously.
func genPawnAttacks(pawns uint64, c board.Color) uint64 {
	if c == board.ColorWhite {
		return (pawns & notAFile << 7) | (pawns & notHFile << 9)
	}
	return (pawns & notAFile >> 9) | (pawns & notHFile >> 7)
}

// genKnightAttacks computes the attack bitboard for one or more
// knights simultaneously.
func genKnightAttacks(knights uint64) uint64 {
	return (knights & notAFile >> 17) |
		(knights & notHFile >> 15) |
		(knights & notABFile >> 10) |
		(knights & notGHFile >> 6) |
		(knights & notABFile << 6) |
		(knights & notGHFile << 10) |
		(knights & notAFile << 15) |
		(knights & notHFile << 17)
}

// genKingAttacks computes the attack bitboard for a single king.
func genKingAttacks(king uint64) uint64 {
	return (king & notAFile >> 9) |
		(king >> 8) |
		(king & notHFile >> 7) |
		(king & notAFile >> 1) |
		(king & notHFile << 1) |
		(king & notAFile << 7) |
		(king << 8) |
		(king & notHFile << 9)
}

/*
genBishopAttacks walks all four diagonal rays from the bishop's
square, stopping at (and including) the first occupied square in each
direction. Cannot generate attacks for multiple bishops at once.
*/
func genBishopAttacks(bishop, occupancy uint64) (attacks uint64) {
	for i := bishop & notAFile >> 9; i&notHFile != 0; i >>= 9 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notHFile >> 7; i&notAFile != 0; i >>= 7 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notAFile << 7; i&notHFile != 0; i <<= 7 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notHFile << 9; i&notAFile != 0; i <<= 9 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	return attacks
}

/*
genRookAttacks walks all four orthogonal rays from the rook's square,
stopping at (and including) the first occupied square in each
direction. Cannot generate attacks for multiple rooks at once.
*/
func genRookAttacks(rook, occupancy uint64) (attacks uint64) {
	for i := rook & notAFile >> 1; i&notHFile != 0; i >>= 1 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & notHFile << 1; i&notAFile != 0; i <<= 1 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & not1Rank >> 8; i&not8Rank != 0; i >>= 8 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & not8Rank << 8; i&not1Rank != 0; i <<= 8 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	return attacks
}

// AttacksOnSquare returns the bitboard of all pieces of color c that
// attack sq, given the combined occupancy bitboard.
func AttacksOnSquare(bitboards [15]uint64, sq int, c board.Color) uint64 {
	occupancy := bitboards[board.BBAll]
	var attackers uint64

	attackers |= Pawn(sq, 1^c) & bitboards[board.PieceWPawn+c]
	attackers |= Knight(sq) & bitboards[board.PieceWKnight+c]
	attackers |= King(sq) & bitboards[board.PieceWKing+c]
	attackers |= Bishop(sq, occupancy) & (bitboards[board.PieceWBishop+c] | bitboards[board.PieceWQueen+c])
	attackers |= Rook(sq, occupancy) & (bitboards[board.PieceWRook+c] | bitboards[board.PieceWQueen+c])

	return attackers
}

/*
All returns the bitboard of every square attacked by color c's pieces
in the given position, using bitboards[board.BBAll] as the occupancy
unchanged.

For check-evasion purposes the caller must remove the moving king's own
square from bitboards[board.BBAll] before invoking All, so sliders see
past the square the king is vacating.
*/
func All(bitboards [15]uint64, c board.Color) (result uint64) {
	occupancy := bitboards[board.BBAll]

	for i := board.PieceWBishop + c; i <= board.PieceWQueen+c; i += 2 {
		bb := bitboards[i]
		for bb > 0 {
			sq := board.PopLSB(&bb)
			switch i {
			case board.PieceWBishop, board.PieceBBishop:
				result |= Bishop(sq, occupancy)
			case board.PieceWRook, board.PieceBRook:
				result |= Rook(sq, occupancy)
			case board.PieceWQueen, board.PieceBQueen:
				result |= Queen(sq, occupancy)
			}
		}
	}

	result |= genPawnAttacks(bitboards[board.PieceWPawn+c], c)
	result |= genKnightAttacks(bitboards[board.PieceWKnight+c])
	result |= genKingAttacks(bitboards[board.PieceWKing+c])

	return result
}
