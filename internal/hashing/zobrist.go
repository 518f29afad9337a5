package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Zobrist keys for pieces, side to move, castling rights and en-passant file.
var (
	pieceKeys     [2][chess.NumPieceKinds][chess.NumSquares]uint64
	blackToMove   uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	// Fixed seed: hashes must not change between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rnd.Uint64()
			}
		}
	}
	blackToMove = rnd.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rnd.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rnd.Uint64()
	}
}

// GenerateZobristHash hashes the placement, side to move, castling rights and
// en-passant file of a position. The move counters are not part of the hash.
func GenerateZobristHash(pos *chess.Position) uint64 {
	var hash uint64
	for sq, piece := range pos.Placement {
		if piece.IsEmpty() {
			continue
		}
		colour := 0
		if piece.Is(chess.Black) {
			colour = 1
		}
		hash ^= pieceKeys[colour][piece.Kind()-1][sq]
	}

	if pos.ToMove == chess.Black {
		hash ^= blackToMove
	}
	rights := []bool{
		pos.Castling.WhiteKingside, pos.Castling.WhiteQueenside,
		pos.Castling.BlackKingside, pos.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			hash ^= castlingKeys[i]
		}
	}
	if pos.EnPassant.Valid() {
		hash ^= enPassantKeys[pos.EnPassant.File()]
	}
	return hash
}

// WeakHash is a cheap placement checksum used as a second opinion on Zobrist
// collisions.
func WeakHash(pos *chess.Position) uint32 {
	var h uint32
	for sq, piece := range pos.Placement {
		h = h*31 + uint32(int32(piece)+7)*uint32(sq+1)
	}
	return h
}
