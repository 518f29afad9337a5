// Package hashing provides Zobrist hashing and duplicate detection for positions.
package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity int
	// stored counts signatures in hashTable
	stored int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast checksum for collision checks
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector. A maxCapacity of 0
// means unlimited; once full, new positions are checked but no longer stored.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// Signature computes the signature of a position.
func Signature(pos *chess.Position) PositionSignature {
	return PositionSignature{Hash: GenerateZobristHash(pos), WeakHash: WeakHash(pos)}
}

// CheckAndAdd checks if a position is a duplicate and adds it to the hash table.
// Returns true if the position was seen before.
func (d *DuplicateDetector) CheckAndAdd(pos *chess.Position) bool {
	sig := Signature(pos)

	for _, existing := range d.hashTable[sig.Hash] {
		if existing.WeakHash == sig.WeakHash {
			d.duplicateCount++
			return true
		}
	}

	if d.maxCapacity > 0 && d.stored >= d.maxCapacity {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.stored = 0
	d.duplicateCount = 0
}
