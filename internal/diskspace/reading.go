package diskspace

import (
	"math"
	"math/bits"
)

// BytesPerMB is the size of a binary megabyte.
const BytesPerMB = 1 << 20

// Reading is a capacity in binary megabytes.
type Reading float64

// Bytes returns blockSize*blocks. ok is false when the product does not fit
// in 64 bits.
func Bytes(blockSize, blocks uint64) (n uint64, ok bool) {
	hi, lo := bits.Mul64(blockSize, blocks)
	return lo, hi == 0
}

// ReadingFromBlocks converts a block count to megabytes. The product is
// computed in 128 bits so it never wraps before the conversion.
func ReadingFromBlocks(blockSize, blocks uint64) Reading {
	hi, lo := bits.Mul64(blockSize, blocks)
	if hi == 0 {
		return ReadingFromBytes(lo)
	}
	return Reading((float64(hi)*math.Exp2(64) + float64(lo)) / BytesPerMB)
}

// ReadingFromBytes converts a byte count to megabytes.
func ReadingFromBytes(n uint64) Reading {
	return Reading(float64(n) / BytesPerMB)
}

// MB returns r as a plain float64.
func (r Reading) MB() float64 {
	return float64(r)
}
