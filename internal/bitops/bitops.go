// Package bitops contains the word operations SHA-256 is built from. All of
// them operate on 32-bit words with wraparound semantics.
package bitops

import "math/bits"

func ShiftRight(x uint32, n uint) uint32 { return x >> n }

func ShiftLeft(x uint32, n uint) uint32 { return x << n }

func RotateRight(x uint32, n int) uint32 { return bits.RotateLeft32(x, -n) }

func RotateLeft(x uint32, n int) uint32 { return bits.RotateLeft32(x, n) }

// Sigma0 and Sigma1 mix words during message schedule expansion.

func Sigma0(x uint32) uint32 {
	return RotateRight(x, 7) ^ RotateRight(x, 18) ^ ShiftRight(x, 3)
}

func Sigma1(x uint32) uint32 {
	return RotateRight(x, 17) ^ RotateRight(x, 19) ^ ShiftRight(x, 10)
}

// BigSigma0 and BigSigma1 mix the working variables during each round.

func BigSigma0(x uint32) uint32 {
	return RotateRight(x, 2) ^ RotateRight(x, 13) ^ RotateRight(x, 22)
}

func BigSigma1(x uint32) uint32 {
	return RotateRight(x, 6) ^ RotateRight(x, 11) ^ RotateRight(x, 25)
}

// Choice picks bits from y where x is set and from z where it is not.
func Choice(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// Majority sets each bit that is set in at least two of its inputs.
func Majority(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}
