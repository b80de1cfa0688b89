// Copyright (c) 2024 The ModChain developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

// Uint256Size is the number of bytes in the canonical big-endian encoding of a
// Uint256.
const Uint256Size = 32

// Uint256 is a fixed-width 256-bit unsigned integer.  It is stored as four
// 64-bit words with the least significant word first:
//
//	value = n[0] + n[1]*2^64 + n[2]*2^128 + n[3]*2^192
//
// The canonical external form is 32 bytes in big-endian order as produced by
// Bytes and consumed by Uint256FromBytes.
//
// All operations on the type are constant width and never allocate.  The raw
// operations in this file are not reduced by any modulus; see Modulus for the
// modular forms.
type Uint256 [4]uint64

// Uint256FromBytes interprets the provided array as a 256-bit big-endian
// unsigned integer.
func Uint256FromBytes(b *[32]byte) Uint256 {
	return Uint256{
		binary.BigEndian.Uint64(b[24:32]),
		binary.BigEndian.Uint64(b[16:24]),
		binary.BigEndian.Uint64(b[8:16]),
		binary.BigEndian.Uint64(b[0:8]),
	}
}

// Uint256FromUint64 returns the Uint256 representation of v.
func Uint256FromUint64(v uint64) Uint256 {
	return Uint256{v, 0, 0, 0}
}

// Bytes returns the value as a 32-byte big-endian array.
func (u Uint256) Bytes() [32]byte {
	var b [32]byte
	binary.BigEndian.PutUint64(b[0:8], u[3])
	binary.BigEndian.PutUint64(b[8:16], u[2])
	binary.BigEndian.PutUint64(b[16:24], u[1])
	binary.BigEndian.PutUint64(b[24:32], u[0])
	return b
}

// String returns the value as a 64 character hex string.
func (u Uint256) String() string {
	b := u.Bytes()
	return hex.EncodeToString(b[:])
}

// IsZero returns whether or not the value is zero in constant time.
func (u Uint256) IsZero() bool {
	return u[0]|u[1]|u[2]|u[3] == 0
}

// Equals returns whether or not the two values are the same in constant time.
func (u Uint256) Equals(v Uint256) bool {
	return (u[0]^v[0])|(u[1]^v[1])|(u[2]^v[2])|(u[3]^v[3]) == 0
}

// Bit returns bit i (0 is the least significant) of the value as 0 or 1.
func (u Uint256) Bit(i uint) uint64 {
	return (u[(i/64)&3] >> (i % 64)) & 1
}

// GreaterOrEqual returns whether u >= v as unsigned integers.  The comparison
// is derived from the final borrow of u - v, so it runs in constant time.
func (u Uint256) GreaterOrEqual(v Uint256) bool {
	_, borrow := subRaw(u, v)
	return borrow == 0
}

// addRaw returns a + b modulo 2^256 along with the carry out of the most
// significant word.
func addRaw(a, b Uint256) (Uint256, uint64) {
	var r Uint256
	var carry uint64
	r[0], carry = bits.Add64(a[0], b[0], 0)
	r[1], carry = bits.Add64(a[1], b[1], carry)
	r[2], carry = bits.Add64(a[2], b[2], carry)
	r[3], carry = bits.Add64(a[3], b[3], carry)
	return r, carry
}

// subRaw returns a - b modulo 2^256 along with the borrow out of the most
// significant word.  A borrow of 1 means a < b.
func subRaw(a, b Uint256) (Uint256, uint64) {
	var r Uint256
	var borrow uint64
	r[0], borrow = bits.Sub64(a[0], b[0], 0)
	r[1], borrow = bits.Sub64(a[1], b[1], borrow)
	r[2], borrow = bits.Sub64(a[2], b[2], borrow)
	r[3], borrow = bits.Sub64(a[3], b[3], borrow)
	return r, borrow
}

// selectUint256 returns a when mask is all ones and b when mask is zero.  The
// mask must be one of those two values.
func selectUint256(mask uint64, a, b Uint256) Uint256 {
	return Uint256{
		(a[0] & mask) | (b[0] &^ mask),
		(a[1] & mask) | (b[1] &^ mask),
		(a[2] & mask) | (b[2] &^ mask),
		(a[3] & mask) | (b[3] &^ mask),
	}
}

// hexToUint256 converts the passed hex string into a Uint256 and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called with hard-coded values.
func hexToUint256(s string) Uint256 {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	if len(b) > Uint256Size {
		panic("hex in source file overflows 256 bits: " + s)
	}
	var buf [32]byte
	copy(buf[Uint256Size-len(b):], b)
	return Uint256FromBytes(&buf)
}
