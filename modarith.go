// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// This file provides the byte oriented form of the modular arithmetic for
// collaborators that exchange raw 32-byte big-endian values.  The FieldVal and
// ModNScalar types are the preferred interface when the modulus is known to be
// the field prime or the group order since they carry the range invariant in
// their type.

// AddMod returns (a + b) mod m.
//
// The raw 256-bit sum is reduced by subtracting the modulus at most once, so
// the result is in [0, m-1] whenever a and b are.  A raw sum that overflows 256
// bits is still reduced, so for instance AddMod of 2^256-1 and 1 modulo the
// field prime is 2^256 mod P rather than zero.
func AddMod(a, b *[32]byte, m *Modulus) [32]byte {
	return m.add(Uint256FromBytes(a), Uint256FromBytes(b)).Bytes()
}

// SubMod returns (a - b) mod m.  The modulus is added back once when the raw
// subtraction borrows out of the most significant byte.
func SubMod(a, b *[32]byte, m *Modulus) [32]byte {
	return m.sub(Uint256FromBytes(a), Uint256FromBytes(b)).Bytes()
}

// MulMod returns (a * b) mod m.  The inputs do not need to be reduced.
func MulMod(a, b *[32]byte, m *Modulus) [32]byte {
	return m.mul(Uint256FromBytes(a), Uint256FromBytes(b)).Bytes()
}

// InverseMod returns c such that a*c = 1 (mod m).  The modulus must be prime.
//
// ErrNoInverse is returned when a is congruent to zero modulo m, or when no
// inverse could be found because the modulus is not prime.
func InverseMod(a *[32]byte, m *Modulus) ([32]byte, error) {
	c, ok := m.inverse(Uint256FromBytes(a))
	if !ok {
		return [32]byte{}, makeError(ErrNoInverse, "value has no inverse "+
			"modulo "+m.String())
	}
	return c.Bytes(), nil
}

// GreaterOrEqual returns whether x >= y when both are interpreted as 256-bit
// big-endian unsigned integers.  This is the same as a byte-wise lexicographic
// comparison since both values have the same fixed width.
func GreaterOrEqual(x, y *[32]byte) bool {
	return Uint256FromBytes(x).GreaterOrEqual(Uint256FromBytes(y))
}
