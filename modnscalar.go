// Copyright (c) 2020-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// ModNScalar is an integer in the range [0, N-1] where N is the order of the
// secp256k1 group:
// 0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141.
//
// It is used as the multiplier in scalar multiplication and as private key
// material by collaborators, so every operation runs in constant time with
// respect to the value.  The zero value is the scalar zero.
type ModNScalar struct {
	n Uint256
}

// ModNScalarFromBytes interprets the provided array as a 256-bit big-endian
// unsigned integer, reduces it modulo the group order, and returns the result
// along with whether or not the original value was greater than or equal to
// the order (i.e. it overflowed).
//
// Since 2^256 < 2N, a single conditional subtraction fully reduces any input.
func ModNScalarFromBytes(b *[32]byte) (ModNScalar, bool) {
	n := Uint256FromBytes(b)
	diff, borrow := subRaw(n, groupOrder.m)
	return ModNScalar{n: selectUint256(borrow-1, diff, n)}, borrow == 0
}

// ParseModNScalar interprets the provided array as a 256-bit big-endian
// unsigned integer and returns it as a scalar.
//
// ErrInvalidEncoding is returned when the value is not less than the group
// order.  Use ModNScalarFromBytes to reduce such values instead.
func ParseModNScalar(b *[32]byte) (ModNScalar, error) {
	s, overflow := ModNScalarFromBytes(b)
	if overflow {
		return ModNScalar{}, encodingError("scalar is not less than the " +
			"group order")
	}
	return s, nil
}

// NewModNScalarFromUint64 returns the scalar with the value v.
func NewModNScalarFromUint64(v uint64) ModNScalar {
	return ModNScalar{n: Uint256FromUint64(v)}
}

// hexToModNScalar converts the passed hex string into a ModNScalar and will
// panic if there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected.  It will only (and
// must only) be called with hard-coded values.
func hexToModNScalar(s string) ModNScalar {
	b := hexToUint256(s).Bytes()
	scalar, err := ParseModNScalar(&b)
	if err != nil {
		panic("hex in source file overflows mod N scalar: " + s)
	}
	return scalar
}

// Bytes returns the scalar as a 32-byte big-endian array.
func (s ModNScalar) Bytes() [32]byte {
	return s.n.Bytes()
}

// Uint256 returns the canonical integer value of the scalar.
func (s ModNScalar) Uint256() Uint256 {
	return s.n
}

// String returns the scalar as a hex string.
func (s ModNScalar) String() string {
	return s.n.String()
}

// IsZero returns whether or not the scalar is zero in constant time.
func (s ModNScalar) IsZero() bool {
	return s.n.IsZero()
}

// Equals returns whether or not the two scalars are the same in constant time.
func (s ModNScalar) Equals(t ModNScalar) bool {
	return s.n.Equals(t.n)
}

// Bit returns bit i of the scalar as 0 or 1, with bit 0 the least significant.
func (s ModNScalar) Bit(i uint) uint64 {
	return s.n.Bit(i)
}

// Add returns s + t mod N.
func (s ModNScalar) Add(t ModNScalar) ModNScalar {
	return ModNScalar{n: groupOrder.add(s.n, t.n)}
}

// Sub returns s - t mod N.
func (s ModNScalar) Sub(t ModNScalar) ModNScalar {
	return ModNScalar{n: groupOrder.sub(s.n, t.n)}
}

// Negate returns -s mod N.
func (s ModNScalar) Negate() ModNScalar {
	return ModNScalar{n: groupOrder.neg(s.n)}
}

// Mul returns s * t mod N.
func (s ModNScalar) Mul(t ModNScalar) ModNScalar {
	return ModNScalar{n: groupOrder.mul(s.n, t.n)}
}

// Inverse returns s^-1 mod N.
//
// ErrNoInverse is returned when s is zero.
func (s ModNScalar) Inverse() (ModNScalar, error) {
	inv, ok := groupOrder.inverse(s.n)
	if !ok {
		return ModNScalar{}, makeError(ErrNoInverse, "zero scalar has no "+
			"inverse")
	}
	return ModNScalar{n: inv}, nil
}
