// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// All elliptic curve operations for secp256k1 are done in a finite field
// characterized by a 256-bit prime.  FieldVal wraps a Uint256 that is always
// fully reduced modulo that prime, so two FieldVals are equal exactly when
// their representations are equal and no normalization step is ever needed.
//
// FieldVal is a value type.  Every operation returns a new value and leaves
// its operands untouched, which makes the type safe to share between
// goroutines.

// FieldVal is an element of the secp256k1 finite field, an integer in the
// range [0, P-1] where P is the field prime
// 0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f.
//
// The zero value is the field element zero.
type FieldVal struct {
	n Uint256
}

// FieldValFromBytes interprets the provided array as a 256-bit big-endian
// unsigned integer and returns it as a field element.
//
// ErrInvalidEncoding is returned when the value is not less than the field
// prime.
func FieldValFromBytes(b *[32]byte) (FieldVal, error) {
	n := Uint256FromBytes(b)
	if n.GreaterOrEqual(fieldPrime.m) {
		return FieldVal{}, encodingError("field value is not less than " +
			"the field prime")
	}
	return FieldVal{n: n}, nil
}

// FieldValFromUint256 returns n reduced modulo the field prime.
func FieldValFromUint256(n Uint256) FieldVal {
	return FieldVal{n: fieldPrime.reduce(n)}
}

// NewFieldValFromUint64 returns the field element with the value v.
func NewFieldValFromUint64(v uint64) FieldVal {
	return FieldVal{n: Uint256FromUint64(v)}
}

// hexToFieldVal converts the passed hex string into a FieldVal and will panic
// if there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called with hard-coded values.
func hexToFieldVal(s string) FieldVal {
	b := hexToUint256(s).Bytes()
	f, err := FieldValFromBytes(&b)
	if err != nil {
		panic("hex in source file overflows mod P: " + s)
	}
	return f
}

// Bytes returns the field element as a 32-byte big-endian array.
func (f FieldVal) Bytes() [32]byte {
	return f.n.Bytes()
}

// Uint256 returns the canonical integer value of the field element.
func (f FieldVal) Uint256() Uint256 {
	return f.n
}

// String returns the field element as a hex string.
func (f FieldVal) String() string {
	return f.n.String()
}

// IsZero returns whether or not the field element is zero in constant time.
func (f FieldVal) IsZero() bool {
	return f.n.IsZero()
}

// IsOne returns whether or not the field element is one in constant time.
func (f FieldVal) IsOne() bool {
	return f.n.Equals(Uint256FromUint64(1))
}

// IsOdd returns whether or not the field element is an odd number.
func (f FieldVal) IsOdd() bool {
	return f.n[0]&1 == 1
}

// Equals returns whether or not the two field elements are the same in
// constant time.
func (f FieldVal) Equals(g FieldVal) bool {
	return f.n.Equals(g.n)
}

// Add returns f + g mod P.
func (f FieldVal) Add(g FieldVal) FieldVal {
	return FieldVal{n: fieldPrime.add(f.n, g.n)}
}

// Sub returns f - g mod P.
func (f FieldVal) Sub(g FieldVal) FieldVal {
	return FieldVal{n: fieldPrime.sub(f.n, g.n)}
}

// Negate returns -f mod P.
func (f FieldVal) Negate() FieldVal {
	return FieldVal{n: fieldPrime.neg(f.n)}
}

// Mul returns f * g mod P.
func (f FieldVal) Mul(g FieldVal) FieldVal {
	return FieldVal{n: fieldPrime.mul(f.n, g.n)}
}

// MulInt returns f * v mod P for a small integer v.
func (f FieldVal) MulInt(v uint64) FieldVal {
	return FieldVal{n: fieldPrime.mul(f.n, Uint256FromUint64(v))}
}

// Square returns f^2 mod P.
func (f FieldVal) Square() FieldVal {
	return FieldVal{n: fieldPrime.mul(f.n, f.n)}
}

// Inverse returns f^-1 mod P such that f * f^-1 = 1 (mod P).
//
// ErrNoInverse is returned when f is zero.
func (f FieldVal) Inverse() (FieldVal, error) {
	inv, ok := fieldPrime.inverse(f.n)
	if !ok {
		return FieldVal{}, makeError(ErrNoInverse, "zero field element "+
			"has no inverse")
	}
	return FieldVal{n: inv}, nil
}

// Sqrt returns a square root of f along with whether or not f is a quadratic
// residue.  The returned root is only meaningful when the second result is
// true.
//
// Since P = 3 (mod 4), a root, when one exists, is f^((P+1)/4).
func (f FieldVal) Sqrt() (FieldVal, bool) {
	root := FieldVal{n: fieldPrime.exp(f.n, fieldSqrtExp)}
	return root, root.Square().Equals(f)
}
