// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf (section 2.4.1)

var (
	// fieldPrime is the secp256k1 field prime P = 2^256 - 2^32 - 977.
	fieldPrime = mustModulus("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// groupOrder is the order N of the group generated by the base point.
	groupOrder = mustModulus("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// fieldSqrtExp is (P+1)/4 which is the exponent that computes square
	// roots in the field since P = 3 (mod 4).
	fieldSqrtExp = hexToUint256("3fffffffffffffffffffffffffffffffffffffffffffffffffffffffbfffff0c")

	// curveA and curveB are the coefficients of y^2 = x^3 + A*x + B.
	curveA = hexToFieldVal("00")
	curveB = hexToFieldVal("07")

	// generator is the base point G of the group.
	generator = Point{
		x:      hexToFieldVal("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		y:      hexToFieldVal("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
		affine: true,
	}

	curveParams = CurveParams{
		Name:    "secp256k1",
		BitSize: 256,
		A:       curveA,
		B:       curveB,
		P:       fieldPrime.Bytes(),
		N:       groupOrder.Bytes(),
		Gx:      generator.x,
		Gy:      generator.y,
	}
)

// CurveParams contains the parameters for the secp256k1 curve
// y^2 = x^3 + A*x + B over the prime field of order P.
type CurveParams struct {
	// Name is the canonical name of the curve.
	Name string

	// BitSize is the size of the underlying field in bits.
	BitSize int

	// A and B are the coefficients of the curve equation.
	A, B FieldVal

	// P is the field prime as a big-endian array.
	P [32]byte

	// N is the order of the base point as a big-endian array.
	N [32]byte

	// Gx and Gy are the affine coordinates of the base point.
	Gx, Gy FieldVal
}

// Params returns a copy of the secp256k1 curve parameters.
func Params() CurveParams {
	return curveParams
}

// FieldPrime returns the field prime P as a Modulus.  It is shared and
// immutable.
func FieldPrime() *Modulus {
	return fieldPrime
}

// GroupOrder returns the group order N as a Modulus.  It is shared and
// immutable.
func GroupOrder() *Modulus {
	return groupOrder
}

// Generator returns the base point G of the secp256k1 group.
func Generator() Point {
	return generator
}
