// Copyright (c) 2015-2022 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf
//
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)

// Double returns 2p.
//
// Doubling the point at infinity is the point at infinity, as is doubling a
// point with a y coordinate of zero since its tangent line is vertical.
func Double(p Point) Point {
	if !p.affine || p.y.IsZero() {
		return Infinity()
	}

	// The tangent slope is s = (3*x^2 + A) / (2*y), so:
	//
	// x3 = s^2 - 2*x
	// y3 = s*(x - x3) - y
	num := p.x.Square().MulInt(3).Add(curveA)
	den, err := p.y.Add(p.y).Inverse()
	if err != nil {
		panic("secp256k1: nonzero 2y has no inverse")
	}
	s := num.Mul(den)
	x3 := s.Square().Sub(p.x.Add(p.x))
	y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point{x: x3, y: y3, affine: true}
}

// Add returns p + q.
//
// All geometric edge cases are resolved according to the group law rather
// than reported as errors:
//
//   - ∞ + q = q and p + ∞ = p
//   - p + (-p) = ∞ (same x coordinate, different y coordinate)
//   - p + p = 2p, which is computed with Double
//
// ErrInvalidPointAddition is only returned when one of the inputs does not
// satisfy the curve equation.
func Add(p, q Point) (Point, error) {
	if !p.IsOnCurve() {
		return Point{}, makeError(ErrInvalidPointAddition, "first point is "+
			"not on the curve")
	}
	if !q.IsOnCurve() {
		return Point{}, makeError(ErrInvalidPointAddition, "second point is "+
			"not on the curve")
	}

	// The point at infinity is the identity according to the group law for
	// elliptic curve cryptography.  Thus, ∞ + P = P and P + ∞ = P.
	if !p.affine {
		return q, nil
	}
	if !q.affine {
		return p, nil
	}

	if p.x.Equals(q.x) {
		if p.y.Equals(q.y) {
			return Double(p), nil
		}

		// The points are reflections of each other across the x axis, so
		// the line through them is vertical.
		return Infinity(), nil
	}

	// The chord slope is s = (y2 - y1) / (x2 - x1), so:
	//
	// x3 = s^2 - x1 - x2
	// y3 = s*(x1 - x3) - y1
	den, err := q.x.Sub(p.x).Inverse()
	if err != nil {
		return Point{}, makeError(ErrInvalidPointAddition, "distinct x "+
			"coordinates produced a zero denominator")
	}
	s := q.y.Sub(p.y).Mul(den)
	x3 := s.Square().Sub(p.x).Sub(q.x)
	y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point{x: x3, y: y3, affine: true}, nil
}

// ScalarMult returns k*p.
//
// The scalar is processed from the most significant bit of its 256-bit
// representation to the least.  Every bit costs one doubling and one addition
// and the sum is kept with a mask based selection, so the sequence of group
// operations is the same for every scalar.  The group operations themselves
// still take shortcuts for the point at infinity and equal inputs, so this is
// not a hardened constant-time implementation.
//
// The result is the point at infinity when k is zero or p is the point at
// infinity.
func ScalarMult(k ModNScalar, p Point) Point {
	base := p.toJacobian()
	var acc jacobianPoint
	for i := 255; i >= 0; i-- {
		acc = doubleJacobian(acc)
		sum := addJacobian(acc, base)
		acc = selectJacobian(-k.Bit(uint(i)), sum, acc)
	}
	return acc.toAffine()
}

// ScalarMultBytes returns k*p where k is a 256-bit big-endian value.  Values
// that are not less than the group order are reduced modulo the order first
// rather than rejected.
func ScalarMultBytes(k *[32]byte, p Point) Point {
	scalar, _ := ModNScalarFromBytes(k)
	return ScalarMult(scalar, p)
}

// ScalarBaseMult returns k*G where G is the base point of the group.
func ScalarBaseMult(k ModNScalar) Point {
	return ScalarMult(k, generator)
}
