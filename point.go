// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
)

// Point is an element of the group formed by the secp256k1 curve.  It is one
// of two variants:
//
//   - the point at infinity, which is the identity of the group
//   - an affine point (x, y) satisfying y^2 = x^3 + 7 (mod P)
//
// The zero value is the point at infinity.  The point at infinity has no
// coordinates, so unlike representations that reserve (0, 0) for it there is
// never any ambiguity about which variant a value holds.
//
// Affine points can only be created through NewPoint, ParsePoint, or the group
// operations, all of which guarantee the curve equation holds.  Point is a
// value type and is safe to share between goroutines.
type Point struct {
	x, y   FieldVal
	affine bool
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the affine point with the provided coordinates.
//
// ErrPointNotOnCurve is returned when the coordinates do not satisfy the curve
// equation.
func NewPoint(x, y FieldVal) (Point, error) {
	if !IsOnCurve(x, y) {
		return Point{}, makeError(ErrPointNotOnCurve, "coordinates do not "+
			"satisfy the curve equation")
	}
	return Point{x: x, y: y, affine: true}, nil
}

// IsOnCurve returns whether or not the affine point (x, y) is on the curve.
func IsOnCurve(x, y FieldVal) bool {
	// Elliptic curve equation for secp256k1 is: y^2 = x^3 + 7
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(curveA.Mul(x)).Add(curveB)
	return lhs.Equals(rhs)
}

// IsInfinity returns whether or not the point is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.affine
}

// XY returns the affine coordinates of the point.  The final result is false
// for the point at infinity, in which case the coordinates are zero.
func (p Point) XY() (x, y FieldVal, ok bool) {
	return p.x, p.y, p.affine
}

// X returns the affine x coordinate of the point, or zero for the point at
// infinity.
func (p Point) X() FieldVal {
	return p.x
}

// Y returns the affine y coordinate of the point, or zero for the point at
// infinity.
func (p Point) Y() FieldVal {
	return p.y
}

// IsOnCurve returns whether or not the point is a member of the group.  The
// point at infinity is always a member.
func (p Point) IsOnCurve() bool {
	return !p.affine || IsOnCurve(p.x, p.y)
}

// Equal returns whether or not the two points are the same group element.
func (p Point) Equal(q Point) bool {
	if p.affine != q.affine {
		return false
	}
	if !p.affine {
		return true
	}
	return p.x.Equals(q.x) && p.y.Equals(q.y)
}

// Negate returns -p, the point with the same x coordinate and the negated y
// coordinate.  The point at infinity is its own negation.
func (p Point) Negate() Point {
	if !p.affine {
		return p
	}
	return Point{x: p.x, y: p.y.Negate(), affine: true}
}

// String returns a human-readable form of the point.
func (p Point) String() string {
	if !p.affine {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
