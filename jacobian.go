// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// Scalar multiplication performs hundreds of group operations, and the affine
// formulas need a field inversion for every one of them.  It is therefore done
// in Jacobian coordinates where a point (X, Y, Z) represents the affine point
// (X/Z^2, Y/Z^3), which needs no inversion until the final conversion back to
// affine.  A Z of zero represents the point at infinity.

// jacobianPoint is a point in Jacobian projective coordinates.  The zero value
// is the point at infinity.
type jacobianPoint struct {
	x, y, z FieldVal
}

// toJacobian returns the Jacobian form of p with Z = 1.
func (p Point) toJacobian() jacobianPoint {
	if !p.affine {
		return jacobianPoint{}
	}
	return jacobianPoint{x: p.x, y: p.y, z: NewFieldValFromUint64(1)}
}

// isInfinity returns whether or not the point is the point at infinity.
func (p jacobianPoint) isInfinity() bool {
	return p.z.IsZero()
}

// toAffine converts the point back to affine coordinates with a single field
// inversion.
func (p jacobianPoint) toAffine() Point {
	if p.isInfinity() {
		return Infinity()
	}
	zInv, err := p.z.Inverse()
	if err != nil {
		panic("secp256k1: nonzero Z has no inverse")
	}
	zInv2 := zInv.Square()   // Z^-2
	zInv3 := zInv2.Mul(zInv) // Z^-3
	return Point{x: p.x.Mul(zInv2), y: p.y.Mul(zInv3), affine: true}
}

// doubleJacobian returns 2p.
func doubleJacobian(p jacobianPoint) jacobianPoint {
	// Doubling the point at infinity is still infinity, and so is doubling
	// a point whose tangent is vertical.
	if p.isInfinity() || p.y.IsZero() {
		return jacobianPoint{}
	}

	// Point doubling formula for Jacobian coordinates for the secp256k1
	// curve (A = 0):
	//
	// X3 = (3*X1^2)^2 - 8*X1*Y1^2
	// Y3 = (3*X1^2)*(4*X1*Y1^2 - X3) - 8*Y1^4
	// Z3 = 2*Y1*Z1
	//
	// This uses the method shown at:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#doubling-dbl-2009-l
	//
	// A = X1^2, B = Y1^2, C = B^2, D = 2*((X1+B)^2-A-C)
	// E = 3*A, F = E^2, X3 = F-2*D, Y3 = E*(D-X3)-8*C
	a := p.x.Square()
	b := p.y.Square()
	c := b.Square()
	d := p.x.Add(b).Square().Sub(a).Sub(c).MulInt(2)
	e := a.MulInt(3)
	f := e.Square()
	x3 := f.Sub(d.MulInt(2))
	y3 := e.Mul(d.Sub(x3)).Sub(c.MulInt(8))
	z3 := p.y.Mul(p.z).MulInt(2)
	return jacobianPoint{x: x3, y: y3, z: z3}
}

// addJacobian returns p + q.
func addJacobian(p, q jacobianPoint) jacobianPoint {
	// ∞ + Q = Q and P + ∞ = P.
	if p.isInfinity() {
		return q
	}
	if q.isInfinity() {
		return p
	}

	// Addition formula for Jacobian coordinates:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-add-2007-bl
	//
	// Z1Z1 = Z1^2, Z2Z2 = Z2^2, U1 = X1*Z2Z2, U2 = X2*Z1Z1
	// S1 = Y1*Z2*Z2Z2, S2 = Y2*Z1*Z1Z1, H = U2-U1, I = (2*H)^2, J = H*I
	// r = 2*(S2-S1), V = U1*I
	// X3 = r^2-J-2*V
	// Y3 = r*(V-X3)-2*S1*J
	// Z3 = ((Z1+Z2)^2-Z1Z1-Z2Z2)*H
	z1z1 := p.z.Square()
	z2z2 := q.z.Square()
	u1 := p.x.Mul(z2z2)
	u2 := q.x.Mul(z1z1)
	s1 := p.y.Mul(q.z).Mul(z2z2)
	s2 := q.y.Mul(p.z).Mul(z1z1)
	h := u2.Sub(u1)
	r := s2.Sub(s1).MulInt(2)

	// Equal x coordinates mean the points are either the same, in which
	// case the result is a doubling, or inverses of each other.
	if h.IsZero() {
		if r.IsZero() {
			return doubleJacobian(p)
		}
		return jacobianPoint{}
	}

	i := h.MulInt(2).Square()
	j := h.Mul(i)
	v := u1.Mul(i)
	x3 := r.Square().Sub(j).Sub(v.MulInt(2))
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).MulInt(2))
	z3 := p.z.Add(q.z).Square().Sub(z1z1).Sub(z2z2).Mul(h)
	return jacobianPoint{x: x3, y: y3, z: z3}
}

// selectJacobian returns a when mask is all ones and b when mask is zero
// without branching on the mask.
func selectJacobian(mask uint64, a, b jacobianPoint) jacobianPoint {
	return jacobianPoint{
		x: FieldVal{n: selectUint256(mask, a.x.n, b.x.n)},
		y: FieldVal{n: selectUint256(mask, a.y.n, b.y.n)},
		z: FieldVal{n: selectUint256(mask, a.z.n, b.z.n)},
	}
}
