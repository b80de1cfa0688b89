// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/bits"
)

// References:
//   [HAC]: Handbook of Applied Cryptography Menezes, van Oorschot, Vanstone.
//     http://cacr.uwaterloo.ca/hac/
//
//   [MONT]: Analyzing and Comparing Montgomery Multiplication Algorithms
//     (Koc, Acar, Kaliski)

// Both the secp256k1 field prime and the group order are odd 256-bit values,
// so every modular product in this package is computed with Montgomery
// multiplication using R = 2^256.  A Modulus carries the constants that
// requires so they are computed once per modulus instead of once per product.
//
// Values never need to be kept in the Montgomery domain between calls.  A
// plain product a*b mod m is computed as MontMul(MontMul(a, R^2), b), which
// converts one operand into the domain and lets the second Montgomery step
// convert the product back out.  The bound on the CIOS algorithm only requires
// one of the two operands to be less than m, so this form also accepts fully
// unreduced 256-bit inputs.

// Modulus is an odd modulus of at most 256 bits along with the precomputed
// constants needed for Montgomery arithmetic.  It is immutable once created and
// therefore safe for concurrent use.
type Modulus struct {
	// m is the modulus itself.
	m Uint256

	// mInv is -m^-1 mod 2^64.
	mInv uint64

	// r is R mod m which is the Montgomery form of one.
	r Uint256

	// rr is R^2 mod m and converts values into the Montgomery domain.
	rr Uint256

	// fermat is m-2 which is the exponent used for inversion.
	fermat Uint256
}

// NewModulus returns a Modulus for the 256-bit big-endian value in b.
//
// The modulus must be odd and at least 3.  ErrInvalidModulus is returned
// otherwise.  Note that InverseMod additionally requires the modulus to be
// prime.
func NewModulus(b *[32]byte) (*Modulus, error) {
	m := Uint256FromBytes(b)
	if m[0]&1 == 0 {
		return nil, makeError(ErrInvalidModulus, "modulus must be odd")
	}
	if m[1]|m[2]|m[3] == 0 && m[0] < 3 {
		return nil, makeError(ErrInvalidModulus, "modulus must be at least 3")
	}
	return newModulus(m), nil
}

// mustModulus returns a Modulus for the hard-coded hex value s and panics on
// error.  It will only (and must only) be called with hard-coded values.
func mustModulus(s string) *Modulus {
	b := hexToUint256(s).Bytes()
	mod, err := NewModulus(&b)
	if err != nil {
		panic("invalid modulus in source file: " + s)
	}
	return mod
}

// newModulus computes the Montgomery constants for the odd modulus m.
func newModulus(m Uint256) *Modulus {
	mod := &Modulus{m: m}

	// Newton iteration for m^-1 mod 2^64.  The initial guess is correct for
	// the lowest bit since m is odd and every step doubles the number of
	// correct low bits, so six steps cover all 64.
	inv := uint64(1)
	for i := 0; i < 6; i++ {
		inv *= 2 - m[0]*inv
	}
	mod.mInv = -inv

	// R mod m and R^2 mod m by repeated modular doubling of one.
	r := mod.add(Uint256FromUint64(0), Uint256FromUint64(1))
	for i := 0; i < 256; i++ {
		r = mod.add(r, r)
	}
	mod.r = r
	rr := r
	for i := 0; i < 256; i++ {
		rr = mod.add(rr, rr)
	}
	mod.rr = rr

	mod.fermat, _ = subRaw(m, Uint256FromUint64(2))
	return mod
}

// Bytes returns the modulus as a 32-byte big-endian array.
func (m *Modulus) Bytes() [32]byte {
	return m.m.Bytes()
}

// Value returns the modulus.
func (m *Modulus) Value() Uint256 {
	return m.m
}

// String returns the modulus as a hex string.
func (m *Modulus) String() string {
	return m.m.String()
}

// add returns a + b reduced by a single conditional subtraction of m.
//
// The raw 256-bit sum is computed first.  When the carry escapes the most
// significant word, or the raw sum is at least m, m is subtracted once.  A raw
// sum of exactly 2^256 therefore yields 2^256 mod m rather than zero.  The
// result is fully reduced whenever a and b are both less than m.
func (m *Modulus) add(a, b Uint256) Uint256 {
	sum, carry := addRaw(a, b)
	diff, borrow := subRaw(sum, m.m)
	keep := carry | (borrow ^ 1)
	return selectUint256(-keep, diff, sum)
}

// sub returns a - b with m added back once when the raw subtraction borrows.
func (m *Modulus) sub(a, b Uint256) Uint256 {
	diff, borrow := subRaw(a, b)
	wrapped, _ := addRaw(diff, m.m)
	return selectUint256(-borrow, wrapped, diff)
}

// neg returns -a mod m for a in [0, m-1].  Zero maps to zero.
func (m *Modulus) neg(a Uint256) Uint256 {
	return m.sub(Uint256{}, a)
}

// montMul returns a*b*R^-1 mod m using the coarsely integrated operand
// scanning (CIOS) method.  At least one of a and b must be less than m.
func (m *Modulus) montMul(a, b Uint256) Uint256 {
	var t [6]uint64
	var hi, lo, c, carry uint64
	for i := 0; i < 4; i++ {
		// t += a * b[i]
		c = 0
		for j := 0; j < 4; j++ {
			hi, lo = bits.Mul64(a[j], b[i])
			lo, carry = bits.Add64(lo, t[j], 0)
			hi += carry
			lo, carry = bits.Add64(lo, c, 0)
			hi += carry
			t[j] = lo
			c = hi
		}
		t[4], carry = bits.Add64(t[4], c, 0)
		t[5] = carry

		// t = (t + u*m) / 2^64 where u is chosen so the low word vanishes.
		u := t[0] * m.mInv
		hi, lo = bits.Mul64(u, m.m[0])
		_, carry = bits.Add64(lo, t[0], 0)
		c = hi + carry
		for j := 1; j < 4; j++ {
			hi, lo = bits.Mul64(u, m.m[j])
			lo, carry = bits.Add64(lo, t[j], 0)
			hi += carry
			lo, carry = bits.Add64(lo, c, 0)
			hi += carry
			t[j-1] = lo
			c = hi
		}
		t[3], carry = bits.Add64(t[4], c, 0)
		t[4] = t[5] + carry
	}

	// t < 2m at this point.
	res := Uint256{t[0], t[1], t[2], t[3]}
	diff, borrow := subRaw(res, m.m)
	keep := t[4] | (borrow ^ 1)
	return selectUint256(-keep, diff, res)
}

// mul returns a*b mod m for any 256-bit a and b.
func (m *Modulus) mul(a, b Uint256) Uint256 {
	return m.montMul(m.montMul(a, m.rr), b)
}

// reduce returns a mod m for any 256-bit a.
func (m *Modulus) reduce(a Uint256) Uint256 {
	return m.mul(a, Uint256FromUint64(1))
}

// exp returns a^e mod m.  The sequence of operations depends only on the
// exponent, which must therefore be public.  The base may be secret.
func (m *Modulus) exp(a, e Uint256) Uint256 {
	base := m.montMul(a, m.rr)
	acc := m.r
	for i := 255; i >= 0; i-- {
		acc = m.montMul(acc, acc)
		if e.Bit(uint(i)) == 1 {
			acc = m.montMul(acc, base)
		}
	}
	return m.montMul(acc, Uint256FromUint64(1))
}

// inverse returns a^-1 mod m via Fermat's little theorem along with whether
// the inverse exists.  It reports false for a value congruent to zero and for
// any result that does not satisfy a*c = 1 (mod m), which can only happen when
// m is not prime.
func (m *Modulus) inverse(a Uint256) (Uint256, bool) {
	a = m.reduce(a)
	if a.IsZero() {
		return Uint256{}, false
	}
	c := m.exp(a, m.fermat)
	if !m.mul(a, c).Equals(Uint256FromUint64(1)) {
		return Uint256{}, false
	}
	return c, true
}
