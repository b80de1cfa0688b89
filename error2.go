// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// These constants are used to identify a specific Error.
const (
	// ErrNoInverse is returned when attempting to invert a value that is
	// congruent to zero modulo the modulus, or when no inverse exists because
	// the modulus is not prime.
	ErrNoInverse = ErrorKind("ErrNoInverse")

	// ErrInvalidPointAddition is returned when a point passed to Add does not
	// satisfy the curve equation or the addition reaches a state that is not
	// possible for valid inputs.
	ErrInvalidPointAddition = ErrorKind("ErrInvalidPointAddition")

	// ErrInvalidEncoding is returned when a byte-level input does not decode
	// to a value in the expected range or a point encoding is malformed.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrPointNotOnCurve is returned when a pair of coordinates, or a point
	// decoded from its serialized form, does not satisfy y^2 = x^3 + 7.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrInvalidModulus is returned when a modulus is even or less than three.
	ErrInvalidModulus = ErrorKind("ErrInvalidModulus")

	// ErrPointAtInfinity is returned when an operation that must produce an
	// affine point produced the point at infinity.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")
)

// encodingError creates an Error with the ErrInvalidEncoding kind.
func encodingError(desc string) Error {
	return makeError(ErrInvalidEncoding, desc)
}
