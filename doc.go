// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements the arithmetic core of the secp256k1 elliptic curve
in pure Go.

It provides fixed-width 256-bit modular arithmetic and the group law of the
curve y^2 = x^3 + 7 over the prime field of order P.  It is the layer that
signature, key derivation, and key agreement code is built on.  See
https://www.secg.org/sec2-v2.pdf for details on the standard.

Message hashing, nonce generation, and signature encodings are deliberately not
part of this package.  Collaborators hand it already decoded field elements,
scalars, and points and take points and scalars back out.

An overview of the features provided by this package are as follows:

  - Uint256 type for fixed-width 256-bit unsigned integers
  - Modulus type with constant time modular addition, subtraction,
    multiplication, and inversion for any odd modulus
  - FieldVal type for working modulo the secp256k1 field prime
  - ModNScalar type for working modulo the secp256k1 group order
  - Point type with an explicit point at infinity
  - Point addition and doubling in affine coordinates
  - Scalar multiplication with an arbitrary point and with the base point
  - Parsing and serialization of points in the SEC 1 compressed, uncompressed,
    and hybrid formats
  - Batch scalar multiplication over a bounded pool of goroutines
  - Shared secret generation (ECDH)

# Errors

Errors returned by this package are of type secp256k1.Error and wrap an
ErrorKind.  This allows the caller to programmatically determine the specific
error by examining the ErrorKind with errors.Is:

	if errors.Is(err, secp256k1.ErrNoInverse) {
		...
	}

Valid edge case inputs such as adding a point to itself or adding values close
to the modulus are never errors.

# Concurrency

Every value type in the package is immutable and every operation is a pure
function of its inputs, so all of them are safe for concurrent use without
locking.

# Logging

The package does not log unless UseLogger is called.  The arithmetic and group
operations never log regardless.

The ecckd sub package builds BIP0032 hierarchical deterministic key derivation
on top of this package.
*/
package secp256k1
