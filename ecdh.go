// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// GenerateSharedSecret generates a shared secret based on a private scalar and
// a public point using Diffie-Hellman key exchange (ECDH) (RFC 5903).
// RFC5903 Section 9 states we should only return x.
//
// ErrPointAtInfinity is returned when the product is the point at infinity,
// which happens when the scalar is zero or the point is the point at
// infinity.
//
// It is recommended to securely hash the result before using as a cryptographic
// key.
func GenerateSharedSecret(k ModNScalar, remote Point) ([32]byte, error) {
	result := ScalarMult(k, remote)
	if result.IsInfinity() {
		return [32]byte{}, makeError(ErrPointAtInfinity, "shared secret "+
			"is the point at infinity")
	}
	return result.x.Bytes(), nil
}
