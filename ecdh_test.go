// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestGenerateSharedSecret(t *testing.T) {
	seed := time.Now().Unix()
	rng := rand.New(rand.NewSource(seed))

	randScalar := func() ModNScalar {
		var b [32]byte
		rng.Read(b[:])
		s, _ := ModNScalarFromBytes(&b)
		return s
	}

	privKey1, privKey2 := randScalar(), randScalar()
	pubKey1, pubKey2 := ScalarBaseMult(privKey1), ScalarBaseMult(privKey2)

	secret1, err := GenerateSharedSecret(privKey1, pubKey2)
	if err != nil {
		t.Fatalf("unexpected error (seed %d): %v", seed, err)
	}
	secret2, err := GenerateSharedSecret(privKey2, pubKey1)
	if err != nil {
		t.Fatalf("unexpected error (seed %d): %v", seed, err)
	}
	if secret1 != secret2 {
		t.Fatalf("ECDH failed, secrets mismatch - first: %x, second: %x "+
			"(seed %d)", secret1, secret2, seed)
	}

	var zero ModNScalar
	if _, err := GenerateSharedSecret(zero, pubKey1); !errors.Is(err,
		ErrPointAtInfinity) {
		t.Fatalf("zero scalar: mismatched error -- got %v, want %v", err,
			ErrPointAtInfinity)
	}
	if _, err := GenerateSharedSecret(privKey1, Infinity()); !errors.Is(err,
		ErrPointAtInfinity) {
		t.Fatalf("point at infinity: mismatched error -- got %v, want %v",
			err, ErrPointAtInfinity)
	}
}
