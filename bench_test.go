// Copyright 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"context"
	"testing"
)

// BenchmarkMulMod benchmarks multiplying two 256-bit values modulo the field
// prime through the byte oriented interface.
func BenchmarkMulMod(b *testing.B) {
	x := hexToArray("16fb970147a9acc73654d4be233cc48b875ce20a2122d24f073d29bd28805aca")
	y := hexToArray("4a1a4c6e2e9e4b3d5ee5b8a1a5ee5a0c1b2b6a3a3f5c0d6c19b5a0e1f8a9b2c3")
	m := FieldPrime()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MulMod(&x, &y, m)
	}
}

// BenchmarkFieldInverse benchmarks computing the multiplicative inverse of a
// field element.
func BenchmarkFieldInverse(b *testing.B) {
	f := hexToFieldVal("16fb970147a9acc73654d4be233cc48b875ce20a2122d24f073d29bd28805aca")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Inverse()
	}
}

// BenchmarkAddAffine benchmarks adding two distinct affine points.
func BenchmarkAddAffine(b *testing.B) {
	p1 := Generator()
	p2 := Double(p1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Add(p1, p2)
	}
}

// BenchmarkScalarBaseMult benchmarks multiplying the base point by a random
// looking scalar.
func BenchmarkScalarBaseMult(b *testing.B) {
	k := hexToModNScalar("d74bf844b0862475103d96a611cf2d898447e288d34b360bc885cb8ce7c00575")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ScalarBaseMult(k)
	}
}

// BenchmarkBatchScalarMult benchmarks multiplying a batch of points with the
// default number of workers.
func BenchmarkBatchScalarMult(b *testing.B) {
	k := hexToModNScalar("d74bf844b0862475103d96a611cf2d898447e288d34b360bc885cb8ce7c00575")
	jobs := make([]ScalarMultJob, 32)
	for i := range jobs {
		jobs[i] = ScalarMultJob{K: k, Point: Generator()}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BatchScalarMult(context.Background(), jobs, 0); err != nil {
			b.Fatal(err)
		}
	}
}
