// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// batchJobs returns n jobs multiplying the generator and its double by small
// scalars.
func batchJobs(n int) []ScalarMultJob {
	g := Generator()
	g2 := Double(g)
	jobs := make([]ScalarMultJob, n)
	for i := range jobs {
		p := g
		if i%2 == 1 {
			p = g2
		}
		jobs[i] = ScalarMultJob{K: NewModNScalarFromUint64(uint64(i)), Point: p}
	}
	return jobs
}

func TestBatchScalarMult(t *testing.T) {
	jobs := batchJobs(17)
	for _, workers := range []int{0, 1, 3, 64} {
		results, err := BatchScalarMult(context.Background(), jobs, workers)
		require.NoError(t, err)
		require.Len(t, results, len(jobs))

		for i, job := range jobs {
			want := ScalarMult(job.K, job.Point)
			require.Truef(t, results[i].Equal(want),
				"workers %d job %d: got %v, want %v", workers, i, results[i],
				want)
		}
		require.True(t, results[0].IsInfinity())
	}
}

func TestBatchScalarMultEmpty(t *testing.T) {
	results, err := BatchScalarMult(context.Background(), nil, 4)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestBatchScalarMultCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := BatchScalarMult(ctx, batchJobs(8), 2)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, results)
}
