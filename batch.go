// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ScalarMultJob is a single k*P computation submitted to BatchScalarMult.
type ScalarMultJob struct {
	K     ModNScalar
	Point Point
}

// BatchScalarMult computes k*P for every job using up to workers goroutines
// and returns the results in the same order as the jobs.  A workers value of
// zero or less uses runtime.GOMAXPROCS(0) goroutines.
//
// Each result depends only on its own job, so the jobs run in no particular
// order.  Individual multiplications are never interrupted; the context is
// only consulted before each job starts, and its error is returned when it is
// cancelled before all jobs have been started.
func BatchScalarMult(ctx context.Context, jobs []ScalarMultJob, workers int) ([]Point, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log.Debugf("Computing %d scalar multiplications with %d workers",
		len(jobs), workers)

	results := make([]Point, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var err error
	for i := range jobs {
		if err = gctx.Err(); err != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = ScalarMult(jobs[i].K, jobs[i].Point)
			log.Tracef("Finished scalar multiplication job %d", i)
			return nil
		})
	}
	if werr := g.Wait(); werr != nil {
		return nil, werr
	}

	// The submission loop may have stopped early without any goroutine
	// observing the cancellation.
	if err != nil {
		return nil, err
	}
	return results, nil
}
