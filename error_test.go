// Copyright (c) 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrNoInverse, "ErrNoInverse"},
		{ErrInvalidPointAddition, "ErrInvalidPointAddition"},
		{ErrInvalidEncoding, "ErrInvalidEncoding"},
		{ErrPointNotOnCurve, "ErrPointNotOnCurve"},
		{ErrInvalidModulus, "ErrInvalidModulus"},
		{ErrPointAtInfinity, "ErrPointAtInfinity"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrNoInverse == ErrNoInverse",
		err:       ErrNoInverse,
		target:    ErrNoInverse,
		wantMatch: true,
		wantAs:    ErrNoInverse,
	}, {
		name:      "Error.ErrNoInverse == ErrNoInverse",
		err:       makeError(ErrNoInverse, ""),
		target:    ErrNoInverse,
		wantMatch: true,
		wantAs:    ErrNoInverse,
	}, {
		name:      "Error.ErrNoInverse == Error.ErrNoInverse",
		err:       makeError(ErrNoInverse, ""),
		target:    makeError(ErrNoInverse, ""),
		wantMatch: true,
		wantAs:    ErrNoInverse,
	}, {
		name:      "ErrInvalidPointAddition != ErrNoInverse",
		err:       ErrInvalidPointAddition,
		target:    ErrNoInverse,
		wantMatch: false,
		wantAs:    ErrInvalidPointAddition,
	}, {
		name:      "Error.ErrInvalidPointAddition != ErrNoInverse",
		err:       makeError(ErrInvalidPointAddition, ""),
		target:    ErrNoInverse,
		wantMatch: false,
		wantAs:    ErrInvalidPointAddition,
	}, {
		name:      "ErrInvalidPointAddition != Error.ErrNoInverse",
		err:       ErrInvalidPointAddition,
		target:    makeError(ErrNoInverse, ""),
		wantMatch: false,
		wantAs:    ErrInvalidPointAddition,
	}, {
		name:      "Error.ErrInvalidPointAddition != Error.ErrNoInverse",
		err:       makeError(ErrInvalidPointAddition, ""),
		target:    makeError(ErrNoInverse, ""),
		wantMatch: false,
		wantAs:    ErrInvalidPointAddition,
	}, {
		name:      "Error.ErrInvalidEncoding == ErrInvalidEncoding",
		err:       encodingError(""),
		target:    ErrInvalidEncoding,
		wantMatch: true,
		wantAs:    ErrInvalidEncoding,
	}, {
		name:      "Error.ErrInvalidEncoding == Error.ErrInvalidEncoding",
		err:       encodingError(""),
		target:    encodingError(""),
		wantMatch: true,
		wantAs:    ErrInvalidEncoding,
	}, {
		name:      "Error.ErrPointNotOnCurve != ErrInvalidEncoding",
		err:       makeError(ErrPointNotOnCurve, ""),
		target:    ErrInvalidEncoding,
		wantMatch: false,
		wantAs:    ErrPointNotOnCurve,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error code can be unwrapped and is the expected
		// code.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error code", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error code -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
