// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected.  It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// hexToArray converts the passed hex string into a left zero padded 32-byte
// array.  It will only (and must only) be called with hard-coded values.
func hexToArray(s string) [32]byte {
	return hexToUint256(s).Bytes()
}

// TestUint256Bytes ensures converting to and from the big-endian byte form
// places every word in the right position.
func TestUint256Bytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Uint256
	}{{
		name: "zero",
		in:   "0000000000000000000000000000000000000000000000000000000000000000",
		want: Uint256{},
	}, {
		name: "one",
		in:   "0000000000000000000000000000000000000000000000000000000000000001",
		want: Uint256{1, 0, 0, 0},
	}, {
		name: "one word per position",
		in:   "0000000000000004000000000000000300000000000000020000000000000001",
		want: Uint256{1, 2, 3, 4},
	}, {
		name: "2^256 - 1",
		in:   "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		want: Uint256{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)},
	}, {
		name: "byte order within words",
		in:   "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20",
		want: Uint256{0x191a1b1c1d1e1f20, 0x1112131415161718,
			0x090a0b0c0d0e0f10, 0x0102030405060708},
	}}

	for _, test := range tests {
		var b [32]byte
		copy(b[:], hexToBytes(test.in))
		got := Uint256FromBytes(&b)
		if got != test.want {
			t.Errorf("%s: mismatched value -- got %x, want %x", test.name,
				got, test.want)
			continue
		}
		gotBytes := got.Bytes()
		if !bytes.Equal(gotBytes[:], b[:]) {
			t.Errorf("%s: mismatched bytes -- got %x, want %x", test.name,
				gotBytes, b)
			continue
		}
		if got.String() != test.in {
			t.Errorf("%s: mismatched string -- got %s, want %s", test.name,
				got, test.in)
		}
	}
}

// TestGreaterOrEqual ensures the comparison agrees with unsigned numeric
// ordering, including values that only differ in their low bytes.
func TestGreaterOrEqual(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want bool
	}{
		{"0 >= 0", "0", "0", true},
		{"1 >= 0", "1", "0", true},
		{"0 >= 1", "0", "1", false},
		{"256 >= 512", "100", "200", false},
		{"512 >= 256", "200", "100", true},
		{"256 >= 256", "100", "100", true},
		{"high word wins", "1000000000000000000000000000000000000000000000000000000000000000",
			"0fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", true},
		{"P >= P-1", "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2e", true},
		{"P-1 >= P", "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2e", "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", false},
		{"max >= P", "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", true},
	}

	for _, test := range tests {
		x, y := hexToArray(test.x), hexToArray(test.y)
		if got := GreaterOrEqual(&x, &y); got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}
}

// TestRawCarryBorrow ensures the non-reducing primitives report the carry and
// borrow that escape the most significant word.
func TestRawCarryBorrow(t *testing.T) {
	max := hexToUint256("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	one := Uint256FromUint64(1)

	sum, carry := addRaw(max, one)
	if !sum.IsZero() || carry != 1 {
		t.Fatalf("(2^256-1)+1: got %v carry %d, want 0 carry 1", sum, carry)
	}
	sum, carry = addRaw(Uint256{^uint64(0)}, one)
	if sum != (Uint256{0, 1, 0, 0}) || carry != 0 {
		t.Fatalf("(2^64-1)+1: got %v carry %d, want 2^64 carry 0", sum, carry)
	}

	diff, borrow := subRaw(Uint256{}, one)
	if diff != max || borrow != 1 {
		t.Fatalf("0-1: got %v borrow %d, want 2^256-1 borrow 1", diff, borrow)
	}
	diff, borrow = subRaw(Uint256{0, 1, 0, 0}, one)
	if diff != (Uint256{^uint64(0)}) || borrow != 0 {
		t.Fatalf("2^64-1: got %v borrow %d, want 2^64-1 borrow 0", diff,
			borrow)
	}
}

// TestUint256Bit ensures individual bits are extracted from the right word.
func TestUint256Bit(t *testing.T) {
	u := Uint256{0x1, 0x8000000000000000, 0, 0x4000000000000000}
	set := map[uint]bool{0: true, 127: true, 254: true}
	for i := uint(0); i < 256; i++ {
		want := uint64(0)
		if set[i] {
			want = 1
		}
		if got := u.Bit(i); got != want {
			t.Errorf("bit %d: got %d, want %d", i, got, want)
		}
	}
}
