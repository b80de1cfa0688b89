// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
)

// These constants define the lengths of serialized points.
const (
	// PointBytesLenInfinity is the bytes length of the serialized point at
	// infinity.
	PointBytesLenInfinity = 1

	// PointBytesLenCompressed is the bytes length of a serialized compressed
	// point.
	PointBytesLenCompressed = 33

	// PointBytesLenUncompressed is the bytes length of a serialized
	// uncompressed point.
	PointBytesLenUncompressed = 65
)

const (
	// pointFormatInfinity is the single byte that encodes the point at
	// infinity.
	pointFormatInfinity byte = 0x00

	// pointFormatCompressed is the format byte of a compressed point.  It is
	// 0x02 for an even y coordinate and 0x03 for an odd one.
	pointFormatCompressed byte = 0x02

	// pointFormatUncompressed is the format byte of an uncompressed point.
	pointFormatUncompressed byte = 0x04

	// pointFormatHybrid is the format byte of a hybrid point.  Like the
	// compressed format the low bit carries the oddness of y.
	pointFormatHybrid byte = 0x06
)

// ParsePoint parses a point from its SEC 1 serialized form, ensuring it is a
// member of the group.  It supports the single 0x00 byte encoding of the point
// at infinity as well as the compressed, uncompressed, and hybrid formats.
//
// ErrInvalidEncoding is returned for an unknown length or format byte, for
// coordinates that are not less than the field prime, and for hybrid encodings
// whose format byte disagrees with the oddness of y.  ErrPointNotOnCurve is
// returned when the coordinates are not on the curve or, for compressed
// points, when the x coordinate has no corresponding y.
func ParsePoint(serialized []byte) (Point, error) {
	p, err := parsePoint(serialized)
	if err != nil {
		log.Tracef("rejected %d byte point encoding: %v", len(serialized), err)
	}
	return p, err
}

func parsePoint(serialized []byte) (Point, error) {
	var x, y FieldVal
	switch len(serialized) {
	case PointBytesLenInfinity:
		if serialized[0] != pointFormatInfinity {
			str := fmt.Sprintf("invalid format byte for the point at "+
				"infinity: want 0x%02x, got 0x%02x", pointFormatInfinity,
				serialized[0])
			return Point{}, encodingError(str)
		}
		return Infinity(), nil

	case PointBytesLenUncompressed:
		// Reject unsupported formats.  The low bit of the format byte
		// only matters for the hybrid format.
		format := serialized[0]
		switch format &^ 0x01 {
		case pointFormatUncompressed:
			if format != pointFormatUncompressed {
				str := fmt.Sprintf("invalid format byte for an "+
					"uncompressed point: 0x%02x", format)
				return Point{}, encodingError(str)
			}
		case pointFormatHybrid:
		default:
			str := fmt.Sprintf("invalid format byte for a 65 byte "+
				"point: want 0x%02x, 0x%02x or 0x%02x, got 0x%02x",
				pointFormatUncompressed, pointFormatHybrid,
				pointFormatHybrid|0x01, format)
			return Point{}, encodingError(str)
		}

		var err error
		if x, err = fieldValFromSlice(serialized[1:33], "x"); err != nil {
			return Point{}, err
		}
		if y, err = fieldValFromSlice(serialized[33:65], "y"); err != nil {
			return Point{}, err
		}

		// Ensure the oddness of the y coordinate matches the specified
		// oddness for hybrid points.
		if format&^0x01 == pointFormatHybrid {
			wantOddY := format&0x01 == 0x01
			if y.IsOdd() != wantOddY {
				str := fmt.Sprintf("hybrid point format byte 0x%02x "+
					"does not match the oddness of y", format)
				return Point{}, encodingError(str)
			}
		}

		if !IsOnCurve(x, y) {
			return Point{}, makeError(ErrPointNotOnCurve, "invalid point: "+
				"coordinates are not on the secp256k1 curve")
		}

	case PointBytesLenCompressed:
		// Reject unsupported formats.
		format := serialized[0]
		if format&^0x01 != pointFormatCompressed {
			str := fmt.Sprintf("invalid format byte for a compressed "+
				"point: want 0x%02x or 0x%02x, got 0x%02x",
				pointFormatCompressed, pointFormatCompressed|0x01, format)
			return Point{}, encodingError(str)
		}

		var err error
		if x, err = fieldValFromSlice(serialized[1:33], "x"); err != nil {
			return Point{}, err
		}

		// Attempt to calculate the y coordinate for the given x coordinate
		// such that the result pair is a point on the secp256k1 curve and
		// the solution with the desired oddness is chosen.
		wantOddY := format&0x01 == 0x01
		var ok bool
		if y, ok = DecompressY(x, wantOddY); !ok {
			str := fmt.Sprintf("invalid point: x coordinate %s is not "+
				"on the secp256k1 curve", x)
			return Point{}, makeError(ErrPointNotOnCurve, str)
		}

	default:
		str := fmt.Sprintf("malformed point: invalid length: %d",
			len(serialized))
		return Point{}, encodingError(str)
	}

	return Point{x: x, y: y, affine: true}, nil
}

// fieldValFromSlice decodes a 32-byte coordinate, rejecting values that are
// not less than the field prime.
func fieldValFromSlice(b []byte, name string) (FieldVal, error) {
	var buf [32]byte
	copy(buf[:], b)
	f, err := FieldValFromBytes(&buf)
	if err != nil {
		str := fmt.Sprintf("invalid point: %s coordinate >= field prime",
			name)
		return FieldVal{}, encodingError(str)
	}
	return f, nil
}

// DecompressY attempts to calculate the y coordinate for the given x
// coordinate such that the result pair is a point on the secp256k1 curve.  It
// picks the root with the requested oddness and returns whether or not it was
// successful since not all x coordinates are valid.
func DecompressY(x FieldVal, odd bool) (FieldVal, bool) {
	// The curve equation for secp256k1 is: y^2 = x^3 + 7.  Thus
	// y = +-sqrt(x^3 + 7).
	//
	// The x coordinate must be invalid if there is no square root for the
	// calculated rhs because it means the x coordinate is not for a point on
	// the curve.
	y, ok := x.Square().Mul(x).Add(curveB).Sqrt()
	if !ok {
		return FieldVal{}, false
	}
	if y.IsOdd() != odd {
		y = y.Negate()
	}
	return y, true
}

// SerializeUncompressed serializes the point in the 65-byte uncompressed
// format:
//
//	0x04 || 32-byte x coordinate || 32-byte y coordinate
//
// The point at infinity is serialized as the single byte 0x00.
func (p Point) SerializeUncompressed() []byte {
	if !p.affine {
		return []byte{pointFormatInfinity}
	}
	b := make([]byte, 0, PointBytesLenUncompressed)
	b = append(b, pointFormatUncompressed)
	xb, yb := p.x.Bytes(), p.y.Bytes()
	b = append(b, xb[:]...)
	return append(b, yb[:]...)
}

// SerializeCompressed serializes the point in the 33-byte compressed format:
//
//	0x02 or 0x03 (for an odd y) || 32-byte x coordinate
//
// The point at infinity is serialized as the single byte 0x00.
func (p Point) SerializeCompressed() []byte {
	if !p.affine {
		return []byte{pointFormatInfinity}
	}
	format := pointFormatCompressed
	if p.y.IsOdd() {
		format |= 0x01
	}
	b := make([]byte, 0, PointBytesLenCompressed)
	b = append(b, format)
	xb := p.x.Bytes()
	return append(b, xb[:]...)
}
