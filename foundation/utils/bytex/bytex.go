// File: bytex.go
// Title: Byte and Coordinate Helpers
// Description: Little-endian integer decoding, 32 bit byte reversal,
//              decimal rounding and the conversion of fixed point
//              coordinates to WGS84 degrees.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-03
// Modified: 2025-09-03

package bytex

import (
	"encoding/binary"
	"math"
	"math/bits"

	mdwerrors "github.com/msto63/cskit/foundation/core/errors"
)

// CoordScale is the number of fixed point units per degree
const CoordScale = 1e5

// CoordDigits is the number of decimals WGS84 values are rounded to
const CoordDigits = 5

// ToInt decodes up to 8 bytes as a little-endian unsigned integer. Extra
// bytes are ignored.
func ToInt(b []byte) int64 {
	var buf [8]byte
	copy(buf[:], b)
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// ToInt32 decodes up to 4 bytes as a little-endian signed 32 bit integer
func ToInt32(b []byte) int32 {
	var buf [4]byte
	copy(buf[:], b)
	return int32(binary.LittleEndian.Uint32(buf[:]))
}

// RevInt32 reverses the byte order of v
func RevInt32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// RoundN rounds v half up to n decimals. Negative values round on the
// number line (floor of v*10^n+0.5), not toward zero.
func RoundN(v float64, n int) float64 {
	factor := math.Pow(10, float64(n))
	return math.Floor(v*factor+0.5) / factor
}

// ToWGS84 converts fixed point coordinates in units of 1e-5 degrees to
// degrees rounded to five decimals. Values outside ±180 (longitude) or ±90
// (latitude) are returned together with an OUT_OF_RANGE error.
func ToWGS84(lon, lat int32) (float64, float64, error) {
	lonDeg := RoundN(float64(lon)/CoordScale, CoordDigits)
	latDeg := RoundN(float64(lat)/CoordScale, CoordDigits)

	if lonDeg < -180 || lonDeg > 180 {
		return lonDeg, latDeg, mdwerrors.BytexOutOfRange("longitude", lonDeg, -180, 180)
	}
	if latDeg < -90 || latDeg > 90 {
		return lonDeg, latDeg, mdwerrors.BytexOutOfRange("latitude", latDeg, -90, 90)
	}
	return lonDeg, latDeg, nil
}
