package projlint

import (
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// Transform holds the six coefficients of a `proj:transform`.
//
// In affine form [a, b, c, d, e, f] a pixel (col, row) maps to
//
//	x = a*col + b*row + c
//	y = d*col + e*row + f
//
// A GDAL GeoTransform stores the same geometry as [c, a, b, f, d, e].
type Transform [6]float64

// GDALIdentity is the pixel-equals-world transform with a vertical flip. It is
// identical in both layouts and is always treated as GDAL-like.
var GDALIdentity = Transform{0, 1, 0, 0, 0, -1}

// ParseTransform converts a decoded JSON array into a Transform. Anything other
// than exactly six values is rejected.
func ParseTransform(vals []float64) (Transform, error) {
	var t Transform
	if len(vals) != len(t) {
		return t, errors.NotValidf("transform with %d elements", len(vals))
	}
	copy(t[:], vals)
	return t, nil
}

// LooksLikeGDAL reports whether t matches the GDAL GeoTransform pattern:
// zero rotation terms at indices 2 and 4, a positive pixel width at index 1
// and a negative pixel height at index 5. Comparisons are exact.
func (t Transform) LooksLikeGDAL() bool {
	if t == GDALIdentity {
		return true
	}
	return t[2] == 0 && t[4] == 0 && t[1] > 0 && t[5] < 0
}

// String renders t as a JSON-style array in plain decimal notation, e.g.
// [10, 0, 399960, 0, -10, 5900040].
func (t Transform) String() string {
	b := &strings.Builder{}
	b.WriteByte('[')
	for i, v := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}
