package projlint_test

import (
	"math"
	"testing"

	"github.com/juju/errors"

	"github.com/projlint/projlint"
)

var negZero = math.Copysign(0, -1)

func TestLooksLikeGDAL(t *testing.T) {
	cases := []struct {
		name string
		in   projlint.Transform
		want bool
	}{
		{"identity", projlint.Transform{0, 1, 0, 0, 0, -1}, true},
		{"north-up geotransform", projlint.Transform{10, 0.5, 0, 20, 0, -0.5}, true},
		{"affine form", projlint.Transform{0.5, 0, 10, -0.5, 20, 0}, false},
		{"flipped identity", projlint.Transform{0, -1, 0, 0, 0, 1}, false},
		{"affine north-up", projlint.Transform{0.5, 0, 10, 0, -0.5, 20}, false},
		{"rotation at 2", projlint.Transform{10, 0.5, 0.1, 20, 0, -0.5}, false},
		{"rotation at 4", projlint.Transform{10, 0.5, 0, 20, 0.1, -0.5}, false},
		{"zero width", projlint.Transform{10, 0, 0, 20, 0, -0.5}, false},
		{"zero height", projlint.Transform{10, 0.5, 0, 20, 0, 0}, false},
		{"translation unconstrained", projlint.Transform{-1e6, 30, 0, 4e6, 0, -30}, true},
		{"negative zero rotation", projlint.Transform{5, 1, negZero, 7, negZero, -1}, true},
		{"near zero is not zero", projlint.Transform{0, 1, 1e-12, 0, 0, -1}, false},
		{"all zero", projlint.Transform{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.LooksLikeGDAL(); got != tc.want {
				t.Fatalf("LooksLikeGDAL(%v) = %v, want %v", tc.in, got, tc.want)
			}
			// pure: same answer twice
			if got := tc.in.LooksLikeGDAL(); got != tc.want {
				t.Fatalf("second call LooksLikeGDAL(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestLooksLikeGDAL_MatchesPattern(t *testing.T) {
	vals := []float64{-2, -1, -0.5, 0, 0.5, 1, 2}
	for _, a := range vals {
		for _, c := range vals {
			for _, e := range vals {
				for _, f := range vals {
					tr := projlint.Transform{1, a, c, 2, e, f}
					want := tr == projlint.GDALIdentity || (c == 0 && e == 0 && a > 0 && f < 0)
					if got := tr.LooksLikeGDAL(); got != want {
						t.Fatalf("LooksLikeGDAL(%v) = %v, want %v", tr, got, want)
					}
				}
			}
		}
	}
}

func TestParseTransform(t *testing.T) {
	tr, err := projlint.ParseTransform([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if tr != (projlint.Transform{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("unexpected transform %v", tr)
	}
	for _, n := range []int{0, 5, 7, 9} {
		_, err := projlint.ParseTransform(make([]float64, n))
		if err == nil {
			t.Fatalf("expected error for %d elements", n)
		}
		if !errors.Is(err, errors.NotValid) {
			t.Fatalf("expected NotValid for %d elements, got %v", n, err)
		}
	}
}

func TestTransformString(t *testing.T) {
	cases := map[string]projlint.Transform{
		"[0, 1, 0, 0, 0, -1]":                          projlint.GDALIdentity,
		"[0.5, 0, 10, 0, -0.5, 20]":                    {0.5, 0, 10, 0, -0.5, 20},
		"[30, 0, 1000000, 0, -30, 4500000]":            {30, 0, 1e6, 0, -30, 4.5e6},
		"[399960, 10, 0, 5900040, 0, -10]":             {399960, 10, 0, 5900040, 0, -10},
		"[0.000001, 0, 12345678.25, 0, -0.0000001, 0]": {1e-6, 0, 12345678.25, 0, -1e-7, 0},
	}
	for want, tr := range cases {
		if got := tr.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
