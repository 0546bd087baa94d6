package colorspace

import (
	"math"
	"testing"

	"github.com/jkl1337/go-chromath"
)

func TestToLab_KnownColors(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want Lab
		tol  float64
	}{
		{"pure white", RGB{255, 255, 255}, Lab{100, 0, 0}, 0.05},
		{"pure black", RGB{0, 0, 0}, Lab{0, 0, 0}, 1e-9},
		{"pure red", RGB{255, 0, 0}, Lab{53.241, 80.092, 67.203}, 0.5},
		{"pure green", RGB{0, 255, 0}, Lab{87.735, -86.183, 83.179}, 0.5},
		{"pure blue", RGB{0, 0, 255}, Lab{32.297, 79.188, -107.860}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.ToLab()
			if absDiff(got.L, tt.want.L) > tt.tol ||
				absDiff(got.A, tt.want.A) > tt.tol ||
				absDiff(got.B, tt.want.B) > tt.tol {
				t.Errorf("ToLab(%+v) = %+v, want %+v (tol %g)", tt.rgb, got, tt.want, tt.tol)
			}
		})
	}
}

func TestToLab_GraysAreAchromatic(t *testing.T) {
	for _, v := range []int{0, 1, 10, 64, 128, 200, 254, 255} {
		got := RGB{v, v, v}.ToLab()
		if absDiff(got.A, 0) > 0.05 || absDiff(got.B, 0) > 0.05 {
			t.Errorf("gray %d: a=%g b=%g, want both ~0", v, got.A, got.B)
		}
		if got.L < 0 || got.L > 100.01 {
			t.Errorf("gray %d: L=%g out of [0, 100]", v, got.L)
		}
	}
}

func TestToLab_Deterministic(t *testing.T) {
	c := RGB{137, 42, 201}
	if c.ToLab() != c.ToLab() {
		t.Errorf("ToLab(%+v) is not deterministic", c)
	}
}

func TestToLab_OutOfRangeExtrapolates(t *testing.T) {
	// Channels beyond [0, 255] are not rejected; the result is merely an
	// extrapolation, but it must stay finite.
	for _, c := range []RGB{{300, -10, 500}, {-255, -255, -255}, {1000, 1000, 1000}} {
		got := c.ToLab()
		if math.IsNaN(got.L) || math.IsNaN(got.A) || math.IsNaN(got.B) ||
			math.IsInf(got.L, 0) || math.IsInf(got.A, 0) || math.IsInf(got.B, 0) {
			t.Errorf("ToLab(%+v) = %+v, want finite components", c, got)
		}
	}
}

// Cross-check the conversion against go-chromath's sRGB->Lab pipeline
// under the same D65 illuminant.
func TestToLab_AgreesWithChromath(t *testing.T) {
	rgb2xyz := chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		&chromath.IlluminantRefD65,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2xyz := chromath.NewLabTransformer(&chromath.IlluminantRefD65)

	colors := []RGB{
		{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{128, 128, 128}, {194, 0, 120}, {10, 10, 10}, {17, 200, 99}, {250, 128, 4},
	}
	const tol = 0.1
	for _, c := range colors {
		xyz := rgb2xyz.Convert(chromath.RGB{float64(c.R), float64(c.G), float64(c.B)})
		want := lab2xyz.Invert(xyz)
		got := c.ToLab()
		if absDiff(got.L, want[0]) > tol ||
			absDiff(got.A, want[1]) > tol ||
			absDiff(got.B, want[2]) > tol {
			t.Errorf("ToLab(%+v) = %+v, chromath says {%g %g %g}", c, got, want[0], want[1], want[2])
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want string
	}{
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 255, 255}, "#ffffff"},
		{RGB{255, 0, 128}, "#ff0080"},
		{RGB{1, 2, 3}, "#010203"},
	}
	for _, tt := range tests {
		if got := tt.rgb.Hex(); got != tt.want {
			t.Errorf("Hex(%+v) = %q, want %q", tt.rgb, got, tt.want)
		}
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
