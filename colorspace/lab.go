// Package colorspace converts device sRGB colors into the CIE L*a*b*
// perceptually uniform space, by way of CIE XYZ under the D65 illuminant.
package colorspace

import (
	"fmt"
	"math"
)

// RGB represents a device color with 8-bit channels in [0, 255].
// Out-of-range channels are not rejected; conversion simply extrapolates.
type RGB struct {
	R int
	G int
	B int
}

// Lab represents a color in CIE L*a*b*: L* in [0, 100],
// a* and b* typically within [-128, 127].
type Lab struct {
	L float64
	A float64
	B float64
}

// D65 reference white.
const (
	refWhiteX = 95.047
	refWhiteY = 100.000
	refWhiteZ = 108.883
)

// ToLab converts an sRGB color to CIE L*a*b* (D65).
func (c RGB) ToLab() Lab {
	x, y, z := c.toXYZ()

	fx := labF(x / refWhiteX)
	fy := labF(y / refWhiteY)
	fz := labF(z / refWhiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// Hex returns the color formatted as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", byte(c.R), byte(c.G), byte(c.B))
}

// toXYZ converts sRGB to CIE XYZ scaled so that Y is 100 for white.
func (c RGB) toXYZ() (x, y, z float64) {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)

	r *= 100
	g *= 100
	b *= 100

	x = r*0.4124 + g*0.3576 + b*0.1805
	y = r*0.2126 + g*0.7152 + b*0.0722
	z = r*0.0193 + g*0.1192 + b*0.9505
	return x, y, z
}

// linearize applies the sRGB inverse gamma.
func linearize(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// labF is the CIE nonlinearity: cube root above the threshold, linear below
// so that very dark colors stay well behaved.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}
