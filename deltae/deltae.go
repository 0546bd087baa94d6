// Package deltae computes perceptual color differences between Lab colors
// using the CIEDE2000 formula.
package deltae

import (
	"math"

	"github.com/KeleWarg/design-theme-library-sub003/colorspace"
)

// KLCh holds the CIEDE2000 parametric weighting factors for the lightness,
// chroma, and hue terms.
type KLCh struct {
	KL float64
	KC float64
	Kh float64
}

// KLChDefault is the standard unity weighting (kL = kC = kH = 1).
var KLChDefault = KLCh{1, 1, 1}

const (
	deg360   = 2 * math.Pi
	deg180   = math.Pi
	pow25To7 = 6103515625.0 // 25^7

	// halfTurnEps pads the half-turn comparison in the mean-hue branch.
	// Antipodal chroma vectors make |h1'-h2'| exactly 180 degrees, and the
	// atan2 round-off must not push the difference past the boundary.
	halfTurnEps = 1e-12
)

// CIE2000 returns the CIEDE2000 difference between two Lab colors.
// A nil klch selects the default unity weights. The result is symmetric in
// its Lab arguments, non-negative, and exactly 0 for identical inputs.
func CIE2000(lab1, lab2 colorspace.Lab, klch *KLCh) float64 {
	if klch == nil {
		klch = &KLChDefault
	}

	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	barC := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(math.Pow(barC, 7)/(math.Pow(barC, 7)+pow25To7)))
	a1Prime := (1 + g) * lab1.A
	a2Prime := (1 + g) * lab2.A
	cPrime1 := math.Hypot(a1Prime, lab1.B)
	cPrime2 := math.Hypot(a2Prime, lab2.B)

	hPrime1 := hueAngle(lab1.B, a1Prime)
	hPrime2 := hueAngle(lab2.B, a2Prime)

	deltaLPrime := lab2.L - lab1.L
	deltaCPrime := cPrime2 - cPrime1

	// When either corrected chroma is zero the hue angle is undefined and
	// the hue difference contributes nothing.
	cPrimeProduct := cPrime1 * cPrime2
	var deltahPrime float64
	if cPrimeProduct != 0 {
		deltahPrime = hPrime2 - hPrime1
		if deltahPrime < -deg180 {
			deltahPrime += deg360
		} else if deltahPrime > deg180 {
			deltahPrime -= deg360
		}
	}
	deltaHPrime := 2 * math.Sqrt(cPrimeProduct) * math.Sin(deltahPrime/2)

	barLPrime := (lab1.L + lab2.L) / 2
	barCPrime := (cPrime1 + cPrime2) / 2

	// Mean hue, with wraparound when the two hues straddle the 0/360 cut.
	hPrimeSum := hPrime1 + hPrime2
	barhPrime := hPrimeSum
	if cPrimeProduct != 0 {
		if math.Abs(hPrime1-hPrime2) <= deg180+halfTurnEps {
			barhPrime = hPrimeSum / 2
		} else if hPrimeSum < deg360 {
			barhPrime = (hPrimeSum + deg360) / 2
		} else {
			barhPrime = (hPrimeSum - deg360) / 2
		}
	}

	t := 1 -
		0.17*math.Cos(barhPrime-rad(30)) +
		0.24*math.Cos(2*barhPrime) +
		0.32*math.Cos(3*barhPrime+rad(6)) -
		0.20*math.Cos(4*barhPrime-rad(63))

	deltaTheta := rad(30) * math.Exp(-math.Pow((barhPrime-rad(275))/rad(25), 2))
	rC := 2 * math.Sqrt(math.Pow(barCPrime, 7)/(math.Pow(barCPrime, 7)+pow25To7))
	sL := 1 + 0.015*math.Pow(barLPrime-50, 2)/math.Sqrt(20+math.Pow(barLPrime-50, 2))
	sC := 1 + 0.045*barCPrime
	sH := 1 + 0.015*barCPrime*t
	rT := -math.Sin(2*deltaTheta) * rC

	lTerm := deltaLPrime / (klch.KL * sL)
	cTerm := deltaCPrime / (klch.KC * sC)
	hTerm := deltaHPrime / (klch.Kh * sH)

	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rT*cTerm*hTerm)
}

// hueAngle returns atan2(b, aPrime) normalized to [0, 2π), with the
// achromatic case pinned to 0.
func hueAngle(b, aPrime float64) float64 {
	if b == 0 && aPrime == 0 {
		return 0
	}
	h := math.Atan2(b, aPrime)
	if h < 0 {
		h += deg360
	}
	return h
}

func rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
