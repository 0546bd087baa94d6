// Package extract produces located color samples from an image: the image
// is quantized down to a small palette and every surviving color is tagged
// with where it was first seen and how many pixels it covers.
package extract

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"
	"strconv"

	"github.com/esimov/colorquant"

	"github.com/KeleWarg/design-theme-library-sub003/colorspace"
	"github.com/KeleWarg/design-theme-library-sub003/compare"
)

// Sample is the region metadata attached to an extracted color: the first
// pixel position the color was seen at and the number of pixels it covers
// in the quantized image.
type Sample struct {
	X     int
	Y     int
	Count int
}

// Palette extracts up to num representative colors from the image at path,
// ordered by prevalence.
func Palette(path string, num int) ([]compare.LocatedColor, error) {
	img, err := load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img, num)
}

// FromImage extracts up to num representative colors from an already
// decoded image, ordered by prevalence.
func FromImage(img image.Image, num int) ([]compare.LocatedColor, error) {
	if num < 1 {
		return nil, fmt.Errorf("palette size must be at least 1, got %d", num)
	}

	b := img.Bounds()
	quantized := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, quantized, num, false, true)

	type tally struct {
		rgb   colorspace.RGB
		first Sample
	}
	seen := make(map[colorspace.RGB]*tally)
	order := make([]*tally, 0, num)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := quantized.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			rgb := colorspace.RGB{R: int(r >> 8), G: int(g >> 8), B: int(bl >> 8)}
			t, ok := seen[rgb]
			if !ok {
				t = &tally{rgb: rgb, first: Sample{X: x, Y: y}}
				seen[rgb] = t
				order = append(order, t)
			}
			t.first.Count++
		}
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("image has no opaque pixels to sample")
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].first.Count > order[j].first.Count
	})

	located := make([]compare.LocatedColor, len(order))
	for i, t := range order {
		located[i] = compare.LocatedColor{
			ID:     "color" + strconv.Itoa(i),
			RGB:    t.rgb,
			Region: t.first,
		}
	}
	return located, nil
}

// load decodes the PNG or JPEG image at path.
func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
