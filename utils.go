package poissondisk

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"sort"
)

// savePNG to disk
func savePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// ceilInt rounds up to the next int, min 1
func ceilInt(f float64) int {
	i := int(math.Ceil(f))
	if i < 1 {
		return 1
	}
	return i
}

// SortPoints orders points by y then x. Handy for comparing two
// samplings since the sampler itself returns points in no useful order.
func SortPoints(pts []Point2d) {
	sort.Slice(pts, func(a, b int) bool {
		if pts[a].Y != pts[b].Y {
			return pts[a].Y < pts[b].Y
		}
		return pts[a].X < pts[b].X
	})
}
