package linechart

import (
	"fmt"
	"math"
)

// Size is the extent of an area, such as the chart frame or the drawing region.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Drawable reports whether points can be mapped into an area of this size.
// Only the height takes part in normalization, so only the height has to be
// positive and finite.
func (sz Size) Drawable() bool {
	return sz.Height > 0 && !math.IsInf(sz.Height, 0)
}

// Shrink returns the size with top and bottom removed from the height. The
// result may have a negative height.
func (sz Size) Shrink(top, bottom float64) Size {
	return Size{
		Width:  sz.Width,
		Height: sz.Height - top - bottom,
	}
}
