package linechart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// LabelFormat selects how sample values are turned into label text.
type LabelFormat int

const (
	// LabelPlain prints values as plain decimal integers.
	LabelPlain LabelFormat = iota
	// LabelComma groups thousands with commas, as in 12,345.
	LabelComma
)

func (f LabelFormat) String() string {
	switch f {
	case LabelPlain:
		return "plain"
	case LabelComma:
		return "comma"
	default:
		return fmt.Sprintf("LabelFormat(%d)", int(f))
	}
}

// Format returns the label text for v.
func (f LabelFormat) Format(v int) string {
	if f == LabelComma {
		return humanize.Comma(int64(v))
	}
	return strconv.Itoa(v)
}

// ParseLabelFormat parses the name of a label format as printed by
// [LabelFormat.String].
func ParseLabelFormat(s string) (LabelFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain":
		return LabelPlain, nil
	case "comma":
		return LabelComma, nil
	default:
		return LabelPlain, fmt.Errorf("linechart: unknown label format %q", s)
	}
}

// DefaultGridLabels is the label set used when there is nothing to derive
// labels from.
var DefaultGridLabels = [5]string{"0", "7", "15", "22", "30"}

// GridLabels returns the labels of the horizontal grid lines in ascending
// order.
//
// An explicit set in cfg.GridLabels is used as is when it has exactly five
// entries. Otherwise the labels are the values at 0%, 25%, 50%, 75% and 100%
// of the data's range, rounded down, so that they match the lines the points
// were normalized against. A flat series is labelled v-2 … v+2, which puts v
// on the middle line where the series is drawn, shifted as needed to stay
// within the range of int.
func GridLabels(values []int, cfg Config) [5]string {
	if len(cfg.GridLabels) == len(DefaultGridLabels) {
		var out [5]string
		copy(out[:], cfg.GridLabels)
		return out
	}
	lo, hi, ok := Extent(values)
	if !ok {
		return DefaultGridLabels
	}
	if lo == hi {
		lo = min(max(lo, math.MinInt+2), math.MaxInt-2) - 2
		hi = lo + 4
	}
	var out [5]string
	for k := range out {
		out[k] = cfg.LabelFormat.Format(gridValue(lo, hi, k))
	}
	return out
}

// gridValue returns lo + floor(k*(hi-lo)/4) for 0 <= k <= 4 and lo <= hi,
// for any lo and hi.
func gridValue(lo, hi, k int) int {
	// The difference of two ints always fits in a uint64, and so does every
	// intermediate result below.
	span := uint64(hi) - uint64(lo)
	q, r := span/4, span%4
	off := q*uint64(k) + r*uint64(k)/4
	return int(uint64(lo) + off)
}
