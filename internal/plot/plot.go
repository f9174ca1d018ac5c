// Package plot renders float64 series as Unicode Braille line charts.
package plot

import (
	"math"
	"strings"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Curve renders series as a connected polyline in a width x height cell
// grid. Each cell is a 2x4 dot grid, giving 2x horizontal and 4x vertical
// resolution. Values map linearly so lo..hi spans the full dot height;
// out-of-range values clamp to the edge rows. Returns "" when the grid or
// series is empty or the range is degenerate.
func Curve(series []float64, width, height int, lo, hi float64) string {
	if width < 1 || height < 1 || len(series) == 0 || hi <= lo {
		return ""
	}

	dotCols := width * 2
	dotRows := height * 4

	// Interpolate the series to dot-column resolution.
	rows := make([]int, dotCols)
	for dc := range dotCols {
		var v float64
		if len(series) == 1 || dotCols == 1 {
			v = series[0]
		} else {
			frac := float64(dc) / float64(dotCols-1) * float64(len(series)-1)
			i := int(math.Floor(frac))
			if i >= len(series)-1 {
				i = len(series) - 2
			}
			t := frac - float64(i)
			v = series[i]*(1-t) + series[i+1]*t
		}
		norm := (v - lo) / (hi - lo)
		if norm < 0 {
			norm = 0
		}
		if norm > 1 {
			norm = 1
		}
		rows[dc] = int((1 - norm) * float64(dotRows-1))
	}

	// Fill the vertical run between neighboring samples so steep segments
	// stay connected.
	cells := make([]uint, width*height)
	set := func(dc, dr int) {
		cells[(dr/4)*width+dc/2] |= 1 << brailleBits[dc%2][dr%4]
	}
	prev := rows[0]
	for dc, row := range rows {
		top, bottom := row, prev
		if top > bottom {
			top, bottom = bottom, top
		}
		for dr := top; dr <= bottom; dr++ {
			set(dc, dr)
		}
		prev = row
	}

	var out strings.Builder
	for r := range height {
		if r > 0 {
			out.WriteByte('\n')
		}
		for c := range width {
			out.WriteRune(rune(0x2800 + cells[r*width+c]))
		}
	}
	return out.String()
}

// Range returns the plotting bounds for series, widened to include the
// baseline values so the chart keeps a stable frame of reference across
// updates. Falls back to baseLo..baseHi for an empty series.
func Range(series []float64, baseLo, baseHi float64) (lo, hi float64) {
	lo, hi = baseLo, baseHi
	for _, v := range series {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
