package ui

import (
	"math"

	"github.com/five82/fitjourney/internal/stats"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// sparkline draws the trend as one block character per value, keeping only
// the most recent values that fit in width. Levels stay relative to the whole
// series. Series with fewer than two values draw nothing.
func sparkline(t stats.Trend, width int) string {
	if !t.Plottable() || width <= 0 {
		return ""
	}
	values := t.Values
	if len(values) > width {
		values = values[len(values)-width:]
	}
	top := float64(len(sparkLevels) - 1)
	out := make([]rune, len(values))
	for i, v := range values {
		level := int(math.Round(t.Normalized(v) * top))
		if level < 0 {
			level = 0
		}
		if level > len(sparkLevels)-1 {
			level = len(sparkLevels) - 1
		}
		out[i] = sparkLevels[level]
	}
	return string(out)
}
