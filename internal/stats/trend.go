package stats

import "github.com/five82/fitjourney/internal/journal"

// Trend is the weight series in stored (chronological) order.
type Trend struct {
	Values []float64
	Min    float64
	Max    float64
}

// Plot is the drawing area a trend is mapped into.
type Plot struct {
	Width  float64
	Height float64
	Pad    float64
}

// DefaultPlot matches the dashboard sparkline.
var DefaultPlot = Plot{Width: 280, Height: 60, Pad: 4}

// Point is one plotted value. Y grows downward.
type Point struct {
	X float64
	Y float64
}

// WeightTrend extracts the weight values and their range.
func WeightTrend(weights []journal.Weight) Trend {
	t := Trend{Values: make([]float64, 0, len(weights))}
	for i, w := range weights {
		t.Values = append(t.Values, w.Weight)
		if i == 0 || w.Weight < t.Min {
			t.Min = w.Weight
		}
		if i == 0 || w.Weight > t.Max {
			t.Max = w.Weight
		}
	}
	return t
}

// Range is the normalization span. A flat series uses a unit range.
func (t Trend) Range() float64 {
	if r := t.Max - t.Min; r != 0 {
		return r
	}
	return 1
}

// Normalized maps v into [0,1] relative to the series range.
func (t Trend) Normalized(v float64) float64 {
	return (v - t.Min) / t.Range()
}

// Plottable reports whether the series has enough points to draw a line.
func (t Trend) Plottable() bool {
	return len(t.Values) >= 2
}

// Points maps every value into p. Series with fewer than two values have no
// points.
func (t Trend) Points(p Plot) []Point {
	if !t.Plottable() {
		return nil
	}
	step := (p.Width - p.Pad*2) / float64(len(t.Values)-1)
	out := make([]Point, len(t.Values))
	for i, v := range t.Values {
		out[i] = Point{
			X: p.Pad + float64(i)*step,
			Y: p.Pad + (p.Height-p.Pad*2)*(1-t.Normalized(v)),
		}
	}
	return out
}
