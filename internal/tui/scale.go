package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Thermal gradient stops, cold to hot.
var scaleStops = []colorful.Color{
	mustHex("#89B4FA"), // blue
	mustHex("#94E2D5"), // teal
	mustHex("#F9E2AF"), // yellow
	mustHex("#FAB387"), // peach
	mustHex("#F38BA8"), // red
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Scale maps temperature values onto the thermal gradient. It is built from
// the view's reversed color domain: the first domain value (global max) maps
// to the hot end regardless of which direction the gradient is walked.
type Scale struct {
	hot, cold float64
}

func NewScale(hot, cold float64) Scale {
	return Scale{hot: hot, cold: cold}
}

// Color returns the gradient color for v, clamped to the domain. Adjacent
// stops are blended in Luv space, which keeps the ramp perceptually even.
func (s Scale) Color(v float64) lipgloss.Color {
	t := 0.0
	if s.hot != s.cold {
		t = (v - s.cold) / (s.hot - s.cold)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	seg := t * float64(len(scaleStops)-1)
	i := int(seg)
	if i >= len(scaleStops)-1 {
		return lipgloss.Color(scaleStops[len(scaleStops)-1].Hex())
	}
	c := scaleStops[i].BlendLuv(scaleStops[i+1], seg-float64(i)).Clamped()
	return lipgloss.Color(c.Hex())
}
