package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/salomonkoivisto/CSCE-679/internal/core"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline draws a one-line block sparkline for pts scaled against
// [minV, maxV], w cells wide. Gap points (nil value) render as blanks so
// runs of missing days break the line instead of being bridged; a series
// with no values at all renders an empty dotted track. Series wider than w
// are downsampled.
func RenderSparkline(pts []core.SeriesPoint, w int, minV, maxV float64, style lipgloss.Style) string {
	if w < 1 {
		return ""
	}
	if len(pts) > w {
		step := float64(len(pts)) / float64(w)
		sampled := make([]core.SeriesPoint, w)
		for i := 0; i < w; i++ {
			idx := int(float64(i) * step)
			if idx >= len(pts) {
				idx = len(pts) - 1
			}
			sampled[i] = pts[idx]
		}
		pts = sampled
	}

	rng := maxV - minV
	if rng == 0 {
		rng = 1
	}

	var sb strings.Builder
	blank := true
	for _, p := range pts {
		if p.Value == nil {
			sb.WriteRune(' ')
			continue
		}
		blank = false
		idx := int((*p.Value - minV) / rng * float64(len(sparkBlocks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		sb.WriteRune(sparkBlocks[idx])
	}

	if blank {
		return style.Render(strings.Repeat("·", w))
	}

	line := sb.String()
	if pad := w - len(pts); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return style.Render(line)
}

// RenderLegend draws a horizontal gradient bar labeled with the color domain
// endpoints, cold on the left.
func RenderLegend(scale Scale, hot, cold float64, w int) string {
	barW := w - 16
	if barW < 8 {
		barW = 8
	}

	var sb strings.Builder
	for i := 0; i < barW; i++ {
		v := cold
		if barW > 1 {
			v = cold + (hot-cold)*float64(i)/float64(barW-1)
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(scale.Color(v)).Render("█"))
	}

	return fmt.Sprintf("%s %s %s",
		dimStyle.Render(fmt.Sprintf("%6.1f°", cold)),
		sb.String(),
		dimStyle.Render(fmt.Sprintf("%.1f°", hot)))
}
