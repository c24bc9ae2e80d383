package components

import (
	"math"
	"strings"

	"github.com/theirongolddev/lumina/internal/cli"
	"github.com/theirongolddev/lumina/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values, scaled between the
// smallest and largest value so negative series still show their shape.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := len(sparkBlocks) - 1
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkBlocks)-1))
		}
		buf.WriteRune(sparkBlocks[min(max(idx, 0), len(sparkBlocks)-1)])
	}

	return lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface).Render(buf.String())
}

// moneyAxis is the y scale of a bar chart: ticks at multiples of step up
// to top, each tick rows rows apart.
type moneyAxis struct {
	step  float64
	top   float64
	ticks int
	rows  int
}

// newMoneyAxis picks a round tick step for peak so that at most height/2
// ticks are drawn.
func newMoneyAxis(peak float64, height int) moneyAxis {
	if peak <= 0 {
		peak = 1
	}
	step := roundStep(peak / 5)
	limit := max(2, height/2)
	for math.Ceil(peak/step) > float64(limit) {
		step *= 2
	}
	ticks := max(1, int(math.Ceil(peak/step)))
	return moneyAxis{
		step:  step,
		top:   step * float64(ticks),
		ticks: ticks,
		rows:  max(2, height/ticks),
	}
}

func (ax moneyAxis) height() int { return ax.rows * ax.ticks }

// label returns the tick label for chart row r, or "" between ticks.
func (ax moneyAxis) label(r int) string {
	if r%ax.rows != 0 {
		return ""
	}
	return cli.FormatCompactMoney(ax.step * float64(r/ax.rows))
}

// roundStep rounds v up to 1, 2 or 5 times a power of ten.
func roundStep(v float64) float64 {
	base := math.Pow(10, math.Floor(math.Log10(v)))
	switch f := v / base; {
	case f < 1.5:
		return base
	case f < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// fitBars chooses a bar width for n bars separated by one column within
// width. When even two-column bars do not fit, the series is resampled to
// the number that does.
func fitBars(values []float64, labels []string, width int) ([]float64, []string, int) {
	n := len(values)
	if n == 1 {
		return values, labels, min(width, 6)
	}
	barW := (width - (n - 1)) / n
	if barW >= 2 {
		return values, labels, min(barW, 6)
	}

	keep := max(2, (width+1)/3)
	outV := make([]float64, keep)
	var outL []string
	if len(labels) == n {
		outL = make([]string, keep)
	}
	for i := range outV {
		src := i * (n - 1) / (keep - 1)
		outV[i] = values[src]
		if outL != nil {
			outL[i] = labels[src]
		}
	}
	return outV, outL, 2
}

// BarChart renders values as vertical bars over a labelled money axis.
// Negative values are drawn as empty bars. Narrow or short areas fall back
// to a sparkline.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	ax := newMoneyAxis(peak, height)

	labelW := max(4, lipgloss.Width(cli.FormatCompactMoney(ax.top))+1)
	values, labels, barW := fitBars(values, labels, max(5, width-labelW-1))
	n := len(values)
	axisLen := n*barW + n - 1

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	peakStyle := lipgloss.NewStyle().Foreground(t.Primary).Background(t.Surface)

	var b strings.Builder
	chartH := ax.height()
	for r := chartH; r >= 1; r-- {
		hi := ax.top * float64(r) / float64(chartH)
		lo := ax.top * float64(r-1) / float64(chartH)

		style := barStyle
		if float64(r) > 0.8*float64(chartH) {
			style = peakStyle
		}

		b.WriteString(axisStyle.Render(padLeftTo(ax.label(r), labelW) + "│"))
		for i, v := range values {
			if i > 0 {
				b.WriteString(blank.Render(" "))
			}
			var cell string
			switch {
			case v >= hi:
				cell = "█"
			case v > lo:
				idx := int((v - lo) / (hi - lo) * float64(len(sparkBlocks)))
				cell = string(sparkBlocks[min(max(idx, 1), len(sparkBlocks))-1])
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", barW)))
				continue
			}
			b.WriteString(style.Render(strings.Repeat(cell, barW)))
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(padLeftTo("0", labelW) + "└" + strings.Repeat("─", axisLen)))
	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", labelW+1)))
		b.WriteString(axisStyle.Render(xAxisLabels(labels, barW+1, axisLen)))
	}
	return b.String()
}

// xAxisLabels lays labels out under bars spaced stride columns apart,
// skipping any that would collide. The last label is always attempted.
func xAxisLabels(labels []string, stride, axisLen int) string {
	line := []rune(strings.Repeat(" ", axisLen))
	next := 0
	place := func(pos int, lbl string) bool {
		r := []rune(lbl)
		if pos+len(r) > axisLen {
			pos = axisLen - len(r)
		}
		if pos < next || pos < 0 {
			return false
		}
		copy(line[pos:], r)
		next = pos + len(r) + 1
		return true
	}

	last := len(labels) - 1
	for i := 0; i < last; i++ {
		// Leave room for the final label.
		if i*stride+len([]rune(labels[i])) >= axisLen-len([]rune(labels[last])) {
			break
		}
		place(i*stride, labels[i])
	}
	place(last*stride, labels[last])
	return strings.TrimRight(string(line), " ")
}

func padLeftTo(s string, w int) string {
	return strings.Repeat(" ", max(0, w-lipgloss.Width(s))) + s
}
