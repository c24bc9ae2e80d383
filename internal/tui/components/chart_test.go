package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/lumina/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestNewMoneyAxis(t *testing.T) {
	tests := []struct {
		peak     float64
		height   int
		wantStep float64
		wantTop  float64
	}{
		{peak: 4300, height: 10, wantStep: 1000, wantTop: 5000},
		{peak: 120, height: 8, wantStep: 40, wantTop: 120},
		{peak: 98000, height: 4, wantStep: 80000, wantTop: 160000},
	}
	for _, tt := range tests {
		ax := newMoneyAxis(tt.peak, tt.height)
		if ax.step != tt.wantStep || ax.top != tt.wantTop {
			t.Errorf("newMoneyAxis(%v, %d) step/top = %v/%v, want %v/%v",
				tt.peak, tt.height, ax.step, ax.top, tt.wantStep, tt.wantTop)
		}
		if ax.ticks > max(2, tt.height/2) {
			t.Errorf("newMoneyAxis(%v, %d) drew %d ticks", tt.peak, tt.height, ax.ticks)
		}
	}
}

func TestFitBarsResamplesWhenCrowded(t *testing.T) {
	values := make([]float64, 60)
	labels := make([]string, 60)
	for i := range values {
		values[i] = float64(i)
		labels[i] = "x"
	}

	v, l, barW := fitBars(values, labels, 30)
	if barW != 2 {
		t.Errorf("barW = %d, want 2", barW)
	}
	if len(v) != 10 || len(l) != 10 {
		t.Fatalf("resampled to %d values/%d labels, want 10", len(v), len(l))
	}
	if v[0] != 0 || v[9] != 59 {
		t.Errorf("resampled ends = %v..%v, want first and last kept", v[0], v[9])
	}

	_, _, barW = fitBars([]float64{1, 2, 3}, nil, 80)
	if barW != 6 {
		t.Errorf("wide barW = %d, want capped at 6", barW)
	}
}

func TestXAxisLabelsKeepsLast(t *testing.T) {
	got := xAxisLabels([]string{"3m", "6m", "9m", "1y"}, 3, 12)
	if !strings.HasSuffix(got, "1y") {
		t.Errorf("labels %q do not end with the last label", got)
	}
	if !strings.HasPrefix(got, "3m") {
		t.Errorf("labels %q do not start with the first label", got)
	}
}

func TestBarChartHeightAndWidth(t *testing.T) {
	theme.Active = theme.LuminaDark
	values := []float64{100, 250, -50, 400}
	labels := []string{"Jan", "Feb", "Mar", "Apr"}

	out := BarChart(values, labels, theme.Active.Expense, 40, 8)
	lines := strings.Split(out, "\n")

	ax := newMoneyAxis(400, 8)
	if want := ax.height() + 2; len(lines) != want {
		t.Fatalf("BarChart lines = %d, want %d", len(lines), want)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line %d width %d exceeds 40", i, w)
		}
	}

	if got := BarChart(values, labels, theme.Active.Expense, 10, 8); strings.Contains(got, "\n") {
		t.Error("narrow BarChart should fall back to a one-line sparkline")
	}
}
