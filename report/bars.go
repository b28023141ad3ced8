package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// MinBarWidth keeps small shares visible.
const MinBarWidth = 5.0

type Bar struct {
	Label   string
	Count   int
	Percent float64
	Width   float64
}

// Caption reads "<label> (<percent>%)".
func (b Bar) Caption() string {
	return fmt.Sprintf("%s (%s%%)", b.Label, b.PercentText())
}

func (b Bar) PercentText() string {
	return fmt.Sprintf("%.1f", b.Percent)
}

func (b Bar) WidthText() string {
	return fmt.Sprintf("%.1f", b.Width)
}

type Chart struct {
	Total int
	Bars  []Bar
}

func (c Chart) Empty() bool {
	return c.Total == 0
}

// Bars orders counts by descending count (ties by label) and sizes each bar
// relative to the total.
func Bars(counts map[string]int) Chart {
	chart := Chart{}
	for _, n := range counts {
		chart.Total += n
	}
	if chart.Total == 0 {
		return chart
	}

	for label, n := range counts {
		pct := float64(n) / float64(chart.Total) * 100
		chart.Bars = append(chart.Bars, Bar{
			Label:   label,
			Count:   n,
			Percent: pct,
			Width:   math.Max(pct, MinBarWidth),
		})
	}
	sort.Slice(chart.Bars, func(i, j int) bool {
		if chart.Bars[i].Count != chart.Bars[j].Count {
			return chart.Bars[i].Count > chart.Bars[j].Count
		}
		return chart.Bars[i].Label < chart.Bars[j].Label
	})
	return chart
}

// RenderBarsHTML writes the chart as the bar-chart markup used by the
// report page.
func RenderBarsHTML(w io.Writer, chart Chart) error {
	return templates.ExecuteTemplate(w, "bars", chart)
}

const textColumns = 40

// RenderBarsText draws the chart with block characters, one line per label.
func RenderBarsText(w io.Writer, chart Chart) error {
	if chart.Empty() {
		_, err := fmt.Fprintln(w, "  "+NoDataText)
		return err
	}

	labelWidth := 0
	for _, b := range chart.Bars {
		if n := len([]rune(b.Label)); n > labelWidth {
			labelWidth = n
		}
	}

	for _, b := range chart.Bars {
		cols := int(math.Round(b.Width / 100 * textColumns))
		pad := strings.Repeat(" ", labelWidth-len([]rune(b.Label)))
		_, err := fmt.Fprintf(w, "  %s%s  %s %d (%s%%)\n",
			b.Label, pad, strings.Repeat("█", cols), b.Count, b.PercentText())
		if err != nil {
			return err
		}
	}
	return nil
}
