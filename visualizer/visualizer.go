// Package visualizer renders part-of-speech distributions as standalone
// SVG bar charts.
package visualizer

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

const (
	chartWidth   = 640
	barHeight    = 22
	barGap       = 8
	labelWidth   = 90
	countPadding = 6
	topMargin    = 40
)

// Render produces an SVG bar chart of the given POS frequencies, ordered by
// descending count and then tag name so output is deterministic.
func Render(title string, frequencies map[string]int) string {
	type bar struct {
		tag   string
		count int
	}

	bars := make([]bar, 0, len(frequencies))
	maxCount := 0
	for tag, count := range frequencies {
		bars = append(bars, bar{tag: tag, count: count})
		if count > maxCount {
			maxCount = count
		}
	}
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].count != bars[j].count {
			return bars[i].count > bars[j].count
		}
		return bars[i].tag < bars[j].tag
	})

	height := topMargin + len(bars)*(barHeight+barGap)
	maxBarWidth := chartWidth - labelWidth - 80

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="sans-serif">`+"\n",
		chartWidth, height)
	fmt.Fprintf(&b, `  <text x="%d" y="24" font-size="16">%s</text>`+"\n", labelWidth, escape(title))

	for i, bar := range bars {
		y := topMargin + i*(barHeight+barGap)
		width := 0
		if maxCount > 0 {
			width = bar.count * maxBarWidth / maxCount
		}
		fmt.Fprintf(&b, `  <text x="%d" y="%d" font-size="13" text-anchor="end">%s</text>`+"\n",
			labelWidth-countPadding, y+barHeight-6, escape(bar.tag))
		fmt.Fprintf(&b, `  <rect x="%d" y="%d" width="%d" height="%d" fill="#4878a8"/>`+"\n",
			labelWidth, y, width, barHeight)
		fmt.Fprintf(&b, `  <text x="%d" y="%d" font-size="13">%d</text>`+"\n",
			labelWidth+width+countPadding, y+barHeight-6, bar.count)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// RenderToFile writes the chart for frequencies to path.
func RenderToFile(title string, frequencies map[string]int, path string) error {
	if err := os.WriteFile(path, []byte(Render(title, frequencies)), 0o644); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", path, err)
	}
	return nil
}

func escape(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}
