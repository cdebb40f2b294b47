package plotting

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/moira-alert/go-chart"
)

// sanitizeLabelName shortens label names to max length
func sanitizeLabelName(label string, maxLabelLength int) string {
	labelRunes := []rune(label)
	if len(labelRunes) > maxLabelLength {
		label = string(labelRunes[:maxLabelLength-3]) + "..."
	}
	return label
}

// floatToHumanizedValueFormatter converts floats into humanized strings on y axis of plot
func floatToHumanizedValueFormatter(v interface{}) string {
	if typed, isTyped := v.(float64); isTyped {
		if math.Abs(typed) < 1000 { //nolint
			return fmt.Sprintf("%.f", typed)
		}
		typed, postfix := humanize.ComputeSI(typed)
		return fmt.Sprintf("%.2f %s", typed, strings.ToUpper(postfix))
	}
	return ""
}

// getYAxisValuesFormatter returns value formatter for y axis and the longest mark length
func getYAxisValuesFormatter(limits plotLimits) (chart.ValueFormatter, int) {
	var formatter chart.ValueFormatter
	if limits.highest-limits.lowest > 10 { //nolint
		formatter = floatToHumanizedValueFormatter
	} else {
		formatter = chart.FloatValueFormatter
	}

	lowestLen := len(formatter(limits.lowest))
	highestLen := len(formatter(limits.highest))
	if lowestLen > highestLen {
		return formatter, lowestLen
	}
	return formatter, highestLen
}
