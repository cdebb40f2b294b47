package templating

import (
	"encoding/base64"
	"html/template"
	"math"
	"strings"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
)

const eventTimeFormat = "2006-01-02 15:04"

func date(unixTime int64) string {
	return time.Unix(unixTime, 0).UTC().Format(eventTimeFormat)
}

func formatDate(unixTime int64, format string) string {
	return time.Unix(unixTime, 0).UTC().Format(format)
}

// pngDataURL inlines png image, html/template escapes data urls given as plain strings
func pngDataURL(png []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)) //nolint:gosec
}

func humanizeValue(value float64) string {
	if math.IsNaN(value) {
		return "n/a"
	}
	if math.Abs(value) < 1000 { //nolint
		return humanize.FormatFloat("#,###.##", value)
	}
	return humanize.SIWithDigits(value, 2, "") //nolint
}

func funcMap() template.FuncMap {
	funcs := sprig.FuncMap()
	for name, fn := range (template.FuncMap{
		"date":           date,
		"formatDate":     formatDate,
		"pngDataURL":     pngDataURL,
		"humanizeValue":  humanizeValue,
		"stringsToLower": strings.ToLower,
		"stringsToUpper": strings.ToUpper,
	}) {
		funcs[name] = fn
	}
	return funcs
}
