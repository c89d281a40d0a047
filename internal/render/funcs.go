package render

import (
	"html/template"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/olegiv/merwah-go/internal/markup"
	"github.com/olegiv/merwah-go/internal/model"
)

var printer = message.NewPrinter(language.English)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate":     formatDate,
		"formatDateTime": formatDateTime,
		"formatNumber":   formatNumber,
		"formatPrice":    formatPrice,
		"timeAgo":        func(t time.Time) string { return timeAgo(t, time.Now()) },
		"truncate":       truncate,
		"lower":          strings.ToLower,
		"statusClass":    statusClass,
		"activityIcon":   activityIcon,
		"isActive":       isActive,
		"markdown": func(s string) template.HTML {
			html, err := markup.Render(s)
			if err != nil {
				return ""
			}
			return html
		},
		"dict":     dict,
		"imageURL": imageURL,
		"add": func(a, b int) int {
			return a + b
		},
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}

// formatNumber groups thousands: 12400 -> "12,400".
func formatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// formatPrice renders a price with two decimals and grouping.
func formatPrice(p float64) string {
	return printer.Sprintf("%.2f", p)
}

// truncate shortens s to at most length runes, adding an ellipsis.
func truncate(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	return string([]rune(s)[:length]) + "..."
}

func statusClass(s model.Status) string {
	switch s {
	case model.StatusPublished:
		return "badge-published"
	case model.StatusUnderReview:
		return "badge-review"
	case model.StatusDraft:
		return "badge-draft"
	default:
		return "badge-archived"
	}
}

func activityIcon(kind string) string {
	switch kind {
	case model.ActivityNews:
		return "📰"
	case model.ActivityStory:
		return "📖"
	case model.ActivityFatwa:
		return "📜"
	case model.ActivityFalcon:
		return "🦅"
	default:
		return "⚙"
	}
}

// isActive reports whether the sidebar entry for prefix matches the current path.
func isActive(current, prefix string) bool {
	if prefix == "/" {
		return current == "/"
	}
	return current == prefix || strings.HasPrefix(current, prefix+"/")
}

func timeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return printer.Sprintf("%d %ss ago", n, unit)
}

// dict builds a map from key/value pairs for passing several values to a partial.
func dict(pairs ...any) map[string]any {
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if k, ok := pairs[i].(string); ok {
			m[k] = pairs[i+1]
		}
	}
	return m
}

// imageURL marks an inline image preview as safe for a src attribute.
// Anything other than a base64 image data URL is dropped.
func imageURL(s string) template.URL {
	if !strings.HasPrefix(s, "data:image/") || !strings.Contains(s, ";base64,") {
		return ""
	}
	return template.URL(s) // #nosec G203 -- restricted to base64 image data
}
