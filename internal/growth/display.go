package growth

import (
	"strings"
	"time"

	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// StatusImage returns the display value for the fruit's current stage.
// Falls back to a seedling when the fruit, its status, or the value is missing.
func StatusImage(fruit *domain.Fruit) string {
	if fruit == nil {
		return content.SeedlingGlyph
	}
	if v := fruit.StageValue(fruit.Status); v != "" {
		return v
	}
	return content.SeedlingGlyph
}

// CompletedImage returns the display value for a harvested fruit
func CompletedImage(fruit *domain.Fruit) string {
	if fruit == nil || fruit.SeventhStatus == "" {
		return content.CompletedGlyph
	}
	return fruit.SeventhStatus
}

// IsImageURL reports whether value should be rendered as an image instead of text
func IsImageURL(value string) bool {
	return strings.HasPrefix(value, "http://") ||
		strings.HasPrefix(value, "https://") ||
		strings.HasPrefix(value, "/")
}

// timestamp layouts accepted from the backend, zoned first
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a backend timestamp. Timestamps without an offset are
// taken to be wall-clock time in loc.
func ParseTimestamp(ts string, loc *time.Location) (time.Time, bool) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, ts, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a backend timestamp as YYYY.MM.DD in loc, or "" when unparsable
func FormatDate(ts string, loc *time.Location) string {
	t, ok := ParseTimestamp(ts, loc)
	if !ok {
		return ""
	}
	return t.Format("2006.01.02")
}

// AnimationDelay returns the staggered entrance delay in seconds for item i
func AnimationDelay(i int, step float64) float64 {
	return float64(i) * step
}
