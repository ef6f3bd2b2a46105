// Package viewmodels turns backend DTOs into display-ready view models.
//
// Every function here is pure and total: any DTO, however incomplete, maps to a
// fully populated view model. Missing text becomes a sentinel string, missing
// amounts and dates become Placeholder. Nothing here returns an error.
package viewmodels

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"streetadmin/models"
)

const (
	NoEmail     = "No email"
	NoPhone     = "No phone"
	Unknown     = "Unknown"
	Placeholder = "--"
)

const (
	dateTimeLayout = "02 Jan 2006, 15:04"
	dateLayout     = "02 Jan 2006"
)

var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatCurrency renders a raw amount as GBP with en-GB grouping and two
// decimals. Absent or unparseable amounts render as Placeholder.
func FormatCurrency(a models.Amount) string {
	v, ok := a.Float()
	if !ok {
		return Placeholder
	}
	return formatGBP(v)
}

func formatGBP(v float64) string {
	cents := math.Round(v * 100)
	sign := ""
	if cents < 0 {
		sign = "-"
	}
	cents = math.Abs(cents)
	p := message.NewPrinter(language.BritishEnglish)
	return sign + "£" + p.Sprintf("%v", number.Decimal(cents/100, number.Scale(2)))
}

// FormatCount renders an optional count with thousands separators. Zero is a
// real value and renders as "0".
func FormatCount(n *int) string {
	if n == nil {
		return Placeholder
	}
	p := message.NewPrinter(language.BritishEnglish)
	return p.Sprintf("%v", number.Decimal(*n))
}

// FormatPercent renders a rate such as 12.5 as "12.5%".
func FormatPercent(a models.Amount) string {
	v, ok := a.Float()
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// FormatRating renders a 0-5 rating with one decimal.
func FormatRating(a models.Amount) string {
	v, ok := a.Float()
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatDateTime renders a backend timestamp in UTC, e.g. "17 Oct 2026, 14:05".
func FormatDateTime(s *string) string {
	t, ok := parseTime(s)
	if !ok {
		return Placeholder
	}
	return t.UTC().Format(dateTimeLayout)
}

// FormatDate renders only the calendar date of a backend timestamp.
func FormatDate(s *string) string {
	t, ok := parseTime(s)
	if !ok {
		return Placeholder
	}
	return t.UTC().Format(dateLayout)
}

func parseTime(s *string) (time.Time, bool) {
	raw := text(s)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DisplayName joins the non-empty parts with a single space. It returns an
// empty string when every part is missing so callers can pick their fallback.
func DisplayName(parts ...*string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := text(p); v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, " ")
}

// Initials returns up to two upper-case initials of a display name.
func Initials(name string) string {
	out := make([]rune, 0, 2)
	for _, f := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(f)
		if !unicode.IsLetter(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// Humanize turns backend enum values such as "out_for_delivery" into
// "Out for delivery".
func Humanize(s *string) string {
	raw := text(s)
	if raw == "" {
		return Unknown
	}
	raw = strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(raw))
	raw = strings.Join(strings.Fields(raw), " ")
	if raw == "" {
		return Unknown
	}
	r, size := utf8.DecodeRuneInString(raw)
	return string(unicode.ToUpper(r)) + raw[size:]
}

// text trims an optional string; whitespace-only counts as missing.
func text(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func textOr(s *string, fallback string) string {
	if v := text(s); v != "" {
		return v
	}
	return fallback
}

func optionalText(s *string) *string {
	v := text(s)
	if v == "" {
		return nil
	}
	return &v
}

func flag(b *bool) bool {
	return b != nil && *b
}

func intOr(n *int, fallback int) int {
	if n == nil {
		return fallback
	}
	return *n
}
