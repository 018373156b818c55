package format

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const placeholder = "-"

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Dash substitutes the display placeholder for empty values.
func Dash(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// Date renders the date part of a backend timestamp. Empty values become the
// placeholder; unrecognized values pass through unchanged.
func Date(s string) string {
	if s == "" {
		return placeholder
	}
	if t, ok := parse(s); ok {
		return t.Format("2006-01-02")
	}
	return s
}

// DateTime renders a full backend timestamp.
func DateTime(s string) string {
	if s == "" {
		return placeholder
	}
	if t, ok := parse(s); ok {
		return t.Format("2006-01-02 15:04:05")
	}
	return s
}

func parse(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Yuan renders an amount of CNY the way every money cell in the back office
// shows it, e.g. ¥1,280.00.
func Yuan(amount float64) string {
	minor := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(minor, money.CNY).Display()
}

// Ratio divides num by den with the uniform zero-denominator guard: any ratio
// with a zero denominator is 0, never NaN, Inf or a panic.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	d := decimal.NewFromFloat(num).Div(decimal.NewFromFloat(den))
	return d.InexactFloat64()
}

// Percent is Ratio scaled to a percentage rounded to one decimal place.
func Percent(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	d := decimal.NewFromFloat(num).
		Div(decimal.NewFromFloat(den)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	return d.InexactFloat64()
}
