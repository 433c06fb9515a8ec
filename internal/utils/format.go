// Package utils holds display helpers shared by the command-line and chat front ends.
package utils

import (
	"time"

	sdkmath "cosmossdk.io/math"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders an amount with thousands separators.
// Values that do not fit in an int64 are printed as plain decimal.
func FormatAmount(v sdkmath.Int) string {
	if v.IsNil() {
		return "0"
	}
	if v.IsInt64() {
		return printer.Sprintf("%d", v.Int64())
	}
	return v.String()
}

// FormatCount renders a counter with thousands separators
func FormatCount(n uint64) string {
	return printer.Sprintf("%d", n)
}

// FormatRate renders a ratio in [0,1] as a percentage
func FormatRate(r float64) string {
	return printer.Sprintf("%.1f%%", r*100)
}

// FormatSince renders the time elapsed since t, rounded to the second. Zero times render as "-".
func FormatSince(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	return d.Round(time.Second).String()
}

// ShortDigest abbreviates a hex digest to its first n characters
func ShortDigest(digest string, n int) string {
	if n <= 0 || len(digest) <= n {
		return digest
	}
	return digest[:n] + "…"
}
