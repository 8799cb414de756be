package txcode

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Prefix is shared with the gateway order id, so webhook payloads can be
// matched back to a transaction row by code alone.
const Prefix = "TXN"

// Generate builds a human-readable transaction code in the form
// TXN<yyyymmdd><4-digit-random>. The code carries a uniqueness constraint
// in storage; callers retry with a fresh code on collision.
func Generate(now time.Time) string {
	return fmt.Sprintf("%s%s%04d", Prefix, now.Format("20060102"), rand.Intn(10000))
}

// FormatIDR renders a minor-unit amount as an Indonesian Rupiah display
// string, e.g. 1250000 -> "Rp 1.250.000".
func FormatIDR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if neg {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
