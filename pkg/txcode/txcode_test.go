package txcode

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)

	pattern := regexp.MustCompile(`^TXN20250101\d{4}$`)
	for i := 0; i < 50; i++ {
		code := Generate(now)
		if !pattern.MatchString(code) {
			t.Fatalf("Generate() = %q, want match for %s", code, pattern)
		}
	}
}

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{50000, "Rp 50.000"},
		{90000, "Rp 90.000"},
		{1250000, "Rp 1.250.000"},
		{1000000000, "Rp 1.000.000.000"},
		{-75000, "-Rp 75.000"},
	}

	for _, tt := range tests {
		if got := FormatIDR(tt.amount); got != tt.want {
			t.Errorf("FormatIDR(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
