package midtrans

import (
	"crypto/sha512"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestVerifySignature(t *testing.T) {
	g := NewGateway("SB-Mid-server-testkey", false)

	orderId := "TXN202501010042"
	statusCode := "200"
	grossAmount := "150000.00"

	valid := fmt.Sprintf("%x", sha512.Sum512([]byte(orderId+statusCode+grossAmount+"SB-Mid-server-testkey")))

	if !g.VerifySignature(orderId, statusCode, grossAmount, valid) {
		t.Error("expected valid signature to verify")
	}
	if g.VerifySignature(orderId, statusCode, grossAmount, "deadbeef") {
		t.Error("expected bogus signature to be rejected")
	}
	if g.VerifySignature(orderId, "201", grossAmount, valid) {
		t.Error("expected signature over different status code to be rejected")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 50); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := "a very long item title that exceeds the midtrans item name limit entirely"
	if got := truncate(long, 50); len(got) != 50 {
		t.Errorf("truncate length = %d, want 50", len(got))
	}

	multibyte := strings.Repeat("京", 60)
	got := truncate(multibyte, 50)
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 50 {
		t.Errorf("truncate rune count = %d, want 50", n)
	}
}
