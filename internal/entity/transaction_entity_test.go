package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCalculateTotal(t *testing.T) {
	txn := &Transaction{
		Id: uuid.New(),
		// A caller-supplied total must be overwritten by the recompute.
		TotalAmount: 999999999,
		Items: []*TransactionItem{
			{Price: 50000, Quantity: 1},
			{Price: 20000, Quantity: 2},
		},
	}

	if got := txn.CalculateTotal(); got != 90000 {
		t.Errorf("CalculateTotal() = %d, want 90000", got)
	}
	if txn.TotalAmount != 90000 {
		t.Errorf("TotalAmount = %d, want 90000", txn.TotalAmount)
	}
}

func TestCalculateTotalEmpty(t *testing.T) {
	txn := &Transaction{TotalAmount: 500}
	if got := txn.CalculateTotal(); got != 0 {
		t.Errorf("CalculateTotal() with no items = %d, want 0", got)
	}
}

func TestLazyExpiry(t *testing.T) {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	txn := &Transaction{
		Status:    TransactionStatusPending,
		ExpiresAt: created.Add(15 * time.Minute),
	}

	within := created.Add(10 * time.Minute)
	if txn.IsExpired(within) {
		t.Error("IsExpired() inside the window = true, want false")
	}
	if !txn.CanBePaid(within) {
		t.Error("CanBePaid() inside the window = false, want true")
	}

	// Clock passes the window; status still reads pending until a sweep
	// or reconciliation writes it.
	after := created.Add(16 * time.Minute)
	if !txn.IsExpired(after) {
		t.Error("IsExpired() past the window = false, want true")
	}
	if txn.CanBePaid(after) {
		t.Error("CanBePaid() past the window = true, want false")
	}
	if txn.Status != TransactionStatusPending {
		t.Errorf("Status mutated by read, got %s", txn.Status)
	}
}

func TestIsExpiredStates(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)

	tests := []struct {
		name   string
		status TransactionStatus
		expiry time.Time
		want   bool
	}{
		{"explicit expired", TransactionStatusExpired, future, true},
		{"paid never expires", TransactionStatusPaid, now.Add(-time.Hour), false},
		{"failed not expired", TransactionStatusFailed, now.Add(-time.Hour), false},
		{"pending fresh", TransactionStatusPending, future, false},
		{"pending stale", TransactionStatusPending, now.Add(-time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := &Transaction{Status: tt.status, ExpiresAt: tt.expiry}
			if got := txn.IsExpired(now); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	for _, st := range []TransactionStatus{TransactionStatusPaid, TransactionStatusFailed, TransactionStatusExpired} {
		if !(&Transaction{Status: st}).IsTerminal() {
			t.Errorf("IsTerminal(%s) = false, want true", st)
		}
	}
	if (&Transaction{Status: TransactionStatusPending}).IsTerminal() {
		t.Error("IsTerminal(pending) = true, want false")
	}
}
