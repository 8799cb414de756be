package reconcile

import (
	"testing"
	"time"

	"bookverse-be/internal/entity"
	"bookverse-be/pkg/payment"

	"github.com/google/uuid"
)

func pendingTxn(expiresAt time.Time) *entity.Transaction {
	return &entity.Transaction{
		Id:        uuid.New(),
		UserId:    uuid.New(),
		Code:      "TXN202508300001",
		Type:      entity.TransactionTypeBookPurchase,
		Status:    entity.TransactionStatusPending,
		ExpiresAt: expiresAt,
	}
}

func gwStatus(txnStatus, fraud string) *payment.Status {
	return &payment.Status{
		OrderId:           "TXN202508300001",
		TransactionStatus: txnStatus,
		FraudStatus:       fraud,
	}
}

func TestEvaluateSettlementPaysPending(t *testing.T) {
	now := time.Now()
	txn := pendingTxn(now.Add(10 * time.Minute))

	d := Evaluate(txn, gwStatus("settlement", ""), now)
	if d.Outcome != OutcomePaid {
		t.Fatalf("outcome = %s, want %s", d.Outcome, OutcomePaid)
	}
	if d.ToStatus != entity.TransactionStatusPaid {
		t.Errorf("to status = %s, want paid", d.ToStatus)
	}
}

func TestEvaluateLateSettlementAfterSoftExpiry(t *testing.T) {
	// The checkout window elapsed but no sweep marked the row expired.
	// A settlement that arrives afterwards still wins.
	now := time.Now()
	txn := pendingTxn(now.Add(-30 * time.Minute))
	if !txn.IsExpired(now) {
		t.Fatal("fixture should be soft-expired")
	}

	d := Evaluate(txn, gwStatus("settlement", ""), now)
	if d.Outcome != OutcomePaid {
		t.Errorf("outcome = %s, want %s", d.Outcome, OutcomePaid)
	}
}

func TestEvaluateDoubleSettlementIsNoop(t *testing.T) {
	now := time.Now()
	txn := pendingTxn(now.Add(10 * time.Minute))
	txn.Status = entity.TransactionStatusPaid

	d := Evaluate(txn, gwStatus("settlement", ""), now)
	if d.Outcome != OutcomeNoop {
		t.Errorf("outcome = %s, want %s", d.Outcome, OutcomeNoop)
	}
	if d.ToStatus != entity.TransactionStatusPaid {
		t.Errorf("to status = %s, want paid (unchanged)", d.ToStatus)
	}
}

func TestEvaluateSettlementAfterCancelIsConflict(t *testing.T) {
	// User cancelled, we marked it failed, then a late settlement lands.
	now := time.Now()
	txn := pendingTxn(now.Add(10 * time.Minute))
	txn.Status = entity.TransactionStatusFailed

	d := Evaluate(txn, gwStatus("settlement", ""), now)
	if d.Outcome != OutcomeConflict {
		t.Fatalf("outcome = %s, want %s", d.Outcome, OutcomeConflict)
	}
	if d.ToStatus != entity.TransactionStatusFailed {
		t.Errorf("conflict must not change status, got %s", d.ToStatus)
	}
}

func TestEvaluateTable(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name        string
		localStatus entity.TransactionStatus
		expiresIn   time.Duration
		gwTxnStatus string
		fraud       string
		want        Outcome
	}{
		{"capture accept pays", entity.TransactionStatusPending, time.Hour, "capture", "accept", OutcomePaid},
		{"capture challenge holds", entity.TransactionStatusPending, time.Hour, "capture", "challenge", OutcomeNoop},
		{"capture fraud deny fails", entity.TransactionStatusPending, time.Hour, "capture", "deny", OutcomeFailed},
		{"deny fails pending", entity.TransactionStatusPending, time.Hour, "deny", "", OutcomeFailed},
		{"cancel fails pending", entity.TransactionStatusPending, time.Hour, "cancel", "", OutcomeFailed},
		{"failure fails pending", entity.TransactionStatusPending, time.Hour, "failure", "", OutcomeFailed},
		{"deny twice is noop", entity.TransactionStatusFailed, time.Hour, "deny", "", OutcomeNoop},
		{"expire expires pending", entity.TransactionStatusPending, time.Hour, "expire", "", OutcomeExpired},
		{"expire twice is noop", entity.TransactionStatusExpired, time.Hour, "expire", "", OutcomeNoop},
		{"expire on paid is conflict", entity.TransactionStatusPaid, time.Hour, "expire", "", OutcomeConflict},
		{"cancel on paid is conflict", entity.TransactionStatusPaid, time.Hour, "cancel", "", OutcomeConflict},
		{"settlement on expired is conflict", entity.TransactionStatusExpired, time.Hour, "settlement", "", OutcomeConflict},
		{"gateway pending is noop", entity.TransactionStatusPending, time.Hour, "pending", "", OutcomeNoop},
		{"gateway pending after window expires", entity.TransactionStatusPending, -time.Hour, "pending", "", OutcomeExpired},
		{"unknown status is conflict", entity.TransactionStatusPending, time.Hour, "refund", "", OutcomeConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txn := pendingTxn(now.Add(tc.expiresIn))
			txn.Status = tc.localStatus

			d := Evaluate(txn, gwStatus(tc.gwTxnStatus, tc.fraud), now)
			if d.Outcome != tc.want {
				t.Errorf("outcome = %s, want %s", d.Outcome, tc.want)
			}
			if !d.Applies() && d.ToStatus != tc.localStatus {
				t.Errorf("non-applying decision changed status to %s", d.ToStatus)
			}
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	// The same inputs must produce the same decision no matter which
	// trigger (webhook, poll, admin sync) delivered the report.
	now := time.Now()
	txn := pendingTxn(now.Add(-time.Minute))
	status := gwStatus("settlement", "")

	first := Evaluate(txn, status, now)
	second := Evaluate(txn, status, now)
	if first != second {
		t.Errorf("decisions differ: %+v vs %+v", first, second)
	}
}
