package reconcile

import (
	"fmt"
	"time"

	"bookverse-be/internal/entity"
	"bookverse-be/pkg/payment"
)

// Trigger sources. The same evaluation runs regardless of which path
// delivered the gateway status.
const (
	SourceWebhook   = "webhook"
	SourcePoll      = "poll"
	SourceAdminSync = "admin_sync"
)

// Gateway transaction_status values (Midtrans vocabulary).
const (
	gwCapture    = "capture"
	gwSettlement = "settlement"
	gwPending    = "pending"
	gwDeny       = "deny"
	gwCancel     = "cancel"
	gwExpire     = "expire"
	gwFailure    = "failure"

	fraudAccept    = "accept"
	fraudChallenge = "challenge"
	fraudDeny      = "deny"
)

type Outcome string

const (
	// OutcomeNoop means the payload carries no new information.
	OutcomeNoop Outcome = "noop"
	// OutcomePaid transitions the transaction to paid and grants entitlements.
	OutcomePaid Outcome = "paid"
	// OutcomeFailed records a final gateway failure.
	OutcomeFailed Outcome = "failed"
	// OutcomeExpired materializes expiry on the row.
	OutcomeExpired Outcome = "expired"
	// OutcomeConflict means the payload contradicts a terminal local
	// state. Nothing is changed; the attempt is logged for manual review.
	OutcomeConflict Outcome = "conflict"
)

// Decision is the result of evaluating one gateway status against one
// local transaction. It is a pure value; applying it is the engine's job.
type Decision struct {
	Outcome  Outcome
	ToStatus entity.TransactionStatus
	Note     string
}

func (d Decision) Applies() bool {
	switch d.Outcome {
	case OutcomePaid, OutcomeFailed, OutcomeExpired:
		return true
	}
	return false
}

// Evaluate decides what a gateway status report means for a transaction.
// Rules:
//   - settlement, or capture with fraud accept, pays a pending
//     transaction even when its checkout window has already passed
//     (late settlement wins over soft expiry);
//   - a paid transaction absorbs repeated success reports silently;
//   - deny/cancel/expire/failure finalize a pending transaction;
//   - any report that contradicts a terminal state is a conflict and
//     changes nothing;
//   - capture under fraud challenge is held as pending.
func Evaluate(txn *entity.Transaction, status *payment.Status, now time.Time) Decision {
	switch status.TransactionStatus {
	case gwSettlement, gwCapture:
		if status.TransactionStatus == gwCapture && status.FraudStatus == fraudChallenge {
			if txn.Status == entity.TransactionStatusPending {
				return noop(txn, "capture held for fraud review")
			}
			return conflict(txn, status, "fraud challenge on non-pending transaction")
		}
		if status.TransactionStatus == gwCapture && status.FraudStatus == fraudDeny {
			return evaluateFailure(txn, status, now, "capture denied by fraud screening")
		}
		return evaluateSuccess(txn, status)

	case gwDeny, gwCancel, gwFailure:
		return evaluateFailure(txn, status, now, fmt.Sprintf("gateway reported %s", status.TransactionStatus))

	case gwExpire:
		return evaluateExpiry(txn, status)

	case gwPending:
		// The gateway still waits on the payer. If our window has passed
		// we materialize expiry now instead of waiting for a later report.
		if txn.Status == entity.TransactionStatusPending && txn.IsExpired(now) {
			return Decision{
				Outcome:  OutcomeExpired,
				ToStatus: entity.TransactionStatusExpired,
				Note:     "checkout window elapsed while gateway pending",
			}
		}
		return noop(txn, "gateway still pending")

	default:
		return conflict(txn, status, fmt.Sprintf("unrecognized gateway status %q", status.TransactionStatus))
	}
}

func evaluateSuccess(txn *entity.Transaction, status *payment.Status) Decision {
	switch txn.Status {
	case entity.TransactionStatusPending:
		return Decision{
			Outcome:  OutcomePaid,
			ToStatus: entity.TransactionStatusPaid,
		}
	case entity.TransactionStatusPaid:
		return noop(txn, "already paid")
	default:
		return conflict(txn, status, fmt.Sprintf("settlement reported for %s transaction", txn.Status))
	}
}

func evaluateFailure(txn *entity.Transaction, status *payment.Status, now time.Time, note string) Decision {
	switch txn.Status {
	case entity.TransactionStatusPending:
		// A soft-expired pending row still accepts the final failure so
		// the audit trail records why the payment never completed.
		return Decision{
			Outcome:  OutcomeFailed,
			ToStatus: entity.TransactionStatusFailed,
			Note:     note,
		}
	case entity.TransactionStatusFailed:
		return noop(txn, "already failed")
	default:
		return conflict(txn, status, fmt.Sprintf("failure reported for %s transaction", txn.Status))
	}
}

func evaluateExpiry(txn *entity.Transaction, status *payment.Status) Decision {
	switch txn.Status {
	case entity.TransactionStatusPending:
		return Decision{
			Outcome:  OutcomeExpired,
			ToStatus: entity.TransactionStatusExpired,
			Note:     "gateway expired the payment",
		}
	case entity.TransactionStatusExpired:
		return noop(txn, "already expired")
	default:
		return conflict(txn, status, fmt.Sprintf("expiry reported for %s transaction", txn.Status))
	}
}

func noop(txn *entity.Transaction, note string) Decision {
	return Decision{Outcome: OutcomeNoop, ToStatus: txn.Status, Note: note}
}

func conflict(txn *entity.Transaction, status *payment.Status, note string) Decision {
	return Decision{
		Outcome:  OutcomeConflict,
		ToStatus: txn.Status,
		Note:     fmt.Sprintf("%s (gateway status %s/%s)", note, status.TransactionStatus, status.FraudStatus),
	}
}
