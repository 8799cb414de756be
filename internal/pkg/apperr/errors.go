// FILE: internal/pkg/apperr/errors.go
package apperr

import (
	"errors"
	"fmt"

	"bookverse-be/internal/entity"
)

// Sentinel errors for the purchase and reconciliation flows. Services
// return these; the HTTP error handler maps them to status codes.
var (
	// ErrAlreadyOwned rejects a purchase attempt for content the user
	// already holds an active entitlement to (directly, or through the
	// parent book for chapters).
	ErrAlreadyOwned = errors.New("content already owned")

	// ErrAlreadyActive rejects a plan subscription while another author
	// subscription is still active.
	ErrAlreadyActive = errors.New("subscription already active")

	// ErrValidation marks malformed input rejected before persistence.
	ErrValidation = errors.New("validation failed")

	// ErrGatewayUnavailable is transient; the transaction, if already
	// created, stays pending and untouched.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrPaymentRequired rejects a read of paywalled content the user
	// holds no entitlement to.
	ErrPaymentRequired = errors.New("payment required")

	// ErrNotFound covers both genuinely missing rows and rows belonging
	// to another user; the two are indistinguishable to the caller.
	ErrNotFound = errors.New("not found")

	// ErrReconciliationConflict marks a gateway payload that cannot be
	// applied to the transaction's current state. The transaction is
	// left unchanged and the payload logged for manual review.
	ErrReconciliationConflict = errors.New("reconciliation conflict")
)

// TransactionNotPayableError rejects payment continuation on a terminal
// transaction. Status tells the caller which terminal state it hit, so
// an already-paid transaction can route to a success page while an
// expired one offers a fresh purchase.
type TransactionNotPayableError struct {
	Status entity.TransactionStatus
}

func (e *TransactionNotPayableError) Error() string {
	return fmt.Sprintf("transaction is not payable: status is %s", e.Status)
}

func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
