// FILE: internal/entity/transaction_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string
type TransactionStatus string
type PurchasableType string

const (
	TransactionTypeBookPurchase       TransactionType = "book_purchase"
	TransactionTypeChapterPurchase    TransactionType = "chapter_purchase"
	TransactionTypeAuthorSubscription TransactionType = "author_subscription"

	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusPaid    TransactionStatus = "paid"
	TransactionStatusFailed  TransactionStatus = "failed"
	TransactionStatusExpired TransactionStatus = "expired"

	PurchasableTypeBook    PurchasableType = "book"
	PurchasableTypeChapter PurchasableType = "chapter"
	PurchasableTypePlan    PurchasableType = "plan"
)

// Purchasable is the tagged reference a transaction item points at.
// Resolution back to a catalog row goes through an explicit switch on
// Type, never through a stringly-typed join.
type Purchasable struct {
	Type PurchasableType
	Id   uuid.UUID
}

func PurchasableBook(id uuid.UUID) Purchasable {
	return Purchasable{Type: PurchasableTypeBook, Id: id}
}

func PurchasableChapter(id uuid.UUID) Purchasable {
	return Purchasable{Type: PurchasableTypeChapter, Id: id}
}

func PurchasablePlan(id uuid.UUID) Purchasable {
	return Purchasable{Type: PurchasableTypePlan, Id: id}
}

type Transaction struct {
	Id     uuid.UUID
	UserId uuid.UUID
	// Code doubles as the gateway order id (TXN<yyyymmdd><4 digits>).
	Code          string
	Type          TransactionType
	TotalAmount   int64
	PaymentMethod *string
	Status        TransactionStatus
	// GatewayTransactionId is the processor-side id, recorded on settlement.
	GatewayTransactionId *string
	SnapToken            *string
	SnapRedirectURL      *string
	PaidAt               *time.Time
	ExpiresAt            time.Time
	Notes                *string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Items []*TransactionItem
}

type TransactionItem struct {
	Id            uuid.UUID
	TransactionId uuid.UUID
	Item          Purchasable
	// Title and Price are snapshots taken at purchase time. They must not
	// be re-derived from the live catalog row.
	Title     string
	Price     int64
	Quantity  int
	CreatedAt time.Time
}

// CalculateTotal recomputes the aggregate total from its items and
// stores it. Client-supplied totals are never trusted.
func (t *Transaction) CalculateTotal() int64 {
	var total int64
	for _, item := range t.Items {
		total += item.Price * int64(item.Quantity)
	}
	t.TotalAmount = total
	return total
}

// IsExpired reports expiry lazily: an explicit expired status, or a
// still-pending transaction whose checkout window has passed even
// though no sweep has written the status yet.
func (t *Transaction) IsExpired(now time.Time) bool {
	if t.Status == TransactionStatusExpired {
		return true
	}
	return t.Status == TransactionStatusPending && now.After(t.ExpiresAt)
}

func (t *Transaction) CanBePaid(now time.Time) bool {
	return t.Status == TransactionStatusPending && !t.IsExpired(now)
}

// IsTerminal reports whether no further business transition is expected.
// A paid transaction still tolerates idempotent re-confirmation.
func (t *Transaction) IsTerminal() bool {
	switch t.Status {
	case TransactionStatusPaid, TransactionStatusFailed, TransactionStatusExpired:
		return true
	}
	return false
}
