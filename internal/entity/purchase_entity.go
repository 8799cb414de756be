// FILE: internal/entity/purchase_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserPurchase is an entitlement: a durable grant of access to a book
// or chapter. At most one row exists per (user, purchasable type,
// purchasable id); the repository upserts on that key so re-processing
// a paid transaction never duplicates a grant.
type UserPurchase struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	Item          Purchasable
	TransactionId uuid.UUID
	PurchasedAt   time.Time
	// ExpiresAt nil means perpetual access.
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActiveAt reports whether the grant is usable at the given instant.
func (p *UserPurchase) IsActiveAt(now time.Time) bool {
	return p.ExpiresAt == nil || p.ExpiresAt.After(now)
}
