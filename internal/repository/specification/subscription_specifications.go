package specification

import (
	"time"

	"gorm.io/gorm"
)

// ActiveSubscriptionsAt is the query-side form of the active predicate.
// It must stay in lockstep with entity.SubscriptionActiveAt; the
// integration test exercises both against the same rows.
type ActiveSubscriptionsAt struct {
	Now time.Time
}

func (s ActiveSubscriptionsAt) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"status = ? AND starts_at <= ? AND (expires_at IS NULL OR expires_at >= ?)",
		"active", s.Now, s.Now,
	)
}

// ActivePurchasesAt filters entitlements that are perpetual or not yet
// expired.
type ActivePurchasesAt struct {
	Now time.Time
}

func (s ActivePurchasesAt) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at IS NULL OR expires_at > ?", s.Now)
}
