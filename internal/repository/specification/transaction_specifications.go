package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ByCode filters by the human-readable transaction code, which doubles
// as the gateway order id.
type ByCode struct {
	Code string
}

func (s ByCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code = ?", s.Code)
}

// ByStatus filters transactions by lifecycle status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// CreatedAfter bounds the admin bulk sync to a recent window.
type CreatedAfter struct {
	Since time.Time
}

func (s CreatedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Since)
}

// ForItem matches transactions that contain a line item for the given
// purchasable. Used by the purchase intent gate to find a live pending
// transaction for the same (user, item) pair.
type ForItem struct {
	ItemType string
	ItemId   uuid.UUID
}

func (s ForItem) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"id IN (SELECT transaction_id FROM transaction_items WHERE item_type = ? AND item_id = ?)",
		s.ItemType, s.ItemId,
	)
}

// LockForUpdate takes a row lock for the duration of the surrounding
// transaction. Reconciliation wraps read-evaluate-write in one unit of
// work under this lock so two concurrent triggers cannot both observe
// pending and race the transition.
type LockForUpdate struct{}

func (s LockForUpdate) Apply(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
