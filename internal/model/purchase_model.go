package model

import (
	"time"

	"github.com/google/uuid"
)

// UserPurchase carries a composite unique index over the natural key so
// the repository upsert (ON CONFLICT) stays race-safe under duplicate
// webhook deliveries.
type UserPurchase struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_purchasable,priority:1"`
	PurchasableType string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_purchasable,priority:2"`
	PurchasableId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_purchasable,priority:3"`
	TransactionId   uuid.UUID `gorm:"type:uuid;not null;index"`
	PurchasedAt     time.Time `gorm:"not null"`
	ExpiresAt       *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (UserPurchase) TableName() string {
	return "user_purchases"
}
