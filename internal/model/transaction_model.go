package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Transaction struct {
	Id                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId               uuid.UUID  `gorm:"type:uuid;not null;index"`
	Code                 string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Type                 string     `gorm:"type:varchar(50);not null"`
	TotalAmount          int64      `gorm:"not null;default:0"`
	PaymentMethod        *string    `gorm:"type:varchar(100)"`
	Status               string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	GatewayTransactionId *string    `gorm:"type:varchar(255)"`
	SnapToken            *string    `gorm:"type:varchar(255)"`
	SnapRedirectURL      *string    `gorm:"type:text"`
	PaidAt               *time.Time
	ExpiresAt            time.Time `gorm:"not null"`
	Notes                *string   `gorm:"type:text"`
	CreatedAt            time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`

	Items []*TransactionItem `gorm:"foreignKey:TransactionId"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type TransactionItem struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionId uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemType      string    `gorm:"type:varchar(50);not null"`
	ItemId        uuid.UUID `gorm:"type:uuid;not null"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Price         int64     `gorm:"not null"`
	Quantity      int       `gorm:"not null;default:1"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (TransactionItem) TableName() string {
	return "transaction_items"
}

// TransactionStatusLog is the reconciliation audit trail: one row per
// gateway payload applied (or refused) against a transaction, with the
// raw payload kept for manual review of conflicts.
type TransactionStatusLog struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Source        string         `gorm:"type:varchar(50);not null"` // webhook | poll | admin_sync
	GatewayStatus string         `gorm:"type:varchar(50);not null"`
	FraudStatus   string         `gorm:"type:varchar(50)"`
	FromStatus    string         `gorm:"type:varchar(50);not null"`
	ToStatus      string         `gorm:"type:varchar(50);not null"`
	Conflict      bool           `gorm:"default:false"`
	RawPayload    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (TransactionStatusLog) TableName() string {
	return "transaction_status_logs"
}
