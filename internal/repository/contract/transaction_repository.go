package contract

import (
	"context"

	"bookverse-be/internal/entity"
	"bookverse-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionRepository interface {
	// Create persists the transaction together with its line items.
	Create(ctx context.Context, txn *entity.Transaction) error
	Update(ctx context.Context, txn *entity.Transaction) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)

	// CodeExists backs collision retry for generated transaction codes.
	CodeExists(ctx context.Context, code string) (bool, error)

	// AppendStatusLog records one reconciliation attempt (applied or
	// refused) with the raw gateway payload for audit.
	AppendStatusLog(ctx context.Context, log *StatusLogEntry) error
}

// StatusLogEntry is the write model for the reconciliation audit trail.
type StatusLogEntry struct {
	TransactionId uuid.UUID
	Source        string
	GatewayStatus string
	FraudStatus   string
	FromStatus    entity.TransactionStatus
	ToStatus      entity.TransactionStatus
	Conflict      bool
	RawPayload    datatypes.JSON
}
