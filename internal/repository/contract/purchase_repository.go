package contract

import (
	"context"
	"time"

	"bookverse-be/internal/entity"
	"bookverse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PurchaseRepository interface {
	// Upsert inserts the entitlement or, when a row already exists for
	// (user_id, purchasable_type, purchasable_id), refreshes its
	// transaction reference, purchased_at and expires_at. Reprocessing a
	// paid transaction is therefore a no-op, never a duplicate.
	Upsert(ctx context.Context, purchase *entity.UserPurchase) error

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserPurchase, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserPurchase, error)

	// FindActive returns the usable entitlement for the triple, or nil.
	FindActive(ctx context.Context, userId uuid.UUID, item entity.Purchasable, now time.Time) (*entity.UserPurchase, error)
}
