package bootstrap

import (
	"context"
	"time"

	"bookverse-be/internal/entity"
	"bookverse-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// entitlementReader adapts the unit-of-work purchase repository to the
// access resolver's narrow read interface.
type entitlementReader struct {
	factory unitofwork.RepositoryFactory
}

func (r *entitlementReader) FindActive(ctx context.Context, userId uuid.UUID, item entity.Purchasable, now time.Time) (*entity.UserPurchase, error) {
	uow := r.factory.NewUnitOfWork(ctx)
	return uow.PurchaseRepository().FindActive(ctx, userId, item, now)
}
