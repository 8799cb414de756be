package contract

import (
	"context"

	"bookverse-be/internal/entity"
	"bookverse-be/internal/repository/specification"
)

type SubscriptionRepository interface {
	// Plans
	CreatePlan(ctx context.Context, plan *entity.AuthorPlan) error
	UpdatePlan(ctx context.Context, plan *entity.AuthorPlan) error
	FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.AuthorPlan, error)
	FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.AuthorPlan, error)

	// Author subscriptions
	CreateSubscription(ctx context.Context, sub *entity.AuthorSubscription) error
	UpdateSubscription(ctx context.Context, sub *entity.AuthorSubscription) error
	FindOneSubscription(ctx context.Context, specs ...specification.Specification) (*entity.AuthorSubscription, error)
	FindAllSubscriptions(ctx context.Context, specs ...specification.Specification) ([]*entity.AuthorSubscription, error)
}
