package unitofwork

import (
	"context"

	"bookverse-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CatalogRepository() contract.CatalogRepository
	TransactionRepository() contract.TransactionRepository
	PurchaseRepository() contract.PurchaseRepository
	SubscriptionRepository() contract.SubscriptionRepository
	ReviewRepository() contract.ReviewRepository
}
