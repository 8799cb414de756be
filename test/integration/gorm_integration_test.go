package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"bookverse-be/internal/entity"
	"bookverse-be/internal/repository/specification"
	"bookverse-be/internal/repository/unitofwork"
	"bookverse-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.TransactionRepository())
	assert.NotNil(t, uow.PurchaseRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Entitlement Upsert Is Idempotent", func(t *testing.T) {
		ctx := context.Background()
		now := time.Now()

		user := &entity.User{
			Id:        uuid.New(),
			Email:     "test-integration-" + uuid.New().String() + "@example.com",
			FullName:  "Integration User",
			Role:      entity.UserRoleUser,
			Status:    entity.UserStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		txn := &entity.Transaction{
			Id:          uuid.New(),
			UserId:      user.Id,
			Code:        "TXN-itest-" + uuid.New().String()[:8],
			Type:        entity.TransactionTypeBookPurchase,
			TotalAmount: 50000,
			Status:      entity.TransactionStatusPaid,
			ExpiresAt:   now.Add(15 * time.Minute),
			Items: []*entity.TransactionItem{
				{
					Id:       uuid.New(),
					Item:     entity.PurchasableBook(uuid.New()),
					Title:    "Integration Book",
					Price:    50000,
					Quantity: 1,
				},
			},
		}
		err = uow.TransactionRepository().Create(ctx, txn)
		assert.NoError(t, err)

		item := txn.Items[0].Item
		grant := &entity.UserPurchase{
			Id:            uuid.New(),
			UserId:        user.Id,
			Item:          item,
			TransactionId: txn.Id,
			PurchasedAt:   now,
		}

		// First write inserts, second must not duplicate
		assert.NoError(t, uow.PurchaseRepository().Upsert(ctx, grant))
		grant.PurchasedAt = now.Add(time.Minute)
		assert.NoError(t, uow.PurchaseRepository().Upsert(ctx, grant))

		all, err := uow.PurchaseRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		assert.Len(t, all, 1)

		active, err := uow.PurchaseRepository().FindActive(ctx, user.Id, item, time.Now())
		assert.NoError(t, err)
		assert.NotNil(t, active)

		// Cleanup
		gormDB.Exec("DELETE FROM user_purchases WHERE user_id = ?", user.Id)
		gormDB.Exec("DELETE FROM transaction_items WHERE transaction_id = ?", txn.Id)
		gormDB.Exec("DELETE FROM transaction_status_logs WHERE transaction_id = ?", txn.Id)
		gormDB.Exec("DELETE FROM transactions WHERE id = ?", txn.Id)
		gormDB.Exec("DELETE FROM users WHERE id = ?", user.Id)
	})

	t.Run("Active Subscription Window Matches Entity Rule", func(t *testing.T) {
		ctx := context.Background()
		now := time.Now()

		user := &entity.User{
			Id:        uuid.New(),
			Email:     "test-integration-" + uuid.New().String() + "@example.com",
			FullName:  "Subscribing Author",
			Role:      entity.UserRoleUser,
			Status:    entity.UserStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		assert.NoError(t, uow.UserRepository().Create(ctx, user))

		plan := &entity.AuthorPlan{
			Id:             uuid.New(),
			Name:           "Integration Plan",
			Slug:           "integration-plan-" + uuid.New().String()[:8],
			Price:          100000,
			DurationDays:   30,
			MaxSubmissions: 3,
			IsActive:       true,
		}
		assert.NoError(t, uow.SubscriptionRepository().CreatePlan(ctx, plan))

		expired := now.Add(-time.Hour)
		subs := []*entity.AuthorSubscription{
			{Id: uuid.New(), UserId: user.Id, PlanId: plan.Id, StartsAt: now.Add(-48 * time.Hour), ExpiresAt: &expired, Status: entity.SubscriptionStatusActive},
			{Id: uuid.New(), UserId: user.Id, PlanId: plan.Id, StartsAt: now.Add(-time.Hour), Status: entity.SubscriptionStatusActive},
		}
		for _, s := range subs {
			assert.NoError(t, uow.SubscriptionRepository().CreateSubscription(ctx, s))
		}

		found, err := uow.SubscriptionRepository().FindAllSubscriptions(ctx,
			specification.UserOwnedBy{UserID: user.Id},
			specification.ActiveSubscriptionsAt{Now: now},
		)
		assert.NoError(t, err)

		// The query window and the entity rule must agree row for row
		for _, s := range found {
			assert.True(t, s.IsActiveAt(now))
		}
		assert.Len(t, found, 1)

		// Cleanup
		gormDB.Exec("DELETE FROM author_subscriptions WHERE user_id = ?", user.Id)
		gormDB.Exec("DELETE FROM author_plans WHERE id = ?", plan.Id)
		gormDB.Exec("DELETE FROM users WHERE id = ?", user.Id)
	})
}
