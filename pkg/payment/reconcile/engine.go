package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookverse-be/internal/entity"
	"bookverse-be/internal/pkg/apperr"
	"bookverse-be/internal/pkg/logger"
	"bookverse-be/internal/repository/contract"
	"bookverse-be/internal/repository/specification"
	"bookverse-be/internal/repository/unitofwork"
	"bookverse-be/pkg/payment"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Result reports what one reconciliation attempt did.
type Result struct {
	Transaction *entity.Transaction
	Decision    Decision
	// Source names the trigger that delivered the gateway report.
	Source string
	// Granted lists the entitlements upserted by this attempt (paid only).
	Granted []entity.Purchasable
	// ActivatedSubscriptionId is set when a plan purchase went active.
	ActivatedSubscriptionId *uuid.UUID
}

// Engine applies gateway status reports to local transactions. Every
// attempt runs inside one database transaction with the row locked, so
// concurrent webhook and poll deliveries serialize instead of racing.
type Engine struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewEngine(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) *Engine {
	return &Engine{uowFactory: uowFactory, log: log}
}

// Apply loads the transaction by its code (the gateway order id),
// evaluates the report, persists the transition plus an audit log row,
// and materializes entitlements when the outcome is paid. It commits
// even for no-op and conflict outcomes so the audit trail keeps every
// attempt.
func (e *Engine) Apply(ctx context.Context, code string, status *payment.Status, source string, rawPayload []byte, now time.Time) (*Result, error) {
	uow := e.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	txn, err := uow.TransactionRepository().FindOne(ctx,
		specification.ByCode{Code: code},
		specification.LockForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, fmt.Errorf("%w: transaction %s", apperr.ErrNotFound, code)
	}

	decision := Evaluate(txn, status, now)
	fromStatus := txn.Status

	if decision.Applies() {
		txn.Status = decision.ToStatus
		if decision.Note != "" {
			note := decision.Note
			txn.Notes = &note
		}
		if decision.Outcome == OutcomePaid {
			paidAt := now
			txn.PaidAt = &paidAt
			if status.GatewayTransactionId != "" {
				gwId := status.GatewayTransactionId
				txn.GatewayTransactionId = &gwId
			}
			if status.PaymentType != "" {
				method := status.PaymentType
				txn.PaymentMethod = &method
			}
		}
		if err := uow.TransactionRepository().Update(ctx, txn); err != nil {
			return nil, err
		}
	}

	if rawPayload == nil {
		rawPayload, _ = json.Marshal(status)
	}
	logEntry := &contract.StatusLogEntry{
		TransactionId: txn.Id,
		Source:        source,
		GatewayStatus: status.TransactionStatus,
		FraudStatus:   status.FraudStatus,
		FromStatus:    fromStatus,
		ToStatus:      txn.Status,
		Conflict:      decision.Outcome == OutcomeConflict,
		RawPayload:    datatypes.JSON(rawPayload),
	}
	if err := uow.TransactionRepository().AppendStatusLog(ctx, logEntry); err != nil {
		return nil, err
	}

	result := &Result{Transaction: txn, Decision: decision, Source: source}

	if decision.Outcome == OutcomePaid {
		if err := e.grant(ctx, uow, txn, now, result); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if decision.Outcome == OutcomeConflict {
		e.log.Warn("reconcile", "gateway report contradicts local state", map[string]interface{}{
			"code":           code,
			"source":         source,
			"local_status":   string(fromStatus),
			"gateway_status": status.TransactionStatus,
			"note":           decision.Note,
		})
	} else if decision.Applies() {
		e.log.Info("reconcile", "transaction transitioned", map[string]interface{}{
			"code":   code,
			"source": source,
			"from":   string(fromStatus),
			"to":     string(txn.Status),
		})
	}

	return result, nil
}

// grant materializes what the payment bought: entitlement rows for
// books and chapters, an active subscription for plans. Upserts make
// repeated grants of the same purchase converge to one row.
func (e *Engine) grant(ctx context.Context, uow unitofwork.UnitOfWork, txn *entity.Transaction, now time.Time, result *Result) error {
	for _, item := range txn.Items {
		switch item.Item.Type {
		case entity.PurchasableTypeBook, entity.PurchasableTypeChapter:
			purchase := &entity.UserPurchase{
				Id:            uuid.New(),
				UserId:        txn.UserId,
				Item:          item.Item,
				TransactionId: txn.Id,
				PurchasedAt:   now,
				ExpiresAt:     nil,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := uow.PurchaseRepository().Upsert(ctx, purchase); err != nil {
				return err
			}
			result.Granted = append(result.Granted, item.Item)

		case entity.PurchasableTypePlan:
			subId, err := e.activateSubscription(ctx, uow, txn, item.Item.Id, now)
			if err != nil {
				return err
			}
			result.ActivatedSubscriptionId = &subId

		default:
			return fmt.Errorf("unknown purchasable type %q on transaction %s", item.Item.Type, txn.Code)
		}
	}
	return nil
}

func (e *Engine) activateSubscription(ctx context.Context, uow unitofwork.UnitOfWork, txn *entity.Transaction, planId uuid.UUID, now time.Time) (uuid.UUID, error) {
	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: planId})
	if err != nil {
		return uuid.Nil, err
	}
	if plan == nil {
		return uuid.Nil, fmt.Errorf("%w: plan %s", apperr.ErrNotFound, planId)
	}

	var expiresAt *time.Time
	if plan.DurationDays > 0 {
		exp := now.AddDate(0, 0, plan.DurationDays)
		expiresAt = &exp
	}

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
		specification.Filter("transaction_id", txn.Id),
	)
	if err != nil {
		return uuid.Nil, err
	}

	if sub == nil {
		txnId := txn.Id
		sub = &entity.AuthorSubscription{
			Id:            uuid.New(),
			UserId:        txn.UserId,
			PlanId:        planId,
			TransactionId: &txnId,
			CreatedAt:     now,
		}
		sub.StartsAt = now
		sub.ExpiresAt = expiresAt
		sub.Status = entity.SubscriptionStatusActive
		sub.UpdatedAt = now
		return sub.Id, uow.SubscriptionRepository().CreateSubscription(ctx, sub)
	}

	if sub.Status == entity.SubscriptionStatusActive {
		return sub.Id, nil
	}

	sub.StartsAt = now
	sub.ExpiresAt = expiresAt
	sub.Status = entity.SubscriptionStatusActive
	sub.UpdatedAt = now
	return sub.Id, uow.SubscriptionRepository().UpdateSubscription(ctx, sub)
}
