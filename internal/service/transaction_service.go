// FILE: internal/service/transaction_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"bookverse-be/internal/dto"
	"bookverse-be/internal/entity"
	"bookverse-be/internal/pkg/apperr"
	"bookverse-be/internal/pkg/logger"
	"bookverse-be/internal/repository/contract"
	"bookverse-be/internal/repository/specification"
	"bookverse-be/internal/repository/unitofwork"

	"bookverse-be/pkg/events"
	pktNats "bookverse-be/pkg/nats"
	"bookverse-be/pkg/payment"
	"bookverse-be/pkg/payment/reconcile"
	"bookverse-be/pkg/txcode"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ITransactionService interface {
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest, rawBody []byte) error
	CheckStatus(ctx context.Context, userId uuid.UUID, code string) (*dto.TransactionStatusResponse, error)
	Cancel(ctx context.Context, userId uuid.UUID, code string) error
	List(ctx context.Context, userId uuid.UUID) ([]*dto.TransactionResponse, error)
	Detail(ctx context.Context, userId uuid.UUID, code string) (*dto.TransactionResponse, error)
	SyncPending(ctx context.Context, days int) (*dto.SyncResultResponse, error)
}

type transactionService struct {
	uowFactory       unitofwork.RepositoryFactory
	gateway          payment.Gateway
	engine           *reconcile.Engine
	eventPublisher   *pktNats.Publisher
	receiptPublisher IPublisherService
	log              logger.ILogger
}

func NewTransactionService(
	uowFactory unitofwork.RepositoryFactory,
	gateway payment.Gateway,
	engine *reconcile.Engine,
	eventPublisher *pktNats.Publisher,
	receiptPublisher IPublisherService,
	log logger.ILogger,
) ITransactionService {
	return &transactionService{
		uowFactory:       uowFactory,
		gateway:          gateway,
		engine:           engine,
		eventPublisher:   eventPublisher,
		receiptPublisher: receiptPublisher,
		log:              log,
	}
}

// HandleNotification processes a signed gateway webhook. The signature
// covers order_id + status_code + gross_amount, so a forged body cannot
// move a transaction.
func (s *transactionService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest, rawBody []byte) error {
	if !s.gateway.VerifySignature(req.OrderId, req.StatusCode, req.GrossAmount, req.SignatureKey) {
		s.log.Warn("webhook", "signature mismatch", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return apperr.Validation("invalid signature")
	}

	status := &payment.Status{
		OrderId:              req.OrderId,
		TransactionStatus:    req.TransactionStatus,
		FraudStatus:          req.FraudStatus,
		PaymentType:          req.PaymentType,
		GatewayTransactionId: req.TransactionId,
	}

	result, err := s.engine.Apply(ctx, req.OrderId, status, reconcile.SourceWebhook, rawBody, time.Now())
	if err != nil {
		return err
	}

	s.afterReconcile(ctx, result)
	return nil
}

// CheckStatus is the client poll: consult the gateway, reconcile, and
// report the (possibly transitioned) local state. When the gateway is
// unreachable the local state is reported as-is.
func (s *transactionService) CheckStatus(ctx context.Context, userId uuid.UUID, code string) (*dto.TransactionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	txn, err := uow.TransactionRepository().FindOne(ctx,
		specification.ByCode{Code: code},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperr.ErrNotFound
	}

	gatewayStatus := ""
	if !txn.IsTerminal() {
		status, err := s.gateway.QueryStatus(ctx, code)
		if err != nil {
			s.log.Warn("transaction", "gateway status query failed, serving local state", map[string]interface{}{
				"code":  code,
				"error": err.Error(),
			})
		} else {
			gatewayStatus = status.TransactionStatus
			result, err := s.engine.Apply(ctx, code, status, reconcile.SourcePoll, nil, now)
			if err != nil {
				return nil, err
			}
			s.afterReconcile(ctx, result)
			txn = result.Transaction
		}
	}

	return &dto.TransactionStatusResponse{
		Code:          txn.Code,
		Status:        string(txn.Status),
		GatewayStatus: gatewayStatus,
		PaidAt:        txn.PaidAt,
		IsExpired:     txn.IsExpired(now),
		CanBePaid:     txn.CanBePaid(now),
	}, nil
}

// Cancel aborts the user's own pending checkout. The row moves to
// failed locally first; the gateway-side void is best effort.
func (s *transactionService) Cancel(ctx context.Context, userId uuid.UUID, code string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	txn, err := uow.TransactionRepository().FindOne(ctx,
		specification.ByCode{Code: code},
		specification.UserOwnedBy{UserID: userId},
		specification.LockForUpdate{},
	)
	if err != nil {
		return err
	}
	if txn == nil {
		return apperr.ErrNotFound
	}
	if txn.Status != entity.TransactionStatusPending {
		return &apperr.TransactionNotPayableError{Status: txn.Status}
	}

	fromStatus := txn.Status
	notes := "Cancelled by user"
	txn.Status = entity.TransactionStatusFailed
	txn.Notes = &notes
	if err := uow.TransactionRepository().Update(ctx, txn); err != nil {
		return err
	}

	rawPayload, _ := json.Marshal(map[string]string{"reason": "user_cancel"})
	if err := uow.TransactionRepository().AppendStatusLog(ctx, &contract.StatusLogEntry{
		TransactionId: txn.Id,
		Source:        "user",
		GatewayStatus: "cancel",
		FromStatus:    fromStatus,
		ToStatus:      txn.Status,
		RawPayload:    datatypes.JSON(rawPayload),
	}); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if err := s.gateway.Cancel(ctx, code); err != nil {
		s.log.Warn("transaction", "gateway-side cancel failed", map[string]interface{}{
			"code":  code,
			"error": err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.NewTransactionFailedEvent(userId.String(), txn.Id.String(), txn.Code, "cancelled by user")
		_ = s.eventPublisher.Publish(ctx, evt)
	}

	return nil
}

func (s *transactionService) List(ctx context.Context, userId uuid.UUID) ([]*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	txns, err := uow.TransactionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]*dto.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		result = append(result, toTransactionResponse(txn, now))
	}
	return result, nil
}

func (s *transactionService) Detail(ctx context.Context, userId uuid.UUID, code string) (*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	txn, err := uow.TransactionRepository().FindOne(ctx,
		specification.ByCode{Code: code},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperr.ErrNotFound
	}

	return toTransactionResponse(txn, time.Now()), nil
}

// SyncPending is the admin bulk reconciliation: every pending
// transaction created within the window is checked against the gateway
// through the same evaluation the webhook uses. Per-row failures are
// reported, not fatal.
func (s *transactionService) SyncPending(ctx context.Context, days int) (*dto.SyncResultResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	txns, err := uow.TransactionRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.TransactionStatusPending)},
		specification.CreatedAfter{Since: now.AddDate(0, 0, -days)},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.SyncResultResponse{Scanned: len(txns), Rows: make([]dto.SyncRowResult, 0, len(txns))}
	for _, txn := range txns {
		row := dto.SyncRowResult{Code: txn.Code, FromStatus: string(txn.Status)}

		status, err := s.gateway.QueryStatus(ctx, txn.Code)
		if err != nil {
			row.ToStatus = string(txn.Status)
			row.Outcome = "error"
			row.Error = err.Error()
			res.Errors++
			res.Rows = append(res.Rows, row)
			continue
		}

		result, err := s.engine.Apply(ctx, txn.Code, status, reconcile.SourceAdminSync, nil, now)
		if err != nil {
			row.ToStatus = string(txn.Status)
			row.Outcome = "error"
			row.Error = err.Error()
			res.Errors++
			res.Rows = append(res.Rows, row)
			continue
		}

		row.ToStatus = string(result.Transaction.Status)
		row.Outcome = string(result.Decision.Outcome)
		switch {
		case result.Decision.Outcome == reconcile.OutcomeConflict:
			res.Conflicts++
		case result.Decision.Applies():
			res.Transitions++
		}
		s.afterReconcile(ctx, result)

		res.Rows = append(res.Rows, row)
	}

	return res, nil
}

// afterReconcile fires post-commit side effects: domain events on the
// bus and the receipt pipeline. None of these may fail the request.
func (s *transactionService) afterReconcile(ctx context.Context, result *reconcile.Result) {
	txn := result.Transaction

	switch result.Decision.Outcome {
	case reconcile.OutcomePaid:
		if s.eventPublisher != nil {
			_ = s.eventPublisher.Publish(ctx, events.NewTransactionPaidEvent(
				txn.UserId.String(), txn.Id.String(), txn.Code, result.Source, txn.TotalAmount,
			))
			for _, granted := range result.Granted {
				_ = s.eventPublisher.Publish(ctx, events.NewEntitlementGrantedEvent(
					txn.UserId.String(), txn.Id.String(), string(granted.Type), granted.Id.String(),
				))
			}
			if result.ActivatedSubscriptionId != nil {
				_ = s.eventPublisher.Publish(ctx, events.NewSubscriptionActivatedEvent(
					txn.UserId.String(), result.ActivatedSubscriptionId.String(), "", nil,
				))
			}
		}

		if s.receiptPublisher != nil {
			payload, _ := json.Marshal(dto.SendReceiptMessage{TransactionId: txn.Id})
			if err := s.receiptPublisher.Publish(ctx, payload); err != nil {
				s.log.Warn("transaction", "failed to queue receipt", map[string]interface{}{
					"code": txn.Code,
				})
			}
		}

	case reconcile.OutcomeFailed:
		if s.eventPublisher != nil {
			_ = s.eventPublisher.Publish(ctx, events.NewTransactionFailedEvent(
				txn.UserId.String(), txn.Id.String(), txn.Code, result.Decision.Note,
			))
		}

	case reconcile.OutcomeExpired:
		if s.eventPublisher != nil {
			_ = s.eventPublisher.Publish(ctx, events.NewTransactionExpiredEvent(
				txn.UserId.String(), txn.Id.String(), txn.Code,
			))
		}
	}
}

func toTransactionResponse(txn *entity.Transaction, now time.Time) *dto.TransactionResponse {
	items := make([]dto.TransactionItemResponse, 0, len(txn.Items))
	for _, item := range txn.Items {
		items = append(items, dto.TransactionItemResponse{
			ItemType: string(item.Item.Type),
			ItemId:   item.Item.Id,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return &dto.TransactionResponse{
		Id:              txn.Id,
		Code:            txn.Code,
		Type:            string(txn.Type),
		Status:          string(txn.Status),
		TotalAmount:     txn.TotalAmount,
		AmountFormatted: txcode.FormatIDR(txn.TotalAmount),
		PaymentMethod:   txn.PaymentMethod,
		PaidAt:          txn.PaidAt,
		ExpiresAt:       txn.ExpiresAt,
		IsExpired:       txn.IsExpired(now),
		CanBePaid:       txn.CanBePaid(now),
		Notes:           txn.Notes,
		CreatedAt:       txn.CreatedAt,
		Items:           items,
	}
}
