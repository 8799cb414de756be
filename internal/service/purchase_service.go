// FILE: internal/service/purchase_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"bookverse-be/internal/dto"
	"bookverse-be/internal/entity"
	"bookverse-be/internal/pkg/apperr"
	"bookverse-be/internal/pkg/logger"
	"bookverse-be/internal/repository/specification"
	"bookverse-be/internal/repository/unitofwork"

	"bookverse-be/pkg/events"
	pktNats "bookverse-be/pkg/nats"
	"bookverse-be/pkg/payment"
	"bookverse-be/pkg/txcode"

	"github.com/google/uuid"
)

type IPurchaseService interface {
	PurchaseBook(ctx context.Context, userId uuid.UUID, req *dto.PurchaseBookRequest) (*dto.CheckoutResponse, error)
	PurchaseChapter(ctx context.Context, userId uuid.UUID, req *dto.PurchaseChapterRequest) (*dto.CheckoutResponse, error)
	SubscribeToPlan(ctx context.Context, userId uuid.UUID, req *dto.SubscribeRequest) (*dto.CheckoutResponse, error)
}

type purchaseService struct {
	uowFactory     unitofwork.RepositoryFactory
	gateway        payment.Gateway
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
	expiryMinutes  int
	finishURL      string
}

func NewPurchaseService(
	uowFactory unitofwork.RepositoryFactory,
	gateway payment.Gateway,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	expiryMinutes int,
	finishURL string,
) IPurchaseService {
	return &purchaseService{
		uowFactory:     uowFactory,
		gateway:        gateway,
		eventPublisher: eventPublisher,
		log:            log,
		expiryMinutes:  expiryMinutes,
		finishURL:      finishURL,
	}
}

func (s *purchaseService) PurchaseBook(ctx context.Context, userId uuid.UUID, req *dto.PurchaseBookRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	book, err := uow.CatalogRepository().FindOneBook(ctx, specification.ByID{ID: req.BookId})
	if err != nil {
		return nil, err
	}
	if book == nil || book.Status != entity.BookStatusPublished {
		return nil, fmt.Errorf("%w: book %s", apperr.ErrNotFound, req.BookId)
	}

	item := entity.PurchasableBook(book.Id)
	owned, err := uow.PurchaseRepository().FindActive(ctx, userId, item, now)
	if err != nil {
		return nil, err
	}
	if owned != nil {
		return nil, apperr.ErrAlreadyOwned
	}

	return s.checkout(ctx, uow, userId, checkoutIntent{
		txnType: entity.TransactionTypeBookPurchase,
		item:    item,
		title:   book.Title,
		price:   book.EffectivePrice(),
	}, now)
}

func (s *purchaseService) PurchaseChapter(ctx context.Context, userId uuid.UUID, req *dto.PurchaseChapterRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	chapter, err := uow.CatalogRepository().FindOneChapter(ctx, specification.ByID{ID: req.ChapterId})
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, fmt.Errorf("%w: chapter %s", apperr.ErrNotFound, req.ChapterId)
	}
	if chapter.IsFree {
		return nil, apperr.Validation("chapter is free and cannot be purchased")
	}

	book, err := uow.CatalogRepository().FindOneBook(ctx, specification.ByID{ID: chapter.BookId})
	if err != nil {
		return nil, err
	}
	if book == nil || book.Status != entity.BookStatusPublished {
		return nil, fmt.Errorf("%w: book for chapter %s", apperr.ErrNotFound, req.ChapterId)
	}

	// Owning the whole book supersedes any per-chapter purchase.
	bookGrant, err := uow.PurchaseRepository().FindActive(ctx, userId, entity.PurchasableBook(book.Id), now)
	if err != nil {
		return nil, err
	}
	if bookGrant != nil {
		return nil, apperr.ErrAlreadyOwned
	}

	item := entity.PurchasableChapter(chapter.Id)
	owned, err := uow.PurchaseRepository().FindActive(ctx, userId, item, now)
	if err != nil {
		return nil, err
	}
	if owned != nil {
		return nil, apperr.ErrAlreadyOwned
	}

	return s.checkout(ctx, uow, userId, checkoutIntent{
		txnType: entity.TransactionTypeChapterPurchase,
		item:    item,
		title:   fmt.Sprintf("%s - Chapter %d: %s", book.Title, chapter.Number, chapter.Title),
		price:   chapter.Price,
	}, now)
}

func (s *purchaseService) SubscribeToPlan(ctx context.Context, userId uuid.UUID, req *dto.SubscribeRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, fmt.Errorf("%w: plan %s", apperr.ErrNotFound, req.PlanId)
	}

	active, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveSubscriptionsAt{Now: now},
	)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperr.ErrAlreadyActive
	}

	res, err := s.checkout(ctx, uow, userId, checkoutIntent{
		txnType: entity.TransactionTypeAuthorSubscription,
		item:    entity.PurchasablePlan(plan.Id),
		title:   fmt.Sprintf("Author Plan: %s", plan.Name),
		price:   plan.Price,
	}, now)
	if err != nil {
		return nil, err
	}

	// A resumed checkout already carries its pending subscription row.
	if !res.Resumed {
		txnId := res.TransactionId
		sub := &entity.AuthorSubscription{
			Id:            uuid.New(),
			UserId:        userId,
			PlanId:        plan.Id,
			TransactionId: &txnId,
			Status:        entity.SubscriptionStatusPending,
			StartsAt:      now,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := uow.SubscriptionRepository().CreateSubscription(ctx, sub); err != nil {
			return nil, err
		}
	}

	return res, nil
}

type checkoutIntent struct {
	txnType entity.TransactionType
	item    entity.Purchasable
	title   string
	price   int64
}

// checkout opens (or resumes) a pending transaction for the intent and
// hands back a Snap session.
func (s *purchaseService) checkout(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, intent checkoutIntent, now time.Time) (*dto.CheckoutResponse, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, userId)
	}

	// A live pending checkout for the same item is resumed, not duplicated.
	pending, err := uow.TransactionRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByStatus{Status: string(entity.TransactionStatusPending)},
		specification.ForItem{ItemType: string(intent.item.Type), ItemId: intent.item.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if pending != nil && pending.CanBePaid(now) && pending.SnapToken != nil {
		return &dto.CheckoutResponse{
			TransactionId:   pending.Id,
			Code:            pending.Code,
			TotalAmount:     pending.TotalAmount,
			AmountFormatted: txcode.FormatIDR(pending.TotalAmount),
			SnapToken:       *pending.SnapToken,
			SnapRedirectUrl: derefOrEmpty(pending.SnapRedirectURL),
			ExpiresAt:       pending.ExpiresAt,
			Resumed:         true,
		}, nil
	}

	code, err := s.generateCode(ctx, uow, now)
	if err != nil {
		return nil, err
	}

	txn := &entity.Transaction{
		Id:        uuid.New(),
		UserId:    userId,
		Code:      code,
		Type:      intent.txnType,
		Status:    entity.TransactionStatusPending,
		ExpiresAt: now.Add(time.Duration(s.expiryMinutes) * time.Minute),
		CreatedAt: now,
		UpdatedAt: now,
		Items: []*entity.TransactionItem{
			{
				Id:        uuid.New(),
				Item:      intent.item,
				Title:     intent.title,
				Price:     intent.price,
				Quantity:  1,
				CreatedAt: now,
			},
		},
	}
	txn.CalculateTotal()
	for _, it := range txn.Items {
		it.TransactionId = txn.Id
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.TransactionRepository().Create(ctx, txn); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// External call stays outside the DB transaction. If the gateway is
	// down the pending row survives and the client can retry checkout.
	session, err := s.gateway.CreateSession(ctx, &payment.SessionRequest{
		OrderId:       txn.Code,
		GrossAmount:   txn.TotalAmount,
		CustomerName:  user.FullName,
		CustomerEmail: user.Email,
		CustomerPhone: user.Phone,
		Items: []payment.SessionItem{
			{
				Id:    intent.item.Id.String(),
				Name:  intent.title,
				Price: intent.price,
				Qty:   1,
			},
		},
		ExpiryMinutes: s.expiryMinutes,
		FinishURL:     s.finishURL,
	})
	if err != nil {
		return nil, err
	}

	txn.SnapToken = &session.Token
	txn.SnapRedirectURL = &session.RedirectURL
	if err := uow.TransactionRepository().Update(ctx, txn); err != nil {
		s.log.Warn("purchase", "failed to persist snap session on transaction", map[string]interface{}{
			"code":  txn.Code,
			"error": err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.NewTransactionCreatedEvent(userId.String(), txn.Id.String(), txn.Code, txn.TotalAmount)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("purchase", "failed to publish transaction created event", map[string]interface{}{
				"code": txn.Code,
			})
		}
	}

	return &dto.CheckoutResponse{
		TransactionId:   txn.Id,
		Code:            txn.Code,
		TotalAmount:     txn.TotalAmount,
		AmountFormatted: txcode.FormatIDR(txn.TotalAmount),
		SnapToken:       session.Token,
		SnapRedirectUrl: session.RedirectURL,
		ExpiresAt:       txn.ExpiresAt,
	}, nil
}

// generateCode retries on the rare same-day collision of the random
// suffix.
func (s *purchaseService) generateCode(ctx context.Context, uow unitofwork.UnitOfWork, now time.Time) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code := txcode.Generate(now)
		exists, err := uow.TransactionRepository().CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique transaction code")
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
