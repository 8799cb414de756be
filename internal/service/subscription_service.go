// FILE: internal/service/subscription_service.go
package service

import (
	"context"
	"time"

	"bookverse-be/internal/dto"
	"bookverse-be/internal/entity"
	"bookverse-be/internal/pkg/apperr"
	"bookverse-be/internal/repository/specification"
	"bookverse-be/internal/repository/unitofwork"

	"bookverse-be/pkg/txcode"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	GetPlans(ctx context.Context) ([]*dto.PlanResponse, error)
	GetStatus(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error)
	Validate(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionValidationResponse, error)
	SubmitManuscript(ctx context.Context, userId uuid.UUID, req *dto.SubmitManuscriptRequest) (*dto.SubmitManuscriptResponse, error)
}

type subscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory) ISubscriptionService {
	return &subscriptionService{uowFactory: uowFactory}
}

func (s *subscriptionService) GetPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.SubscriptionRepository().FindAllPlans(ctx,
		specification.Filter("is_active", true),
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		res = append(res, &dto.PlanResponse{
			Id:             p.Id,
			Name:           p.Name,
			Slug:           p.Slug,
			Description:    p.Description,
			Price:          p.Price,
			PriceFormatted: txcode.FormatIDR(p.Price),
			DurationDays:   p.DurationDays,
			MaxSubmissions: p.MaxSubmissions,
		})
	}
	return res, nil
}

func (s *subscriptionService) GetStatus(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveSubscriptionsAt{Now: now},
	)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return &dto.SubscriptionStatusResponse{
			PlanName: "None",
			Status:   "inactive",
			IsActive: false,
		}, nil
	}

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperr.ErrNotFound
	}

	subId := sub.Id
	startsAt := sub.StartsAt
	return &dto.SubscriptionStatusResponse{
		SubscriptionId:  &subId,
		PlanName:        plan.Name,
		Status:          string(sub.Status),
		IsActive:        true,
		StartsAt:        &startsAt,
		ExpiresAt:       sub.ExpiresAt,
		SubmissionsUsed: sub.SubmissionsUsed,
		MaxSubmissions:  plan.MaxSubmissions,
	}, nil
}

// Validate is the lazy-evaluation endpoint: there is no cron flipping
// subscriptions to expired, instead activity is computed at read time.
func (s *subscriptionService) Validate(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionValidationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	subs, err := uow.SubscriptionRepository().FindAllSubscriptions(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return &dto.SubscriptionValidationResponse{
			IsValid:         false,
			Status:          "none",
			RenewalRequired: false,
		}, nil
	}

	var active *entity.AuthorSubscription
	for _, sub := range subs {
		if sub.IsActiveAt(now) {
			active = sub
			break
		}
	}

	if active == nil {
		return &dto.SubscriptionValidationResponse{
			IsValid:         false,
			Status:          "expired",
			RenewalRequired: true,
		}, nil
	}

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: active.PlanId})
	if err != nil {
		return nil, err
	}

	daysRemaining := 0
	if active.ExpiresAt != nil {
		daysRemaining = int(active.ExpiresAt.Sub(now).Hours() / 24)
		if daysRemaining < 0 {
			daysRemaining = 0
		}
	}

	planName := ""
	canSubmit := false
	if plan != nil {
		planName = plan.Name
		canSubmit = active.CanSubmit(plan, now)
	}

	return &dto.SubscriptionValidationResponse{
		IsValid:         true,
		Status:          string(active.Status),
		CanSubmit:       canSubmit,
		RenewalRequired: false,
		ExpiresAt:       active.ExpiresAt,
		DaysRemaining:   daysRemaining,
		PlanName:        planName,
	}, nil
}

// SubmitManuscript creates a draft book under the author's active
// subscription and burns one submission slot. Slot accounting and book
// creation commit together.
func (s *subscriptionService) SubmitManuscript(ctx context.Context, userId uuid.UUID, req *dto.SubmitManuscriptRequest) (*dto.SubmitManuscriptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveSubscriptionsAt{Now: now},
		specification.LockForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperr.Validation("no active author subscription")
	}

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperr.ErrNotFound
	}

	if !sub.CanSubmit(plan, now) {
		return nil, apperr.Validation("submission limit reached for current plan")
	}

	existing, err := uow.CatalogRepository().FindOneBook(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("book slug already taken")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}

	authorId := userId
	book := &entity.Book{
		Id:         uuid.New(),
		CategoryId: req.CategoryId,
		AuthorId:   &authorId,
		Title:      req.Title,
		Slug:       req.Slug,
		AuthorName: user.FullName,
		Synopsis:   req.Synopsis,
		Price:      req.Price,
		Status:     entity.BookStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uow.CatalogRepository().CreateBook(ctx, book); err != nil {
		return nil, err
	}

	sub.SubmissionsUsed++
	sub.UpdatedAt = now
	if err := uow.SubscriptionRepository().UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.SubmitManuscriptResponse{
		BookId:               book.Id,
		Status:               string(book.Status),
		SubmissionsUsed:      sub.SubmissionsUsed,
		SubmissionsRemaining: plan.MaxSubmissions - sub.SubmissionsUsed,
	}, nil
}
