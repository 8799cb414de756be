package mapper

import (
	"bookverse-be/internal/entity"
	"bookverse-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) PlanToEntity(p *model.AuthorPlan) *entity.AuthorPlan {
	if p == nil {
		return nil
	}
	return &entity.AuthorPlan{
		Id:             p.Id,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Price:          p.Price,
		DurationDays:   p.DurationDays,
		MaxSubmissions: p.MaxSubmissions,
		IsActive:       p.IsActive,
		SortOrder:      p.SortOrder,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *SubscriptionMapper) PlanToModel(p *entity.AuthorPlan) *model.AuthorPlan {
	if p == nil {
		return nil
	}
	return &model.AuthorPlan{
		Id:             p.Id,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Price:          p.Price,
		DurationDays:   p.DurationDays,
		MaxSubmissions: p.MaxSubmissions,
		IsActive:       p.IsActive,
		SortOrder:      p.SortOrder,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToEntity(s *model.AuthorSubscription) *entity.AuthorSubscription {
	if s == nil {
		return nil
	}
	return &entity.AuthorSubscription{
		Id:              s.Id,
		UserId:          s.UserId,
		PlanId:          s.PlanId,
		TransactionId:   s.TransactionId,
		SubmissionsUsed: s.SubmissionsUsed,
		StartsAt:        s.StartsAt,
		ExpiresAt:       s.ExpiresAt,
		Status:          entity.SubscriptionStatus(s.Status),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.AuthorSubscription) *model.AuthorSubscription {
	if s == nil {
		return nil
	}
	return &model.AuthorSubscription{
		Id:              s.Id,
		UserId:          s.UserId,
		PlanId:          s.PlanId,
		TransactionId:   s.TransactionId,
		SubmissionsUsed: s.SubmissionsUsed,
		StartsAt:        s.StartsAt,
		ExpiresAt:       s.ExpiresAt,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
