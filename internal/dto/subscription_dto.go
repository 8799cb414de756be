package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlanResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Price          int64     `json:"price"`
	PriceFormatted string    `json:"price_formatted"`
	DurationDays   int       `json:"duration_days"`
	MaxSubmissions int       `json:"max_submissions"`
}

type SubscriptionStatusResponse struct {
	SubscriptionId  *uuid.UUID `json:"subscription_id,omitempty"`
	PlanName        string     `json:"plan_name"`
	Status          string     `json:"status"`
	IsActive        bool       `json:"is_active"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	SubmissionsUsed int        `json:"submissions_used"`
	MaxSubmissions  int        `json:"max_submissions"`
}

type SubscriptionValidationResponse struct {
	IsValid         bool       `json:"is_valid"`
	Status          string     `json:"status"`
	CanSubmit       bool       `json:"can_submit"`
	RenewalRequired bool       `json:"renewal_required"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	DaysRemaining   int        `json:"days_remaining"`
	PlanName        string     `json:"plan_name,omitempty"`
}

type SubmitManuscriptRequest struct {
	CategoryId uuid.UUID `json:"category_id" validate:"required"`
	Title      string    `json:"title" validate:"required,min=1,max=255"`
	Slug       string    `json:"slug" validate:"required,min=1,max=255"`
	Synopsis   string    `json:"synopsis"`
	Price      int64     `json:"price" validate:"min=0"`
}

type SubmitManuscriptResponse struct {
	BookId               uuid.UUID `json:"book_id"`
	Status               string    `json:"status"`
	SubmissionsUsed      int       `json:"submissions_used"`
	SubmissionsRemaining int       `json:"submissions_remaining"`
}
