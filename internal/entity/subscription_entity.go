// FILE: internal/entity/subscription_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// AuthorPlan is a self-publishing subscription plan.
type AuthorPlan struct {
	Id          uuid.UUID
	Name        string
	Slug        string
	Description string
	Price       int64
	// DurationDays 0 means the subscription never expires.
	DurationDays   int
	MaxSubmissions int
	IsActive       bool
	SortOrder      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type AuthorSubscription struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	PlanId          uuid.UUID
	TransactionId   *uuid.UUID
	SubmissionsUsed int
	StartsAt        time.Time
	// ExpiresAt nil means unlimited.
	ExpiresAt *time.Time
	Status    SubscriptionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubscriptionActiveAt is the single definition of "active". The query
// specification mirrors this exact predicate in SQL; keep the two in
// sync (see specification.ActiveSubscriptionsAt).
func SubscriptionActiveAt(status SubscriptionStatus, startsAt time.Time, expiresAt *time.Time, now time.Time) bool {
	if status != SubscriptionStatusActive {
		return false
	}
	if startsAt.After(now) {
		return false
	}
	return expiresAt == nil || !expiresAt.Before(now)
}

func (s *AuthorSubscription) IsActiveAt(now time.Time) bool {
	return SubscriptionActiveAt(s.Status, s.StartsAt, s.ExpiresAt, now)
}

// CanSubmit reports whether the author may submit a new manuscript
// under the given plan at the given instant.
func (s *AuthorSubscription) CanSubmit(plan *AuthorPlan, now time.Time) bool {
	return s.IsActiveAt(now) && s.SubmissionsUsed < plan.MaxSubmissions
}
