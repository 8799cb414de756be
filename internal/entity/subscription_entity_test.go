package entity

import (
	"testing"
	"time"
)

func TestSubscriptionActiveAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name      string
		status    SubscriptionStatus
		startsAt  time.Time
		expiresAt *time.Time
		want      bool
	}{
		{"active within window", SubscriptionStatusActive, past, &future, true},
		{"active unlimited", SubscriptionStatusActive, past, nil, true},
		{"active expires exactly now", SubscriptionStatusActive, past, &now, true},
		{"active but expired", SubscriptionStatusActive, past, &past, false},
		{"active but not started", SubscriptionStatusActive, future, nil, false},
		{"pending never active", SubscriptionStatusPending, past, &future, false},
		{"cancelled never active", SubscriptionStatusCancelled, past, &future, false},
		{"expired status never active", SubscriptionStatusExpired, past, &future, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubscriptionActiveAt(tt.status, tt.startsAt, tt.expiresAt, now)
			if got != tt.want {
				t.Errorf("SubscriptionActiveAt() = %v, want %v", got, tt.want)
			}

			// Instance method must agree with the shared predicate.
			sub := &AuthorSubscription{Status: tt.status, StartsAt: tt.startsAt, ExpiresAt: tt.expiresAt}
			if sub.IsActiveAt(now) != got {
				t.Error("IsActiveAt() disagrees with SubscriptionActiveAt()")
			}
		})
	}
}

func TestCanSubmit(t *testing.T) {
	now := time.Now()
	plan := &AuthorPlan{MaxSubmissions: 3}

	sub := &AuthorSubscription{
		Status:          SubscriptionStatusActive,
		StartsAt:        now.Add(-time.Hour),
		SubmissionsUsed: 2,
	}
	if !sub.CanSubmit(plan, now) {
		t.Error("CanSubmit() under quota = false, want true")
	}

	sub.SubmissionsUsed = 3
	if sub.CanSubmit(plan, now) {
		t.Error("CanSubmit() at quota = true, want false")
	}

	sub.SubmissionsUsed = 0
	sub.Status = SubscriptionStatusCancelled
	if sub.CanSubmit(plan, now) {
		t.Error("CanSubmit() on cancelled subscription = true, want false")
	}
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		price    int64
		discount int
		want     int64
	}{
		{100000, 0, 100000},
		{100000, 25, 75000},
		{99999, 10, 90000}, // rounds down
		{100000, 100, 0},
		{100000, 150, 0},
		{100000, -5, 100000},
	}

	for _, tt := range tests {
		b := &Book{Price: tt.price, DiscountPercentage: tt.discount}
		if got := b.EffectivePrice(); got != tt.want {
			t.Errorf("EffectivePrice(%d, %d%%) = %d, want %d", tt.price, tt.discount, got, tt.want)
		}
	}
}
