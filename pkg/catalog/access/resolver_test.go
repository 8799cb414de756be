package access

import (
	"context"
	"testing"
	"time"

	"bookverse-be/internal/entity"

	"github.com/google/uuid"
)

// fakeEntitlements answers FindActive from an in-memory set of grants.
type fakeEntitlements struct {
	grants map[entity.Purchasable]*entity.UserPurchase
}

func (f *fakeEntitlements) FindActive(_ context.Context, _ uuid.UUID, item entity.Purchasable, now time.Time) (*entity.UserPurchase, error) {
	p, ok := f.grants[item]
	if !ok || !p.IsActiveAt(now) {
		return nil, nil
	}
	return p, nil
}

func grantFor(item entity.Purchasable, expiresAt *time.Time) *entity.UserPurchase {
	return &entity.UserPurchase{
		Id:          uuid.New(),
		Item:        item,
		PurchasedAt: time.Now(),
		ExpiresAt:   expiresAt,
	}
}

func TestCanAccessChapter(t *testing.T) {
	now := time.Now()
	bookId := uuid.New()
	chapterId := uuid.New()
	reader := &entity.User{Id: uuid.New(), Role: entity.UserRoleUser}
	admin := &entity.User{Id: uuid.New(), Role: entity.UserRoleAdmin}
	past := now.Add(-time.Hour)

	paidChapter := &entity.Chapter{Id: chapterId, BookId: bookId, IsFree: false}
	freeChapter := &entity.Chapter{Id: uuid.New(), BookId: bookId, IsFree: true}

	cases := []struct {
		name    string
		user    *entity.User
		chapter *entity.Chapter
		grants  map[entity.Purchasable]*entity.UserPurchase
		allowed bool
		reason  Reason
	}{
		{
			name:    "free chapter anonymous",
			user:    nil,
			chapter: freeChapter,
			allowed: true,
			reason:  ReasonFreeChapter,
		},
		{
			name:    "paid chapter anonymous",
			user:    nil,
			chapter: paidChapter,
			allowed: false,
			reason:  ReasonDenied,
		},
		{
			name:    "book grant unlocks chapter",
			user:    reader,
			chapter: paidChapter,
			grants: map[entity.Purchasable]*entity.UserPurchase{
				entity.PurchasableBook(bookId): grantFor(entity.PurchasableBook(bookId), nil),
			},
			allowed: true,
			reason:  ReasonBookOwned,
		},
		{
			name:    "chapter grant unlocks chapter",
			user:    reader,
			chapter: paidChapter,
			grants: map[entity.Purchasable]*entity.UserPurchase{
				entity.PurchasableChapter(chapterId): grantFor(entity.PurchasableChapter(chapterId), nil),
			},
			allowed: true,
			reason:  ReasonChapterOwned,
		},
		{
			name:    "book grant wins over chapter grant",
			user:    reader,
			chapter: paidChapter,
			grants: map[entity.Purchasable]*entity.UserPurchase{
				entity.PurchasableBook(bookId):       grantFor(entity.PurchasableBook(bookId), nil),
				entity.PurchasableChapter(chapterId): grantFor(entity.PurchasableChapter(chapterId), nil),
			},
			allowed: true,
			reason:  ReasonBookOwned,
		},
		{
			name:    "lapsed grant denies",
			user:    reader,
			chapter: paidChapter,
			grants: map[entity.Purchasable]*entity.UserPurchase{
				entity.PurchasableChapter(chapterId): grantFor(entity.PurchasableChapter(chapterId), &past),
			},
			allowed: false,
			reason:  ReasonDenied,
		},
		{
			name:    "admin without grants",
			user:    admin,
			chapter: paidChapter,
			allowed: true,
			reason:  ReasonAdmin,
		},
		{
			name:    "no grants denies",
			user:    reader,
			chapter: paidChapter,
			allowed: false,
			reason:  ReasonDenied,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grants := tc.grants
			if grants == nil {
				grants = map[entity.Purchasable]*entity.UserPurchase{}
			}
			r := NewResolver(&fakeEntitlements{grants: grants})

			d, err := r.CanAccessChapter(context.Background(), tc.user, tc.chapter, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Allowed != tc.allowed || d.Reason != tc.reason {
				t.Errorf("got (%v, %s), want (%v, %s)", d.Allowed, d.Reason, tc.allowed, tc.reason)
			}
		})
	}
}

func TestCanAccessBookIgnoresChapterGrants(t *testing.T) {
	now := time.Now()
	bookId := uuid.New()
	chapterId := uuid.New()
	reader := &entity.User{Id: uuid.New(), Role: entity.UserRoleUser}

	r := NewResolver(&fakeEntitlements{grants: map[entity.Purchasable]*entity.UserPurchase{
		entity.PurchasableChapter(chapterId): grantFor(entity.PurchasableChapter(chapterId), nil),
	}})

	d, err := r.CanAccessBook(context.Background(), reader, bookId, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Allowed {
		t.Error("chapter grants must not add up to book access")
	}
}
