// FILE: internal/entity/catalog_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookStatus string

const (
	BookStatusDraft     BookStatus = "draft"
	BookStatusPublished BookStatus = "published"
	BookStatusArchived  BookStatus = "archived"
)

type Category struct {
	Id        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Book struct {
	Id          uuid.UUID
	CategoryId  uuid.UUID
	AuthorId    *uuid.UUID // set when the book came in through a subscribed author
	Title       string
	Slug        string
	AuthorName  string
	Synopsis    string
	CoverURL    *string
	// Price in minor units. DiscountPercentage 0..100 applies at purchase time.
	Price              int64
	DiscountPercentage int
	Status             BookStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EffectivePrice applies the book's own discount, rounding down to a
// whole minor unit. The result is what gets snapshotted onto the
// transaction item.
func (b *Book) EffectivePrice() int64 {
	if b.DiscountPercentage <= 0 {
		return b.Price
	}
	if b.DiscountPercentage >= 100 {
		return 0
	}
	return b.Price - b.Price*int64(b.DiscountPercentage)/100
}

type Chapter struct {
	Id        uuid.UUID
	BookId    uuid.UUID
	Number    int
	Title     string
	Content   string
	IsFree    bool
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
