package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveProgressRequest struct {
	ChapterId uuid.UUID `json:"chapter_id" validate:"required"`
	// Position is a 0..1 fraction of the chapter scrolled.
	Position float64 `json:"position" validate:"min=0,max=1"`
}

type ReadingProgressResponse struct {
	BookId    uuid.UUID `json:"book_id"`
	ChapterId uuid.UUID `json:"chapter_id"`
	Position  float64   `json:"position"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LibraryItemResponse struct {
	Item        BookSummaryResponse `json:"item"`
	OwnedScope  string              `json:"owned_scope"` // book or chapter
	PurchasedAt time.Time           `json:"purchased_at"`
}
