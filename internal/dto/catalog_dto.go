package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Categories ---

type CategoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	BookCount int64     `json:"book_count"`
}

type UpsertCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Slug string `json:"slug" validate:"required,min=2,max=100"`
}

// --- Books ---

type BookSummaryResponse struct {
	Id                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Slug               string    `json:"slug"`
	AuthorName         string    `json:"author_name"`
	CoverUrl           *string   `json:"cover_url"`
	Price              int64     `json:"price"`
	DiscountPercentage int       `json:"discount_percentage"`
	EffectivePrice     int64     `json:"effective_price"`
	PriceFormatted     string    `json:"price_formatted"`
}

type BookDetailResponse struct {
	BookSummaryResponse
	Synopsis      string                   `json:"synopsis"`
	CategoryId    uuid.UUID                `json:"category_id"`
	Status        string                   `json:"status"`
	AverageRating float64                  `json:"average_rating"`
	ReviewCount   int                      `json:"review_count"`
	Chapters      []ChapterSummaryResponse `json:"chapters"`
}

type ChapterSummaryResponse struct {
	Id       uuid.UUID `json:"id"`
	Number   int       `json:"number"`
	Title    string    `json:"title"`
	IsFree   bool      `json:"is_free"`
	Price    int64     `json:"price"`
	Unlocked bool      `json:"unlocked"`
}

type ChapterContentResponse struct {
	Id           uuid.UUID `json:"id"`
	BookId       uuid.UUID `json:"book_id"`
	Number       int       `json:"number"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	AccessReason string    `json:"access_reason"`
}

type ListBooksRequest struct {
	CategorySlug string `query:"category"`
	Search       string `query:"search"`
	Page         int    `query:"page"`
	PerPage      int    `query:"per_page"`
}

type UpsertBookRequest struct {
	CategoryId         uuid.UUID `json:"category_id" validate:"required"`
	Title              string    `json:"title" validate:"required,min=1,max=255"`
	Slug               string    `json:"slug" validate:"required,min=1,max=255"`
	AuthorName         string    `json:"author_name" validate:"required"`
	Synopsis           string    `json:"synopsis"`
	CoverUrl           *string   `json:"cover_url"`
	Price              int64     `json:"price" validate:"min=0"`
	DiscountPercentage int       `json:"discount_percentage" validate:"min=0,max=100"`
	Status             string    `json:"status" validate:"required,oneof=draft published archived"`
}

type UpsertChapterRequest struct {
	Number  int    `json:"number" validate:"required,min=1"`
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Content string `json:"content"`
	IsFree  bool   `json:"is_free"`
	Price   int64  `json:"price" validate:"min=0"`
}

// --- Reviews ---

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type ReviewResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
