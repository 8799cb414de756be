package contract

import (
	"context"

	"bookverse-be/internal/entity"
	"bookverse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	// Categories
	CreateCategory(ctx context.Context, category *entity.Category) error
	UpdateCategory(ctx context.Context, category *entity.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	FindOneCategory(ctx context.Context, specs ...specification.Specification) (*entity.Category, error)
	FindAllCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)
	CountBooksByCategory(ctx context.Context, categoryId uuid.UUID) (int64, error)

	// Books
	CreateBook(ctx context.Context, book *entity.Book) error
	UpdateBook(ctx context.Context, book *entity.Book) error
	FindOneBook(ctx context.Context, specs ...specification.Specification) (*entity.Book, error)
	FindAllBooks(ctx context.Context, specs ...specification.Specification) ([]*entity.Book, error)

	// Chapters
	CreateChapter(ctx context.Context, chapter *entity.Chapter) error
	UpdateChapter(ctx context.Context, chapter *entity.Chapter) error
	FindOneChapter(ctx context.Context, specs ...specification.Specification) (*entity.Chapter, error)
	FindAllChapters(ctx context.Context, specs ...specification.Specification) ([]*entity.Chapter, error)
}
