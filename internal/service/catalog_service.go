// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"bookverse-be/internal/dto"
	"bookverse-be/internal/entity"
	"bookverse-be/internal/pkg/apperr"
	"bookverse-be/internal/repository/specification"
	"bookverse-be/internal/repository/unitofwork"

	"bookverse-be/pkg/catalog/access"
	"bookverse-be/pkg/catalog/counts"
	"bookverse-be/pkg/txcode"

	"github.com/google/uuid"
)

type ICatalogService interface {
	ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
	ListBooks(ctx context.Context, req *dto.ListBooksRequest) ([]*dto.BookSummaryResponse, error)
	GetBookDetail(ctx context.Context, slug string, userId *uuid.UUID) (*dto.BookDetailResponse, error)

	// Admin writes. Each one invalidates the category-count cache.
	CreateCategory(ctx context.Context, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateBook(ctx context.Context, req *dto.UpsertBookRequest) (*dto.BookSummaryResponse, error)
	UpdateBook(ctx context.Context, id uuid.UUID, req *dto.UpsertBookRequest) (*dto.BookSummaryResponse, error)
	CreateChapter(ctx context.Context, bookId uuid.UUID, req *dto.UpsertChapterRequest) (*dto.ChapterSummaryResponse, error)
	UpdateChapter(ctx context.Context, chapterId uuid.UUID, req *dto.UpsertChapterRequest) (*dto.ChapterSummaryResponse, error)
}

type catalogService struct {
	uowFactory  unitofwork.RepositoryFactory
	countsStore counts.Store
	resolver    *access.Resolver
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, countsStore counts.Store, resolver *access.Resolver) ICatalogService {
	return &catalogService{
		uowFactory:  uowFactory,
		countsStore: countsStore,
		resolver:    resolver,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CatalogRepository().FindAllCategories(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		count, ok := s.countsStore.Get(cat.Slug)
		if !ok {
			count, err = uow.CatalogRepository().CountBooksByCategory(ctx, cat.Id)
			if err != nil {
				return nil, err
			}
			s.countsStore.Set(cat.Slug, count)
		}
		result = append(result, &dto.CategoryResponse{
			Id:        cat.Id,
			Name:      cat.Name,
			Slug:      cat.Slug,
			BookCount: count,
		})
	}
	return result, nil
}

func (s *catalogService) ListBooks(ctx context.Context, req *dto.ListBooksRequest) ([]*dto.BookSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.Filter("status", string(entity.BookStatusPublished)),
		specification.OrderBy{Field: "created_at", Desc: true},
	}

	if req.CategorySlug != "" {
		category, err := uow.CatalogRepository().FindOneCategory(ctx, specification.BySlug{Slug: req.CategorySlug})
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: category %s", apperr.ErrNotFound, req.CategorySlug)
		}
		specs = append(specs, specification.Filter("category_id", category.Id))
	}
	if req.Search != "" {
		specs = append(specs, specification.TitleContains{Needle: req.Search})
	}

	specs = append(specs, pageSpec(req.Page, req.PerPage))

	books, err := uow.CatalogRepository().FindAllBooks(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.BookSummaryResponse, 0, len(books))
	for _, book := range books {
		result = append(result, toBookSummary(book))
	}
	return result, nil
}

func (s *catalogService) GetBookDetail(ctx context.Context, slug string, userId *uuid.UUID) (*dto.BookDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	book, err := uow.CatalogRepository().FindOneBook(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if book == nil || book.Status != entity.BookStatusPublished {
		return nil, fmt.Errorf("%w: book %s", apperr.ErrNotFound, slug)
	}

	var user *entity.User
	if userId != nil {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
		if err != nil {
			return nil, err
		}
	}

	chapters, err := uow.CatalogRepository().FindAllChapters(ctx,
		specification.Filter("book_id", book.Id),
		specification.OrderBy{Field: "number"},
	)
	if err != nil {
		return nil, err
	}

	chapterResponses := make([]dto.ChapterSummaryResponse, 0, len(chapters))
	for _, ch := range chapters {
		decision, err := s.resolver.CanAccessChapter(ctx, user, ch, now)
		if err != nil {
			return nil, err
		}
		chapterResponses = append(chapterResponses, dto.ChapterSummaryResponse{
			Id:       ch.Id,
			Number:   ch.Number,
			Title:    ch.Title,
			IsFree:   ch.IsFree,
			Price:    ch.Price,
			Unlocked: decision.Allowed,
		})
	}

	reviews, err := uow.ReviewRepository().FindAll(ctx, specification.Filter("book_id", book.Id))
	if err != nil {
		return nil, err
	}
	var ratingSum int
	for _, r := range reviews {
		ratingSum += r.Rating
	}
	var avgRating float64
	if len(reviews) > 0 {
		avgRating = float64(ratingSum) / float64(len(reviews))
	}

	return &dto.BookDetailResponse{
		BookSummaryResponse: *toBookSummary(book),
		Synopsis:            book.Synopsis,
		CategoryId:          book.CategoryId,
		Status:              string(book.Status),
		AverageRating:       avgRating,
		ReviewCount:         len(reviews),
		Chapters:            chapterResponses,
	}, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CatalogRepository().FindOneCategory(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("category slug already taken")
	}

	category := &entity.Category{
		Id:        uuid.New(),
		Name:      req.Name,
		Slug:      req.Slug,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.CatalogRepository().CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.countsStore.InvalidateAll()
	return &dto.CategoryResponse{Id: category.Id, Name: category.Name, Slug: category.Slug}, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CatalogRepository().FindOneCategory(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.ErrNotFound
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.UpdatedAt = time.Now()
	if err := uow.CatalogRepository().UpdateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.countsStore.InvalidateAll()
	return &dto.CategoryResponse{Id: category.Id, Name: category.Name, Slug: category.Slug}, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.CatalogRepository().CountBooksByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Validation("category still has books")
	}

	if err := uow.CatalogRepository().DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.countsStore.InvalidateAll()
	return nil
}

func (s *catalogService) CreateBook(ctx context.Context, req *dto.UpsertBookRequest) (*dto.BookSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CatalogRepository().FindOneBook(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("book slug already taken")
	}

	book := &entity.Book{
		Id:                 uuid.New(),
		CategoryId:         req.CategoryId,
		Title:              req.Title,
		Slug:               req.Slug,
		AuthorName:         req.AuthorName,
		Synopsis:           req.Synopsis,
		CoverURL:           req.CoverUrl,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Status:             entity.BookStatus(req.Status),
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	if err := uow.CatalogRepository().CreateBook(ctx, book); err != nil {
		return nil, err
	}

	s.countsStore.InvalidateAll()
	return toBookSummary(book), nil
}

func (s *catalogService) UpdateBook(ctx context.Context, id uuid.UUID, req *dto.UpsertBookRequest) (*dto.BookSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := uow.CatalogRepository().FindOneBook(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.ErrNotFound
	}

	book.CategoryId = req.CategoryId
	book.Title = req.Title
	book.Slug = req.Slug
	book.AuthorName = req.AuthorName
	book.Synopsis = req.Synopsis
	book.CoverURL = req.CoverUrl
	book.Price = req.Price
	book.DiscountPercentage = req.DiscountPercentage
	book.Status = entity.BookStatus(req.Status)
	book.UpdatedAt = time.Now()
	if err := uow.CatalogRepository().UpdateBook(ctx, book); err != nil {
		return nil, err
	}

	s.countsStore.InvalidateAll()
	return toBookSummary(book), nil
}

func (s *catalogService) CreateChapter(ctx context.Context, bookId uuid.UUID, req *dto.UpsertChapterRequest) (*dto.ChapterSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := uow.CatalogRepository().FindOneBook(ctx, specification.ByID{ID: bookId})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("%w: book %s", apperr.ErrNotFound, bookId)
	}

	chapter := &entity.Chapter{
		Id:        uuid.New(),
		BookId:    bookId,
		Number:    req.Number,
		Title:     req.Title,
		Content:   req.Content,
		IsFree:    req.IsFree,
		Price:     req.Price,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.CatalogRepository().CreateChapter(ctx, chapter); err != nil {
		return nil, err
	}

	return toChapterSummary(chapter), nil
}

func (s *catalogService) UpdateChapter(ctx context.Context, chapterId uuid.UUID, req *dto.UpsertChapterRequest) (*dto.ChapterSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chapter, err := uow.CatalogRepository().FindOneChapter(ctx, specification.ByID{ID: chapterId})
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, apperr.ErrNotFound
	}

	chapter.Number = req.Number
	chapter.Title = req.Title
	chapter.Content = req.Content
	chapter.IsFree = req.IsFree
	chapter.Price = req.Price
	chapter.UpdatedAt = time.Now()
	if err := uow.CatalogRepository().UpdateChapter(ctx, chapter); err != nil {
		return nil, err
	}

	return toChapterSummary(chapter), nil
}

// pageSpec clamps the requested page and size, then converts them to
// the limit/offset form the repository expects.
func pageSpec(page, perPage int) specification.Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage}
}

func toBookSummary(book *entity.Book) *dto.BookSummaryResponse {
	effective := book.EffectivePrice()
	return &dto.BookSummaryResponse{
		Id:                 book.Id,
		Title:              book.Title,
		Slug:               book.Slug,
		AuthorName:         book.AuthorName,
		CoverUrl:           book.CoverURL,
		Price:              book.Price,
		DiscountPercentage: book.DiscountPercentage,
		EffectivePrice:     effective,
		PriceFormatted:     txcode.FormatIDR(effective),
	}
}

func toChapterSummary(chapter *entity.Chapter) *dto.ChapterSummaryResponse {
	return &dto.ChapterSummaryResponse{
		Id:     chapter.Id,
		Number: chapter.Number,
		Title:  chapter.Title,
		IsFree: chapter.IsFree,
		Price:  chapter.Price,
	}
}
