// FILE: internal/service/reader_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookverse-be/internal/dto"
	"bookverse-be/internal/entity"
	"bookverse-be/internal/pkg/apperr"
	"bookverse-be/internal/repository/specification"
	"bookverse-be/internal/repository/unitofwork"

	"bookverse-be/pkg/catalog/access"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type IReaderService interface {
	ReadChapter(ctx context.Context, userId *uuid.UUID, chapterId uuid.UUID) (*dto.ChapterContentResponse, error)
	SaveProgress(ctx context.Context, userId, bookId uuid.UUID, req *dto.SaveProgressRequest) error
	GetProgress(ctx context.Context, userId, bookId uuid.UUID) (*dto.ReadingProgressResponse, error)
	Library(ctx context.Context, userId uuid.UUID) ([]*dto.LibraryItemResponse, error)
}

type readerService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   *access.Resolver
	rdb        *redis.Client
}

func NewReaderService(uowFactory unitofwork.RepositoryFactory, resolver *access.Resolver, rdb *redis.Client) IReaderService {
	return &readerService{
		uowFactory: uowFactory,
		resolver:   resolver,
		rdb:        rdb,
	}
}

func (s *readerService) ReadChapter(ctx context.Context, userId *uuid.UUID, chapterId uuid.UUID) (*dto.ChapterContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	chapter, err := uow.CatalogRepository().FindOneChapter(ctx, specification.ByID{ID: chapterId})
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, fmt.Errorf("%w: chapter %s", apperr.ErrNotFound, chapterId)
	}

	var user *entity.User
	if userId != nil {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
		if err != nil {
			return nil, err
		}
	}

	decision, err := s.resolver.CanAccessChapter(ctx, user, chapter, now)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, fmt.Errorf("%w: chapter %s", apperr.ErrPaymentRequired, chapterId)
	}

	return &dto.ChapterContentResponse{
		Id:           chapter.Id,
		BookId:       chapter.BookId,
		Number:       chapter.Number,
		Title:        chapter.Title,
		Content:      chapter.Content,
		AccessReason: string(decision.Reason),
	}, nil
}

type progressRecord struct {
	ChapterId uuid.UUID `json:"chapter_id"`
	Position  float64   `json:"position"`
	UpdatedAt time.Time `json:"updated_at"`
}

func progressKey(userId, bookId uuid.UUID) string {
	return fmt.Sprintf("reading:%s:%s", userId, bookId)
}

func (s *readerService) SaveProgress(ctx context.Context, userId, bookId uuid.UUID, req *dto.SaveProgressRequest) error {
	record := progressRecord{
		ChapterId: req.ChapterId,
		Position:  req.Position,
		UpdatedAt: time.Now(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, progressKey(userId, bookId), data, 0).Err()
}

func (s *readerService) GetProgress(ctx context.Context, userId, bookId uuid.UUID) (*dto.ReadingProgressResponse, error) {
	data, err := s.rdb.Get(ctx, progressKey(userId, bookId)).Bytes()
	if err == redis.Nil {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var record progressRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}

	return &dto.ReadingProgressResponse{
		BookId:    bookId,
		ChapterId: record.ChapterId,
		Position:  record.Position,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

// Library lists everything the user can open: book grants and, for
// chapter grants, the parent book.
func (s *readerService) Library(ctx context.Context, userId uuid.UUID) ([]*dto.LibraryItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	purchases, err := uow.PurchaseRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActivePurchasesAt{Now: now},
		specification.OrderBy{Field: "purchased_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LibraryItemResponse, 0, len(purchases))
	seenBooks := map[uuid.UUID]bool{}

	for _, p := range purchases {
		var book *entity.Book
		scope := string(p.Item.Type)

		switch p.Item.Type {
		case entity.PurchasableTypeBook:
			book, err = uow.CatalogRepository().FindOneBook(ctx, specification.ByID{ID: p.Item.Id})
		case entity.PurchasableTypeChapter:
			var chapter *entity.Chapter
			chapter, err = uow.CatalogRepository().FindOneChapter(ctx, specification.ByID{ID: p.Item.Id})
			if err == nil && chapter != nil {
				book, err = uow.CatalogRepository().FindOneBook(ctx, specification.ByID{ID: chapter.BookId})
			}
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		if book == nil {
			continue
		}

		// A book-level grant hides the individual chapter rows of the
		// same book.
		if seenBooks[book.Id] && scope == string(entity.PurchasableTypeChapter) {
			continue
		}
		if scope == string(entity.PurchasableTypeBook) {
			seenBooks[book.Id] = true
		}

		result = append(result, &dto.LibraryItemResponse{
			Item:        *toBookSummary(book),
			OwnedScope:  scope,
			PurchasedAt: p.PurchasedAt,
		})
	}

	return result, nil
}
