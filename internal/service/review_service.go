// FILE: internal/service/review_service.go
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

	"github.com/google/uuid"
)

type IReviewService interface {
	CreateOrUpdate(ctx context.Context, userId, bookId uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListForBook(ctx context.Context, bookId uuid.UUID) ([]*dto.ReviewResponse, error)
}

type reviewService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReviewService(uowFactory unitofwork.RepositoryFactory) IReviewService {
	return &reviewService{uowFactory: uowFactory}
}

// CreateOrUpdate writes the user's review of a book. One review per
// (user, book); a second submission replaces the first.
func (s *reviewService) CreateOrUpdate(ctx context.Context, userId, bookId uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	book, err := uow.CatalogRepository().FindOneBook(ctx, specification.ByID{ID: bookId})
	if err != nil {
		return nil, err
	}
	if book == nil || book.Status != entity.BookStatusPublished {
		return nil, fmt.Errorf("%w: book %s", apperr.ErrNotFound, bookId)
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}

	review, err := uow.ReviewRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("book_id", bookId),
	)
	if err != nil {
		return nil, err
	}

	if review == nil {
		review = &entity.Review{
			Id:        uuid.New(),
			UserId:    userId,
			BookId:    bookId,
			Rating:    req.Rating,
			Comment:   req.Comment,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uow.ReviewRepository().Create(ctx, review); err != nil {
			return nil, err
		}
	} else {
		review.Rating = req.Rating
		review.Comment = req.Comment
		review.UpdatedAt = now
		if err := uow.ReviewRepository().Update(ctx, review); err != nil {
			return nil, err
		}
	}

	return &dto.ReviewResponse{
		Id:        review.Id,
		UserId:    review.UserId,
		UserName:  user.FullName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}, nil
}

func (s *reviewService) ListForBook(ctx context.Context, bookId uuid.UUID) ([]*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Newest-first ordering comes from the repository itself.
	reviews, err := uow.ReviewRepository().FindAll(ctx,
		specification.Filter("book_id", bookId),
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		name := ""
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: r.UserId})
		if err == nil && user != nil {
			name = user.FullName
		}
		result = append(result, &dto.ReviewResponse{
			Id:        r.Id,
			UserId:    r.UserId,
			UserName:  name,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}
	return result, nil
}
