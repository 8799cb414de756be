package implementation

import (
	"context"
	"errors"

	"bookverse-be/internal/entity"
	"bookverse-be/internal/mapper"
	"bookverse-be/internal/model"
	"bookverse-be/internal/repository/contract"
	"bookverse-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CatalogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Category Implementation

func (r *CatalogRepositoryImpl) CreateCategory(ctx context.Context, category *entity.Category) error {
	m := r.mapper.CategoryToModel(category)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*category = *r.mapper.CategoryToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) UpdateCategory(ctx context.Context, category *entity.Category) error {
	m := r.mapper.CategoryToModel(category)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*category = *r.mapper.CategoryToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

func (r *CatalogRepositoryImpl) FindOneCategory(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	var m model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CategoryToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindAllCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var models []*model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Category, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CategoryToEntity(m)
	}
	return entities, nil
}

func (r *CatalogRepositoryImpl) CountBooksByCategory(ctx context.Context, categoryId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Book{}).
		Where("category_id = ? AND status = ?", categoryId, "published").
		Count(&count).Error
	return count, err
}

// Book Implementation

func (r *CatalogRepositoryImpl) CreateBook(ctx context.Context, book *entity.Book) error {
	m := r.mapper.BookToModel(book)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*book = *r.mapper.BookToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) UpdateBook(ctx context.Context, book *entity.Book) error {
	m := r.mapper.BookToModel(book)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*book = *r.mapper.BookToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) FindOneBook(ctx context.Context, specs ...specification.Specification) (*entity.Book, error) {
	var m model.Book
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BookToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindAllBooks(ctx context.Context, specs ...specification.Specification) ([]*entity.Book, error) {
	var models []*model.Book
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Book, len(models))
	for i, m := range models {
		entities[i] = r.mapper.BookToEntity(m)
	}
	return entities, nil
}

// Chapter Implementation

func (r *CatalogRepositoryImpl) CreateChapter(ctx context.Context, chapter *entity.Chapter) error {
	m := r.mapper.ChapterToModel(chapter)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chapter = *r.mapper.ChapterToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) UpdateChapter(ctx context.Context, chapter *entity.Chapter) error {
	m := r.mapper.ChapterToModel(chapter)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*chapter = *r.mapper.ChapterToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) FindOneChapter(ctx context.Context, specs ...specification.Specification) (*entity.Chapter, error) {
	var m model.Chapter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChapterToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindAllChapters(ctx context.Context, specs ...specification.Specification) ([]*entity.Chapter, error) {
	var models []*model.Chapter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Chapter, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ChapterToEntity(m)
	}
	return entities, nil
}
