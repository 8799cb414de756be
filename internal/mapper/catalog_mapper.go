package mapper

import (
	"bookverse-be/internal/entity"
	"bookverse-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) CategoryToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		Id:        c.Id,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CatalogMapper) CategoryToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		Id:        c.Id,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CatalogMapper) BookToEntity(b *model.Book) *entity.Book {
	if b == nil {
		return nil
	}
	return &entity.Book{
		Id:                 b.Id,
		CategoryId:         b.CategoryId,
		AuthorId:           b.AuthorId,
		Title:              b.Title,
		Slug:               b.Slug,
		AuthorName:         b.AuthorName,
		Synopsis:           b.Synopsis,
		CoverURL:           b.CoverURL,
		Price:              b.Price,
		DiscountPercentage: b.DiscountPercentage,
		Status:             entity.BookStatus(b.Status),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (m *CatalogMapper) BookToModel(b *entity.Book) *model.Book {
	if b == nil {
		return nil
	}
	return &model.Book{
		Id:                 b.Id,
		CategoryId:         b.CategoryId,
		AuthorId:           b.AuthorId,
		Title:              b.Title,
		Slug:               b.Slug,
		AuthorName:         b.AuthorName,
		Synopsis:           b.Synopsis,
		CoverURL:           b.CoverURL,
		Price:              b.Price,
		DiscountPercentage: b.DiscountPercentage,
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (m *CatalogMapper) ChapterToEntity(c *model.Chapter) *entity.Chapter {
	if c == nil {
		return nil
	}
	return &entity.Chapter{
		Id:        c.Id,
		BookId:    c.BookId,
		Number:    c.Number,
		Title:     c.Title,
		Content:   c.Content,
		IsFree:    c.IsFree,
		Price:     c.Price,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CatalogMapper) ChapterToModel(c *entity.Chapter) *model.Chapter {
	if c == nil {
		return nil
	}
	return &model.Chapter{
		Id:        c.Id,
		BookId:    c.BookId,
		Number:    c.Number,
		Title:     c.Title,
		Content:   c.Content,
		IsFree:    c.IsFree,
		Price:     c.Price,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
