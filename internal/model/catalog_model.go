package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}

type Book struct {
	Id                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	AuthorId           *uuid.UUID `gorm:"type:uuid;index"`
	Title              string     `gorm:"type:varchar(255);not null"`
	Slug               string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	AuthorName         string     `gorm:"type:varchar(255);not null"`
	Synopsis           string     `gorm:"type:text"`
	CoverURL           *string    `gorm:"type:text"`
	Price              int64      `gorm:"not null;default:0"`
	DiscountPercentage int        `gorm:"not null;default:0"`
	Status             string     `gorm:"type:varchar(50);not null;default:'draft'"`
	CreatedAt          time.Time  `gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime"`
}

func (Book) TableName() string {
	return "books"
}

type Chapter struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Number    int       `gorm:"not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	IsFree    bool      `gorm:"default:false"`
	Price     int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Chapter) TableName() string {
	return "chapters"
}
