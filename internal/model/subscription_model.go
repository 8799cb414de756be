package model

import (
	"time"

	"github.com/google/uuid"
)

type AuthorPlan struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Slug           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description    string    `gorm:"type:text"`
	Price          int64     `gorm:"not null"`
	DurationDays   int       `gorm:"not null;default:0"` // 0 = unlimited
	MaxSubmissions int       `gorm:"not null;default:1"`
	IsActive       bool      `gorm:"default:true"`
	SortOrder      int       `gorm:"default:0"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (AuthorPlan) TableName() string {
	return "author_plans"
}

type AuthorSubscription struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	TransactionId   *uuid.UUID `gorm:"type:uuid"`
	SubmissionsUsed int        `gorm:"not null;default:0"`
	StartsAt        time.Time  `gorm:"not null"`
	ExpiresAt       *time.Time
	Status          string    `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (AuthorSubscription) TableName() string {
	return "author_subscriptions"
}
