// FILE: internal/entity/review_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	BookId    uuid.UUID
	Rating    int // 1..5, validated before persistence
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
