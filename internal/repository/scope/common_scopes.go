// Package scope holds reusable gorm scopes for orderings the
// repositories apply themselves rather than taking from callers.
package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
