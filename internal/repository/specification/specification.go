package specification

import "gorm.io/gorm"

// Specification is a composable query fragment. Repositories apply
// every specification they receive, in order, onto the base query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
