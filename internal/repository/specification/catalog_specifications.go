package specification

import "gorm.io/gorm"

// TitleContains does a case-insensitive substring match on book titles.
type TitleContains struct {
	Needle string
}

func (s TitleContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", "%"+s.Needle+"%")
}
