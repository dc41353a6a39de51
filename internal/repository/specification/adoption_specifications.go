package specification

import "gorm.io/gorm"

// BySessionID filters adoption records of one browser session
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByCatID filters adoption records of one cat
type ByCatID struct {
	CatID string
}

func (s ByCatID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("cat_id = ?", s.CatID)
}
