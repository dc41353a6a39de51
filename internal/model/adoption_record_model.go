package model

import (
	"time"

	"github.com/google/uuid"
)

type AdoptionRecord struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId string    `gorm:"type:varchar(64);not null;index"`
	CatId     string    `gorm:"type:varchar(64);not null;index"`
	CatName   string    `gorm:"type:varchar(255);not null"`
	AdoptedAt time.Time `gorm:"default:now();not null;index"`
}

func (AdoptionRecord) TableName() string {
	return "adoption_records"
}
