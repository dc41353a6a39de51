package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Cat struct {
	Id          string                      `gorm:"type:varchar(64);primaryKey"`
	ImgIds      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Gender      string                      `gorm:"type:varchar(32);not null"`
	Breed       string                      `gorm:"type:varchar(255);not null"`
	Age         int                         `gorm:"not null"`
	Description *string                     `gorm:"type:text"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt              `gorm:"index"`
}

func (Cat) TableName() string {
	return "cats"
}
