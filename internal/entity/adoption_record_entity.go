package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdoptionRecord is the audit trail of one adoption.
type AdoptionRecord struct {
	Id        uuid.UUID
	SessionId string
	CatId     string
	CatName   string
	AdoptedAt time.Time
}
