package contract

import (
	"context"

	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/repository/specification"
)

type AdoptionRecordRepository interface {
	Create(ctx context.Context, record *entity.AdoptionRecord) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
