package contract

import (
	"context"

	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/repository/specification"
)

type CatRepository interface {
	Upsert(ctx context.Context, cat *entity.Cat) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Cat, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Cat, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
