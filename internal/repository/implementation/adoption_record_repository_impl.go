package implementation

import (
	"context"

	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/mapper"
	"badger-buds-be/internal/model"
	"badger-buds-be/internal/repository/contract"
	"badger-buds-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AdoptionRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdoptionRecordMapper
}

func NewAdoptionRecordRepository(db *gorm.DB) contract.AdoptionRecordRepository {
	return &AdoptionRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdoptionRecordMapper(),
	}
}

func (r *AdoptionRecordRepositoryImpl) Create(ctx context.Context, record *entity.AdoptionRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdoptionRecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.AdoptionRecord{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
