package implementation

import (
	"context"
	"errors"

	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/mapper"
	"badger-buds-be/internal/model"
	"badger-buds-be/internal/repository/contract"
	"badger-buds-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatMapper
}

func NewCatRepository(db *gorm.DB) contract.CatRepository {
	return &CatRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatMapper(),
	}
}

func (r *CatRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert inserts the cat or overwrites every column of an existing row with the same id.
func (r *CatRepositoryImpl) Upsert(ctx context.Context, cat *entity.Cat) error {
	m := r.mapper.ToModel(cat)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"img_ids", "name", "gender", "breed", "age", "description", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*cat = *r.mapper.ToEntity(m)
	return nil
}

func (r *CatRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Cat, error) {
	var m model.Cat
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CatRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Cat, error) {
	var models []*model.Cat
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CatRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Cat{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
