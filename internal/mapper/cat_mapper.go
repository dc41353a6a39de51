package mapper

import (
	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/model"

	"gorm.io/datatypes"
)

type CatMapper struct{}

func NewCatMapper() *CatMapper {
	return &CatMapper{}
}

func (m *CatMapper) ToEntity(c *model.Cat) *entity.Cat {
	if c == nil {
		return nil
	}

	imgIds := make([]string, len(c.ImgIds))
	copy(imgIds, c.ImgIds)

	cat := &entity.Cat{
		Id:          c.Id,
		ImgIds:      imgIds,
		Name:        c.Name,
		Gender:      c.Gender,
		Breed:       c.Breed,
		Age:         c.Age,
		Description: c.Description,
	}
	cat.Normalize()
	return cat
}

func (m *CatMapper) ToModel(c *entity.Cat) *model.Cat {
	if c == nil {
		return nil
	}

	imgIds := datatypes.JSONSlice[string]{}
	imgIds = append(imgIds, c.ImgIds...)

	return &model.Cat{
		Id:          c.Id,
		ImgIds:      imgIds,
		Name:        c.Name,
		Gender:      c.Gender,
		Breed:       c.Breed,
		Age:         c.Age,
		Description: c.Description,
	}
}

func (m *CatMapper) ToEntities(cats []*model.Cat) []*entity.Cat {
	entities := make([]*entity.Cat, len(cats))
	for i, c := range cats {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
