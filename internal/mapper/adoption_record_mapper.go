package mapper

import (
	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/model"
)

type AdoptionRecordMapper struct{}

func NewAdoptionRecordMapper() *AdoptionRecordMapper {
	return &AdoptionRecordMapper{}
}

func (m *AdoptionRecordMapper) ToEntity(r *model.AdoptionRecord) *entity.AdoptionRecord {
	if r == nil {
		return nil
	}
	return &entity.AdoptionRecord{
		Id:        r.Id,
		SessionId: r.SessionId,
		CatId:     r.CatId,
		CatName:   r.CatName,
		AdoptedAt: r.AdoptedAt,
	}
}

func (m *AdoptionRecordMapper) ToModel(r *entity.AdoptionRecord) *model.AdoptionRecord {
	if r == nil {
		return nil
	}
	return &model.AdoptionRecord{
		Id:        r.Id,
		SessionId: r.SessionId,
		CatId:     r.CatId,
		CatName:   r.CatName,
		AdoptedAt: r.AdoptedAt,
	}
}
