package mapper

import (
	"fmt"

	"badger-buds-be/internal/dto"
	"badger-buds-be/internal/entity"
)

// CatResponseMapper turns catalog entities into API responses, resolving image
// ids against the static image host.
type CatResponseMapper struct {
	imageBaseURL string
}

func NewCatResponseMapper(imageBaseURL string) *CatResponseMapper {
	return &CatResponseMapper{imageBaseURL: imageBaseURL}
}

func (m *CatResponseMapper) ToResponse(cat *entity.Cat, status string) *dto.CatResponse {
	imageUrls := make([]string, 0, len(cat.ImgIds))
	for _, imgId := range cat.ImgIds {
		imageUrls = append(imageUrls, m.imageBaseURL+imgId)
	}

	imageUrl := ""
	if len(imageUrls) > 0 {
		imageUrl = imageUrls[0]
	}

	imgIds := cat.ImgIds
	if imgIds == nil {
		imgIds = []string{}
	}

	return &dto.CatResponse{
		Id:          cat.Id,
		Name:        cat.Name,
		Gender:      cat.Gender,
		Breed:       cat.Breed,
		Age:         cat.Age,
		AgeLabel:    FormatAge(cat.Age),
		Description: cat.Description,
		ImgIds:      imgIds,
		ImageUrl:    imageUrl,
		ImageUrls:   imageUrls,
		Status:      status,
	}
}

func (m *CatResponseMapper) ToListResponse(cats []entity.Cat, status, emptyMessage string) *dto.CatListResponse {
	res := &dto.CatListResponse{
		Cats:  make([]*dto.CatResponse, 0, len(cats)),
		Count: len(cats),
	}
	for i := range cats {
		res.Cats = append(res.Cats, m.ToResponse(&cats[i], status))
	}
	if len(cats) == 0 {
		res.EmptyMessage = emptyMessage
	}
	return res
}

// FormatAge renders an age in months the way the adoption cards show it.
func FormatAge(months int) string {
	years := months / 12
	remaining := months % 12
	switch {
	case years > 0 && remaining > 0:
		return fmt.Sprintf("%d year(s) and %d month(s) old", years, remaining)
	case years > 0:
		return fmt.Sprintf("%d year(s) old", years)
	default:
		return fmt.Sprintf("%d month(s) old", months)
	}
}
