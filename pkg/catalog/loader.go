package catalog

import (
	"fmt"
	"os"
	"strings"

	"badger-buds-be/internal/entity"

	"gopkg.in/yaml.v3"
)

// Record is one cat as written in a catalog file. The field names follow the
// public Badger Buds feed (camelCase imgIds), so its JSON dump loads unchanged.
type Record struct {
	Id          string   `yaml:"id"`
	ImgIds      []string `yaml:"imgIds"`
	Name        string   `yaml:"name"`
	Gender      string   `yaml:"gender"`
	Breed       string   `yaml:"breed"`
	Age         int      `yaml:"age"`
	Description *string  `yaml:"description"`
}

// LoadFile reads a YAML (or JSON) list of cats.
func LoadFile(path string) ([]*entity.Cat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog records. Ids must be present and unique.
func Parse(data []byte) ([]*entity.Cat, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	cats := make([]*entity.Cat, 0, len(records))
	for i, r := range records {
		id := strings.TrimSpace(r.Id)
		if id == "" {
			return nil, fmt.Errorf("parse catalog: record %d has no id", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate id %q", id)
		}
		seen[id] = struct{}{}

		if r.Age < 0 {
			return nil, fmt.Errorf("parse catalog: cat %q has negative age", id)
		}

		cat := &entity.Cat{
			Id:          id,
			ImgIds:      r.ImgIds,
			Name:        r.Name,
			Gender:      r.Gender,
			Breed:       r.Breed,
			Age:         r.Age,
			Description: r.Description,
		}
		cat.Normalize()
		cats = append(cats, cat)
	}
	return cats, nil
}
