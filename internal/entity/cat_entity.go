package entity

import "strings"

// Cat is an adoptable candidate from the catalog.
type Cat struct {
	Id          string
	ImgIds      []string
	Name        string
	Gender      string
	Breed       string
	Age         int // months
	Description *string
}

// Normalize fills the optional fields explicitly: no nil image list, and a blank
// description becomes nil.
func (c *Cat) Normalize() {
	if c.ImgIds == nil {
		c.ImgIds = []string{}
	}
	if c.Description != nil && strings.TrimSpace(*c.Description) == "" {
		c.Description = nil
	}
}

// PrimaryImgId is the first image id, or "" for a cat without images.
func (c *Cat) PrimaryImgId() string {
	if len(c.ImgIds) == 0 {
		return ""
	}
	return c.ImgIds[0]
}
