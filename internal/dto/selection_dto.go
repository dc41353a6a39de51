package dto

import "time"

type SelectCatRequest struct {
	CatId string `validate:"required,max=64"`
}

type SelectionResponse struct {
	CatId  string `json:"cat_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type SessionStateResponse struct {
	SessionId     string   `json:"session_id"`
	SavedCatIds   []string `json:"savedCatIds"`
	AdoptedCatIds []string `json:"adoptedCatIds"`
	SavedCount    int      `json:"saved_count"`
	AdoptedCount  int      `json:"adopted_count"`
}

// PublishAdoptionMessage travels on the in-process adoption topic.
type PublishAdoptionMessage struct {
	SessionId string    `json:"session_id"`
	CatId     string    `json:"cat_id"`
	CatName   string    `json:"cat_name"`
	AdoptedAt time.Time `json:"adopted_at"`
}
