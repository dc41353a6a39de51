package dto

type CatResponse struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Gender      string   `json:"gender"`
	Breed       string   `json:"breed"`
	Age         int      `json:"age"`       // months
	AgeLabel    string   `json:"age_label"` // e.g. "1 year(s) and 2 month(s) old"
	Description *string  `json:"description,omitempty"`
	ImgIds      []string `json:"img_ids"`
	ImageUrl    string   `json:"image_url"` // primary image, "" when the cat has none
	ImageUrls   []string `json:"image_urls"`
	Status      string   `json:"status"` // "available" | "saved" | "adopted"
}

type CatListResponse struct {
	Cats         []*CatResponse `json:"cats"`
	Count        int            `json:"count"`
	EmptyMessage string         `json:"empty_message,omitempty"`
}
