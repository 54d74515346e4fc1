package view

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency"`
	InStock     bool   `json:"in_stock"`
	ImageURL    string `json:"image_url,omitempty"`
	Category    string `json:"category,omitempty"`
}
