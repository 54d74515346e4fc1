package view

// Order is the display projection the dashboard orders table consumes.
// DisplayID is cosmetic (collisions possible); ID stays authoritative.
type Order struct {
	ID            string       `json:"id"`
	DisplayID     string       `json:"display_id"`
	CustomerName  string       `json:"customer_name"`
	CustomerEmail string       `json:"customer_email"`
	CustomerPhone string       `json:"customer_phone"`
	Status        string       `json:"status"`
	StatusText    string       `json:"status_text"`
	StatusColors  StatusColors `json:"status_colors"`
	Total         string       `json:"total"`
	TotalCents    int64        `json:"total_cents"`
	Currency      string       `json:"currency"`
	TimeAgo       string       `json:"time_ago"`
	TimeClass     string       `json:"time_class"`
	CreatedAt     string       `json:"created_at"`
}

type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

type OrderDetail struct {
	Order
	Items  []OrderItem  `json:"items"`
	Events []OrderEvent `json:"events,omitempty"`
}

type OrderEvent struct {
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Note       string `json:"note,omitempty"`
	At         string `json:"at"`
}

// OrderList is the envelope for the dashboard orders endpoint.
// Source distinguishes live rows from demo sample rows.
type OrderList struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
	Source     string     `json:"source"` // "live" | "sample"
}
