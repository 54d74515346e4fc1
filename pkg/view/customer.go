package view

// Customer is an aggregation over a store's orders, not a stored row.
type Customer struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	OrderCount  int64  `json:"order_count"`
	TotalSpent  string `json:"total_spent"`
	FirstSeen   string `json:"first_seen"`
	LastSeen    string `json:"last_seen"`
	LastSeenAgo string `json:"last_seen_ago"`
}
