package order

// Order is the submission payload sent to the remote order service once
// the draft is complete.
type Order struct {
	Payment string   `json:"payment"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Total   int64    `json:"total"`
	Items   []string `json:"items"`
}
