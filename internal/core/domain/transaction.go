package domain

type TransactionType string

const (
	TransactionCheckIn  TransactionType = "check-in"
	TransactionCheckOut TransactionType = "check-out"
)

func (t TransactionType) Valid() bool {
	return t == TransactionCheckIn || t == TransactionCheckOut
}

// Delta returns the signed change the transaction applies to stock.
func (t TransactionType) Delta(quantity int) int {
	if t == TransactionCheckOut {
		return -quantity
	}
	return quantity
}

// Transaction is an immutable ledger entry.
type Transaction struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"`
	ItemName string          `json:"itemName"`
	Quantity int             `json:"quantity"`
	Type     TransactionType `json:"type"`
	User     string          `json:"user"`
	Date     string          `json:"date"`
	Notes    string          `json:"notes,omitempty"`
}

type TransactionRequest struct {
	SKU      string          `json:"sku"`
	Quantity int             `json:"quantity"`
	Type     TransactionType `json:"type"`
	User     string          `json:"user"`
	Notes    string          `json:"notes,omitempty"`
}
