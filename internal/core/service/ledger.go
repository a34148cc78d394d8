package service

import (
	"strings"
	"time"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

// CommitTransaction records a stock movement and applies it to the item in
// the same commit. A check-out larger than the available stock is rejected.
// Transactions against an unknown SKU are recorded with a blank item name
// and leave the catalog untouched.
func (s *InventoryService) CommitTransaction(req domain.TransactionRequest) (domain.Transaction, error) {
	req.SKU = strings.TrimSpace(req.SKU)
	if req.SKU == "" {
		return domain.Transaction{}, domain.NewValidationError("sku", "is required")
	}
	if !req.Type.Valid() {
		return domain.Transaction{}, domain.NewValidationError("type", "must be check-in or check-out")
	}
	if req.Quantity <= 0 {
		return domain.Transaction{}, &domain.ValidationError{
			Fields: map[string]string{"quantity": "must be greater than 0"},
			Cause:  domain.ErrInvalidQuantity,
		}
	}
	if strings.TrimSpace(req.User) == "" {
		req.User = DefaultUser
	}

	var tx domain.Transaction
	err := s.update(func(next *domain.State) error {
		itemName := ""
		if i := next.FindItem(req.SKU); i >= 0 {
			item := next.Items[i]
			if req.Type == domain.TransactionCheckOut && req.Quantity > item.Quantity {
				return &domain.ValidationError{
					Fields: map[string]string{"quantity": "cannot check out more items than available"},
					Cause:  domain.ErrInsufficientStock,
				}
			}
			itemName = item.Name
		}

		delta := req.Type.Delta(req.Quantity)
		for i := range next.Items {
			if next.Items[i].SKU == req.SKU {
				next.Items[i].Quantity = domain.ClampCount(next.Items[i].Quantity + delta)
			}
		}

		tx = domain.Transaction{
			ID:       s.ids.NewID(),
			SKU:      req.SKU,
			ItemName: itemName,
			Quantity: req.Quantity,
			Type:     req.Type,
			User:     req.User,
			Date:     s.now().Format(time.RFC3339),
			Notes:    req.Notes,
		}
		next.Transactions = append([]domain.Transaction{tx}, next.Transactions...)
		return nil
	})
	if err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

// Transactions returns the ledger, newest first.
func (s *InventoryService) Transactions() []domain.Transaction {
	return s.Snapshot().Transactions
}
