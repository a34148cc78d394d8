// Package query derives read-only views from an inventory state snapshot.
// Results are recomputed on every call.
package query

import (
	"strings"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

// LowStockItems returns the items at or below their reorder point. A zero
// reorder point disables tracking for that item.
func LowStockItems(state domain.State) []domain.InventoryItem {
	out := make([]domain.InventoryItem, 0)
	for _, item := range state.Items {
		if item.ReorderPoint > 0 && item.Quantity <= item.ReorderPoint {
			out = append(out, item)
		}
	}
	return out
}

// FilteredItems applies the state's search term and department filter,
// keeping catalog order.
func FilteredItems(state domain.State) []domain.InventoryItem {
	term := strings.ToLower(state.SearchTerm)
	out := make([]domain.InventoryItem, 0, len(state.Items))
	for _, item := range state.Items {
		if matchesSearch(item, term) && matchesDepartment(item, state.DepartmentFilter) {
			out = append(out, item)
		}
	}
	return out
}

func matchesSearch(item domain.InventoryItem, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), term) ||
		strings.Contains(strings.ToLower(item.SKU), term) ||
		strings.Contains(strings.ToLower(item.Description), term)
}

func matchesDepartment(item domain.InventoryItem, departmentID string) bool {
	return departmentID == "" || item.DepartmentID == departmentID
}
