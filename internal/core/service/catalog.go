package service

import (
	"strings"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

// AddItem appends a new item to the catalog. The department name is copied
// from the registry at creation time, or set to "Unknown" when the
// department does not exist.
func (s *InventoryService) AddItem(draft domain.ItemDraft) (domain.InventoryItem, error) {
	draft.SKU = strings.TrimSpace(draft.SKU)
	draft.Name = strings.TrimSpace(draft.Name)
	draft.DepartmentID = strings.TrimSpace(draft.DepartmentID)
	draft.Unit = strings.TrimSpace(draft.Unit)

	if err := s.validate.Struct(draft); err != nil {
		return domain.InventoryItem{}, validationError(err)
	}
	if draft.Condition == "" {
		draft.Condition = domain.ConditionNew
	}
	if !draft.Condition.Valid() {
		return domain.InventoryItem{}, domain.NewValidationError("condition", "is invalid")
	}

	var item domain.InventoryItem
	err := s.update(func(next *domain.State) error {
		if next.FindItem(draft.SKU) >= 0 {
			return &domain.ValidationError{
				Fields: map[string]string{"sku": "already exists"},
				Cause:  domain.ErrDuplicateSKU,
			}
		}
		item = domain.InventoryItem{
			SKU:          draft.SKU,
			Name:         draft.Name,
			DepartmentID: draft.DepartmentID,
			Department:   next.DepartmentName(draft.DepartmentID),
			Unit:         draft.Unit,
			Quantity:     domain.ClampCount(draft.Quantity),
			ReorderPoint: domain.ClampCount(draft.ReorderPoint),
			Condition:    draft.Condition,
			Description:  draft.Description,
			BillName:     draft.BillName,
			BillNumber:   draft.BillNumber,
		}
		next.Items = append(next.Items, item)
		return nil
	})
	if err != nil {
		return domain.InventoryItem{}, err
	}
	return item, nil
}

// UpdateItem merges the set fields of u into the item. Unknown SKUs are a
// no-op. Changing the department id refreshes the department name.
func (s *InventoryService) UpdateItem(sku string, u domain.ItemUpdate) error {
	if u.Condition != nil && !u.Condition.Valid() {
		return domain.NewValidationError("condition", "is invalid")
	}
	for field, v := range map[string]*string{"name": u.Name, "departmentId": u.DepartmentID, "unit": u.Unit} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return domain.NewValidationError(field, "is required")
		}
	}

	return s.update(func(next *domain.State) error {
		for i := range next.Items {
			if next.Items[i].SKU != sku {
				continue
			}
			applyItemUpdate(next, &next.Items[i], u)
		}
		return nil
	})
}

func applyItemUpdate(state *domain.State, item *domain.InventoryItem, u domain.ItemUpdate) {
	if u.Name != nil {
		item.Name = strings.TrimSpace(*u.Name)
	}
	if u.DepartmentID != nil {
		id := strings.TrimSpace(*u.DepartmentID)
		if id != item.DepartmentID {
			item.DepartmentID = id
			item.Department = state.DepartmentName(id)
		}
	}
	if u.Unit != nil {
		item.Unit = strings.TrimSpace(*u.Unit)
	}
	if u.Quantity != nil {
		item.Quantity = domain.ClampCount(*u.Quantity)
	}
	if u.ReorderPoint != nil {
		item.ReorderPoint = domain.ClampCount(*u.ReorderPoint)
	}
	if u.Condition != nil {
		item.Condition = *u.Condition
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.BillName != nil {
		item.BillName = *u.BillName
	}
	if u.BillNumber != nil {
		item.BillNumber = *u.BillNumber
	}
}

func (s *InventoryService) DeleteItem(sku string) error {
	return s.update(func(next *domain.State) error {
		next.Items = removeItems(next.Items, func(it domain.InventoryItem) bool { return it.SKU == sku })
		return nil
	})
}

func (s *InventoryService) Item(sku string) (domain.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.state.FindItem(sku); i >= 0 {
		return s.state.Items[i], true
	}
	return domain.InventoryItem{}, false
}

func (s *InventoryService) Items() []domain.InventoryItem {
	return s.Snapshot().Items
}

func removeItems(items []domain.InventoryItem, drop func(domain.InventoryItem) bool) []domain.InventoryItem {
	kept := make([]domain.InventoryItem, 0, len(items))
	for _, it := range items {
		if !drop(it) {
			kept = append(kept, it)
		}
	}
	return kept
}
