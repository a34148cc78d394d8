package domain

import (
	"strconv"
	"strings"
)

// UnknownDepartment is stored as the department name of items whose
// department id does not resolve.
const UnknownDepartment = "Unknown"

type Condition string

const (
	ConditionNew         Condition = "New"
	ConditionGood        Condition = "Good"
	ConditionFair        Condition = "Fair"
	ConditionNeedsRepair Condition = "Needs Repair"
	ConditionExpired     Condition = "Expired"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionNeedsRepair, ConditionExpired:
		return true
	}
	return false
}

type InventoryItem struct {
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	DepartmentID string    `json:"departmentId"`
	Department   string    `json:"department"` // name captured when the item was created
	Unit         string    `json:"unit"`
	Quantity     int       `json:"quantity"`
	ReorderPoint int       `json:"reorderPoint"`
	Condition    Condition `json:"condition"`
	Description  string    `json:"description,omitempty"`
	BillName     string    `json:"billName,omitempty"`
	BillNumber   string    `json:"billNumber,omitempty"`
}

// ItemDraft is the input for creating an item. The department name is
// resolved by the catalog and is therefore absent here.
type ItemDraft struct {
	SKU          string    `json:"sku" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	DepartmentID string    `json:"departmentId" validate:"required"`
	Unit         string    `json:"unit" validate:"required"`
	Quantity     int       `json:"quantity"`
	ReorderPoint int       `json:"reorderPoint"`
	Condition    Condition `json:"condition"`
	Description  string    `json:"description,omitempty"`
	BillName     string    `json:"billName,omitempty"`
	BillNumber   string    `json:"billNumber,omitempty"`
}

// ItemUpdate is a partial update. SKU is the identity and cannot be changed.
type ItemUpdate struct {
	Name         *string    `json:"name,omitempty"`
	DepartmentID *string    `json:"departmentId,omitempty"`
	Unit         *string    `json:"unit,omitempty"`
	Quantity     *int       `json:"quantity,omitempty"`
	ReorderPoint *int       `json:"reorderPoint,omitempty"`
	Condition    *Condition `json:"condition,omitempty"`
	Description  *string    `json:"description,omitempty"`
	BillName     *string    `json:"billName,omitempty"`
	BillNumber   *string    `json:"billNumber,omitempty"`
}

// ClampCount floors a stock count at zero.
func ClampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// CoerceCount parses free-form text into a stock count. Leading integer
// digits are kept ("12.7" is 12, "7 pcs" is 7); anything unparseable or
// negative becomes 0.
func CoerceCount(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return ClampCount(n)
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
