package handler

import (
	"bytes"
	"encoding/json"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

// FlexInt accepts a JSON number or a numeric string, as sent by HTML forms.
// Values that are not a non-negative integer decode as 0.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}
	*n = FlexInt(domain.CoerceCount(s))
	return nil
}

type ItemRequest struct {
	SKU          string           `json:"sku"`
	Name         string           `json:"name"`
	DepartmentID string           `json:"departmentId"`
	Unit         string           `json:"unit"`
	Quantity     FlexInt          `json:"quantity"`
	ReorderPoint FlexInt          `json:"reorderPoint"`
	Condition    domain.Condition `json:"condition"`
	Description  string           `json:"description"`
	BillName     string           `json:"billName"`
	BillNumber   string           `json:"billNumber"`
}

func (r ItemRequest) Draft() domain.ItemDraft {
	return domain.ItemDraft{
		SKU:          r.SKU,
		Name:         r.Name,
		DepartmentID: r.DepartmentID,
		Unit:         r.Unit,
		Quantity:     int(r.Quantity),
		ReorderPoint: int(r.ReorderPoint),
		Condition:    r.Condition,
		Description:  r.Description,
		BillName:     r.BillName,
		BillNumber:   r.BillNumber,
	}
}

type ItemUpdateRequest struct {
	Name         *string           `json:"name"`
	DepartmentID *string           `json:"departmentId"`
	Unit         *string           `json:"unit"`
	Quantity     *int              `json:"quantity"`
	ReorderPoint *int              `json:"reorderPoint"`
	Condition    *domain.Condition `json:"condition"`
	Description  *string           `json:"description"`
	BillName     *string           `json:"billName"`
	BillNumber   *string           `json:"billNumber"`
}

func (r ItemUpdateRequest) Update() domain.ItemUpdate {
	return domain.ItemUpdate{
		Name:         r.Name,
		DepartmentID: r.DepartmentID,
		Unit:         r.Unit,
		Quantity:     r.Quantity,
		ReorderPoint: r.ReorderPoint,
		Condition:    r.Condition,
		Description:  r.Description,
		BillName:     r.BillName,
		BillNumber:   r.BillNumber,
	}
}

type DepartmentRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

type TransactionHTTPRequest struct {
	SKU      string                 `json:"sku"`
	Quantity FlexInt                `json:"quantity"`
	Type     domain.TransactionType `json:"type"`
	User     string                 `json:"user"`
	Notes    string                 `json:"notes"`
}

func (r TransactionHTTPRequest) Request() domain.TransactionRequest {
	return domain.TransactionRequest{
		SKU:      r.SKU,
		Quantity: int(r.Quantity),
		Type:     r.Type,
		User:     r.User,
		Notes:    r.Notes,
	}
}

type FiltersRequest struct {
	SearchTerm       *string `json:"searchTerm"`
	DepartmentFilter *string `json:"departmentFilter"`
}
