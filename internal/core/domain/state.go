package domain

// State is the whole inventory aggregate and the unit of persistence.
// Transactions are kept newest first.
type State struct {
	Items            []InventoryItem `json:"items"`
	Departments      []Department    `json:"departments"`
	Transactions     []Transaction   `json:"transactions"`
	SearchTerm       string          `json:"searchTerm"`
	DepartmentFilter string          `json:"departmentFilter"`
}

// Clone returns a copy that shares no backing arrays with s.
func (s State) Clone() State {
	out := State{
		Items:            make([]InventoryItem, len(s.Items)),
		Departments:      make([]Department, len(s.Departments)),
		Transactions:     make([]Transaction, len(s.Transactions)),
		SearchTerm:       s.SearchTerm,
		DepartmentFilter: s.DepartmentFilter,
	}
	copy(out.Items, s.Items)
	copy(out.Departments, s.Departments)
	copy(out.Transactions, s.Transactions)
	return out
}

// FindItem returns the index of the first item with the given SKU, or -1.
func (s State) FindItem(sku string) int {
	for i := range s.Items {
		if s.Items[i].SKU == sku {
			return i
		}
	}
	return -1
}

// FindDepartment returns the index of the department with the given id, or -1.
func (s State) FindDepartment(id string) int {
	for i := range s.Departments {
		if s.Departments[i].ID == id {
			return i
		}
	}
	return -1
}

// DepartmentName resolves a department id to its name, falling back to
// UnknownDepartment.
func (s State) DepartmentName(id string) string {
	if i := s.FindDepartment(id); i >= 0 {
		return s.Departments[i].Name
	}
	return UnknownDepartment
}

// Normalize repairs a state read from outside the process: nil sequences
// become empty and stock counts are floored at zero.
func (s *State) Normalize() {
	if s.Items == nil {
		s.Items = []InventoryItem{}
	}
	if s.Departments == nil {
		s.Departments = []Department{}
	}
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	for i := range s.Items {
		s.Items[i].Quantity = ClampCount(s.Items[i].Quantity)
		s.Items[i].ReorderPoint = ClampCount(s.Items[i].ReorderPoint)
	}
}
