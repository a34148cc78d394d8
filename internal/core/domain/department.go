package domain

type Department struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}

// DepartmentUpdate carries the fields to merge into an existing department.
// Nil fields are left untouched.
type DepartmentUpdate struct {
	Name  *string `json:"name,omitempty"`
	Notes *string `json:"notes,omitempty"`
}
