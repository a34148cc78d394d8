package service

import (
	"strings"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

func (s *InventoryService) AddDepartment(name, notes string) (domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Department{}, domain.NewValidationError("name", "is required")
	}

	dept := domain.Department{ID: s.ids.NewID(), Name: name, Notes: notes}
	err := s.update(func(next *domain.State) error {
		next.Departments = append(next.Departments, dept)
		return nil
	})
	if err != nil {
		return domain.Department{}, err
	}
	return dept, nil
}

// UpdateDepartment merges the set fields into the department. Items keep the
// department name they were created with.
func (s *InventoryService) UpdateDepartment(id string, u domain.DepartmentUpdate) error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}

	return s.update(func(next *domain.State) error {
		i := next.FindDepartment(id)
		if i < 0 {
			return nil
		}
		if u.Name != nil {
			next.Departments[i].Name = strings.TrimSpace(*u.Name)
		}
		if u.Notes != nil {
			next.Departments[i].Notes = *u.Notes
		}
		return nil
	})
}

// DeleteDepartment removes the department together with every item that
// references it, in a single commit.
func (s *InventoryService) DeleteDepartment(id string) error {
	return s.update(func(next *domain.State) error {
		depts := make([]domain.Department, 0, len(next.Departments))
		for _, d := range next.Departments {
			if d.ID != id {
				depts = append(depts, d)
			}
		}
		next.Departments = depts
		next.Items = removeItems(next.Items, func(it domain.InventoryItem) bool { return it.DepartmentID == id })
		return nil
	})
}

func (s *InventoryService) Departments() []domain.Department {
	return s.Snapshot().Departments
}
