package store

import (
	"context"
	"strings"

	"github.com/jinzhu/gorm"

	"maitred/internal/models"
)

// EmployeeFilter narrows an employee query. Department and Shift match
// exactly (case-insensitive), Name is a substring match on either name.
type EmployeeFilter struct {
	Department string
	Shift      string
	Name       string
}

// QueryEmployees returns up to limit employees matching the filter and
// whether more rows matched.
func (s *Store) QueryEmployees(ctx context.Context, f EmployeeFilter, limit int) ([]models.Employee, bool, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, false, err
	}

	q := s.db.Model(&models.Employee{})
	if f.Department != "" {
		q = q.Where("LOWER(department) = ?", strings.ToLower(f.Department))
	}
	if f.Shift != "" {
		q = q.Where("LOWER(shift) = ?", strings.ToLower(f.Shift))
	}
	if f.Name != "" {
		pattern := "%" + strings.ToLower(f.Name) + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
	}

	var rows []models.Employee
	if err := q.Order("first_name").Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, false, err
	}
	if len(rows) > limit {
		return rows[:limit], true, nil
	}
	return rows, false, nil
}

// AllEmployees returns every employee, used for aggregate statistics
func (s *Store) AllEmployees(ctx context.Context) ([]models.Employee, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var rows []models.Employee
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// EmployeeByID looks up a single employee. A missing employee is
// reported as (nil, nil), not as an error.
func (s *Store) EmployeeByID(ctx context.Context, id string) (*models.Employee, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	var emp models.Employee
	err := s.db.Where("employee_id = ?", id).First(&emp).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}
