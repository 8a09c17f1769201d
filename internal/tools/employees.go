package tools

import (
	"context"

	"maitred/internal/models"
	"maitred/internal/store"
)

// EmployeeView is the employee record shape returned to chat sessions.
// Salary is deliberately absent; it is never surfaced through chat.
type EmployeeView struct {
	EmployeeID        string  `json:"employee_id"`
	Name              string  `json:"name"`
	Position          string  `json:"position"`
	Department        string  `json:"department"`
	Shift             string  `json:"shift"`
	TenureMonths      int     `json:"tenure_months"`
	PerformanceRating float64 `json:"performance_rating"`
	Status            string  `json:"status"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
}

// DepartmentStats aggregates performance per department
type DepartmentStats struct {
	Department string  `json:"department"`
	Count      int     `json:"count"`
	AvgRating  float64 `json:"avg_rating"`
}

// PerformanceStats is the aggregate record for the whole staff
type PerformanceStats struct {
	TotalEmployees  int               `json:"total_employees"`
	AvgRating       float64           `json:"avg_rating"`
	AvgTenureMonths float64           `json:"avg_tenure_months"`
	HighPerformers  int               `json:"high_performers"` // rating >= 4.0
	LowPerformers   int               `json:"low_performers"`  // rating < 3.0
	Departments     []DepartmentStats `json:"departments"`
}

// EmployeePerformance is the per-employee stats record
type EmployeePerformance struct {
	EmployeeID        string  `json:"employee_id"`
	Name              string  `json:"name"`
	Position          string  `json:"position"`
	Department        string  `json:"department"`
	TenureMonths      int     `json:"tenure_months"`
	PerformanceRating float64 `json:"performance_rating"`
}

func (r *Registry) registerEmployeeOps() {
	r.register(Descriptor{
		Name: OpQueryEmployees,
		Description: "Query restaurant staff records. All filters are optional: " +
			"department and shift match exactly, name matches a substring of the first or last name.",
		Schema: Schema{Params: []Param{
			{Name: "department", Type: TypeString, Description: "Department to filter by (e.g. kitchen, service, bar, management)"},
			{Name: "shift", Type: TypeString, Description: "Shift to filter by", Enum: []string{"morning", "afternoon", "evening", "night"}},
			{Name: "name", Type: TypeString, Description: "Substring of the employee's first or last name"},
		}},
		Roles: internalOnly,
	}, r.queryEmployees)

	r.register(Descriptor{
		Name: OpPerformanceStats,
		Description: "Get employee performance statistics. With employee_id, returns that employee's " +
			"performance record; without it, returns aggregate statistics for the whole staff.",
		Schema: Schema{Params: []Param{
			{Name: "employee_id", Type: TypeString, Description: "Employee identifier; omit for staff-wide aggregates"},
		}},
		Roles: internalOnly,
	}, r.performanceStats)
}

func (r *Registry) queryEmployees(ctx context.Context, _ Role, args map[string]interface{}) (*Result, error) {
	filter := store.EmployeeFilter{
		Department: stringArg(args, "department"),
		Shift:      stringArg(args, "shift"),
		Name:       stringArg(args, "name"),
	}

	employees, truncated, err := r.store.QueryEmployees(ctx, filter, r.maxResults)
	if err != nil {
		return nil, wrapStoreError(OpQueryEmployees, err)
	}

	records := make([]interface{}, 0, len(employees))
	for i := range employees {
		records = append(records, employeeView(&employees[i]))
	}
	return newResult(records, truncated), nil
}

func (r *Registry) performanceStats(ctx context.Context, _ Role, args map[string]interface{}) (*Result, error) {
	if id := stringArg(args, "employee_id"); id != "" {
		emp, err := r.store.EmployeeByID(ctx, id)
		if err != nil {
			return nil, wrapStoreError(OpPerformanceStats, err)
		}
		if emp == nil {
			return newResult(nil, false), nil
		}
		return newResult([]interface{}{EmployeePerformance{
			EmployeeID:        emp.EmployeeID,
			Name:              emp.FullName(),
			Position:          emp.Position,
			Department:        emp.Department,
			TenureMonths:      emp.TenureMonths,
			PerformanceRating: emp.PerformanceRating,
		}}, false), nil
	}

	employees, err := r.store.AllEmployees(ctx)
	if err != nil {
		return nil, wrapStoreError(OpPerformanceStats, err)
	}
	if len(employees) == 0 {
		return newResult(nil, false), nil
	}

	stats := PerformanceStats{TotalEmployees: len(employees)}
	byDept := make(map[string]*DepartmentStats)
	var deptOrder []string

	var ratingSum, tenureSum float64
	for _, emp := range employees {
		ratingSum += emp.PerformanceRating
		tenureSum += float64(emp.TenureMonths)
		if emp.PerformanceRating >= 4.0 {
			stats.HighPerformers++
		}
		if emp.PerformanceRating < 3.0 {
			stats.LowPerformers++
		}

		dept, ok := byDept[emp.Department]
		if !ok {
			dept = &DepartmentStats{Department: emp.Department}
			byDept[emp.Department] = dept
			deptOrder = append(deptOrder, emp.Department)
		}
		dept.Count++
		dept.AvgRating += emp.PerformanceRating
	}

	stats.AvgRating = ratingSum / float64(len(employees))
	stats.AvgTenureMonths = tenureSum / float64(len(employees))
	for _, name := range deptOrder {
		dept := byDept[name]
		dept.AvgRating /= float64(dept.Count)
		stats.Departments = append(stats.Departments, *dept)
	}

	return newResult([]interface{}{stats}, false), nil
}

func employeeView(e *models.Employee) EmployeeView {
	return EmployeeView{
		EmployeeID:        e.EmployeeID,
		Name:              e.FullName(),
		Position:          e.Position,
		Department:        e.Department,
		Shift:             e.Shift,
		TenureMonths:      e.TenureMonths,
		PerformanceRating: e.PerformanceRating,
		Status:            e.Status,
		Email:             e.Email,
		Phone:             e.Phone,
	}
}
