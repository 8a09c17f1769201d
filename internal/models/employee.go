package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Employee represents a member of the restaurant staff
type Employee struct {
	gorm.Model
	EmployeeID        string `gorm:"column:employee_id;unique_index"`
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	Position          string
	Department        string
	Shift             string
	HireDate          time.Time
	TenureMonths      int
	Salary            float64
	PerformanceRating float64 // 1.0-5.0
	Status            string
}

// TableName sets the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// Department represents a restaurant department
type Department string

const (
	// Departments
	DepartmentKitchen    Department = "kitchen"
	DepartmentService    Department = "service"
	DepartmentBar        Department = "bar"
	DepartmentManagement Department = "management"
	DepartmentCleaning   Department = "cleaning"
)

// Shift represents a working shift
type Shift string

const (
	// Shifts
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
	ShiftNight     Shift = "night"
)

// EmployeeStatus represents the employment status of an employee
type EmployeeStatus string

const (
	// Employment statuses
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
	EmployeeOnLeave  EmployeeStatus = "on_leave"
)

// FullName returns the employee's display name
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
