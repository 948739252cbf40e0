package payroll

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when no salary matches.
var ErrNotFound = errors.New("salary not found")

// SalaryRepository defines the interface for Salary-related operations.
// Employee emails are compared ignoring case.
type SalaryRepository interface {
	// CreateAll stores all salaries
	CreateAll(ctx context.Context, salaries []*Salary) error
	// Update saves the monthly salary of an existing Salary
	Update(ctx context.Context, salary *Salary) error
	// GetByEmailAndPeriod retrieves a Salary by employee and yyyy-mm period, ErrNotFound if there is none
	GetByEmailAndPeriod(ctx context.Context, email, period string) (*Salary, error)
	// ListByEmail returns the salaries of an employee ascending by period
	ListByEmail(ctx context.Context, email string) ([]*Salary, error)
	// DeleteByEmail removes all salaries of an employee
	DeleteByEmail(ctx context.Context, email string) error
}

// PayrollService defines the salary operations of employees and accountants.
type PayrollService interface {
	// Payslips returns the salaries of the employee with the given email.
	// An empty period lists all months, otherwise period is mm-yyyy and at most one payslip is returned.
	Payslips(ctx context.Context, email, period string) ([]*Payslip, error)

	// Upload validates all records and stores them in one go, or none of them.
	// It returns the number of stored records.
	Upload(ctx context.Context, records []*SalaryRecord) (int, error)

	// Update changes the salary of an existing record.
	Update(ctx context.Context, record *SalaryRecord) error
}
