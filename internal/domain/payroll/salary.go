package payroll

import (
	"fmt"
	"strconv"
	"time"

	"github.com/wisskirchenj/account-reactive/internal/pkg/validators"
)

// Salary is the stored monthly salary of an employee. Period is kept year
// first (yyyy-mm) so that it sorts chronologically.
type Salary struct {
	ID            int64
	Email         string
	Period        string
	MonthlySalary int64
}

// SalaryRecord is a salary as uploaded by accountants, period month first
// (mm-yyyy) and salary in cents.
type SalaryRecord struct {
	Employee string `validate:"corporate_email"`
	Period   string `validate:"period"`
	Salary   int64  `validate:"gte=0"`
}

var recordMessages = map[string]string{
	"Employee.corporate_email": MsgInvalidEmployee,
	"Period.period":            MsgWrongDate,
	"Salary.gte":               MsgNegativeSalary,
}

// Validate returns the format violations of the record, empty if there are none.
func (r *SalaryRecord) Validate() []string {
	messages, err := validators.Messages(r, recordMessages)
	if err != nil {
		return []string{err.Error()}
	}
	return messages
}

// ToSalary converts the record into its stored form.
func (r *SalaryRecord) ToSalary() *Salary {
	return &Salary{
		Email:         r.Employee,
		Period:        YearFirst(r.Period),
		MonthlySalary: r.Salary,
	}
}

// Payslip is a salary presented to the employee it belongs to.
type Payslip struct {
	Name     string
	Lastname string
	Period   string
	Salary   string
}

// YearFirst converts a mm-yyyy period into yyyy-mm.
func YearFirst(period string) string {
	if len(period) != 7 {
		return period
	}
	return period[3:] + "-" + period[:2]
}

// MonthFirst converts a stored yyyy-mm period into its display form, e.g. "July-2022".
func MonthFirst(period string) string {
	if len(period) != 7 {
		return period
	}
	month, err := strconv.Atoi(period[5:])
	if err != nil || month < 1 || month > 12 {
		return period
	}
	return time.Month(month).String() + "-" + period[:4]
}

// SalaryText renders cents as "<dollars> dollar(s) <cents> cent(s)".
func SalaryText(cents int64) string {
	return fmt.Sprintf("%d dollar(s) %02d cent(s)", cents/100, cents%100)
}
