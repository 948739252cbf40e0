//go:build unit
// +build unit

package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearFirst(t *testing.T) {
	assert.Equal(t, "2022-07", YearFirst("07-2022"))
	assert.Equal(t, "1999-12", YearFirst("12-1999"))
	assert.Equal(t, "bogus", YearFirst("bogus"))
}

func TestMonthFirst(t *testing.T) {
	tests := []struct {
		period   string
		expected string
	}{
		{"2022-07", "July-2022"},
		{"2021-01", "January-2021"},
		{"2021-12", "December-2021"},
		{"2021-13", "2021-13"},
		{"short", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthFirst(tt.period))
		})
	}
}

func TestSalaryText(t *testing.T) {
	assert.Equal(t, "70 dollar(s) 25 cent(s)", SalaryText(7025))
	assert.Equal(t, "0 dollar(s) 05 cent(s)", SalaryText(5))
	assert.Equal(t, "1234 dollar(s) 00 cent(s)", SalaryText(123400))
}

func TestSalaryRecord_ToSalary(t *testing.T) {
	record := &SalaryRecord{Employee: "max@acme.com", Period: "03-2022", Salary: 123456}

	salary := record.ToSalary()

	assert.Equal(t, "max@acme.com", salary.Email)
	assert.Equal(t, "2022-03", salary.Period)
	assert.Equal(t, int64(123456), salary.MonthlySalary)
}

func TestSalaryRecord_Validate(t *testing.T) {
	tests := []struct {
		name     string
		record   SalaryRecord
		messages []string
	}{
		{"valid", SalaryRecord{Employee: "max@acme.com", Period: "01-2022", Salary: 0}, nil},
		{"bad employee", SalaryRecord{Employee: "max@google.com", Period: "01-2022", Salary: 1}, []string{MsgInvalidEmployee}},
		{"bad period", SalaryRecord{Employee: "max@acme.com", Period: "13-2022", Salary: 1}, []string{MsgWrongDate}},
		{
			"everything wrong",
			SalaryRecord{Employee: "", Period: "2022-01", Salary: -5},
			[]string{MsgInvalidEmployee, MsgWrongDate, MsgNegativeSalary},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.messages, tt.record.Validate())
		})
	}
}
