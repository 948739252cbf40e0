package models

import "github.com/wisskirchenj/account-reactive/internal/domain/payroll"

// SalaryModel is the GORM database model for monthly salaries
type SalaryModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Email         string `gorm:"not null;uniqueIndex:idx_salary_email_period;type:varchar(255)"`
	Period        string `gorm:"not null;uniqueIndex:idx_salary_email_period;type:varchar(7)"`
	MonthlySalary int64  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SalaryModel) TableName() string {
	return "salary"
}

// ToDomain converts GORM model to domain entity
func (m *SalaryModel) ToDomain() *payroll.Salary {
	return &payroll.Salary{
		ID:            m.ID,
		Email:         m.Email,
		Period:        m.Period,
		MonthlySalary: m.MonthlySalary,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SalaryModel) FromDomain(s *payroll.Salary) {
	m.ID = s.ID
	m.Email = s.Email
	m.Period = s.Period
	m.MonthlySalary = s.MonthlySalary
}
