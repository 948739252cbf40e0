package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/payroll"
	"github.com/wisskirchenj/account-reactive/internal/domain/transaction"
	"github.com/wisskirchenj/account-reactive/internal/pkg/apperrors"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
	"github.com/wisskirchenj/account-reactive/internal/pkg/validators"
)

// payrollService implements the PayrollService interface
type payrollService struct {
	transactor transaction.Transactor
	logins     accounts.LoginRepository
	salaries   payroll.SalaryRepository
	logger     logger.Logger
}

// NewPayrollService creates a new instance of PayrollService
func NewPayrollService(
	transactor transaction.Transactor,
	logins accounts.LoginRepository,
	salaries payroll.SalaryRepository,
	logger logger.Logger,
) (payroll.PayrollService, error) {
	return &payrollService{
		transactor: transactor,
		logins:     logins,
		salaries:   salaries,
		logger:     logger,
	}, nil
}

// Payslips returns the salaries of email, all months ascending or the single month of period.
func (s *payrollService) Payslips(ctx context.Context, email, period string) ([]*payroll.Payslip, error) {
	if period != "" && !validators.IsPeriod(period) {
		return nil, apperrors.BadRequest(payroll.MsgWrongDateFormat)
	}

	login, err := s.logins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, apperrors.NotFound(accounts.MsgUserNotFound)
		}
		return nil, err
	}

	var salaries []*payroll.Salary
	if period == "" {
		salaries, err = s.salaries.ListByEmail(ctx, login.Email)
		if err != nil {
			return nil, err
		}
	} else {
		salary, err := s.salaries.GetByEmailAndPeriod(ctx, login.Email, payroll.YearFirst(period))
		switch {
		case err == nil:
			salaries = []*payroll.Salary{salary}
		case !errors.Is(err, payroll.ErrNotFound):
			return nil, err
		}
	}

	payslips := make([]*payroll.Payslip, len(salaries))
	for i, salary := range salaries {
		payslips[i] = &payroll.Payslip{
			Name:     login.Name,
			Lastname: login.Lastname,
			Period:   payroll.MonthFirst(salary.Period),
			Salary:   payroll.SalaryText(salary.MonthlySalary),
		}
	}
	return payslips, nil
}

// Upload stores all records or none. Every record is checked and all
// problems are reported together, each prefixed with the record index.
func (s *payrollService) Upload(ctx context.Context, records []*payroll.SalaryRecord) (int, error) {
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		salaries := make([]*payroll.Salary, 0, len(records))
		var problems []string

		for i, record := range records {
			if messages := record.Validate(); len(messages) > 0 {
				problems = append(problems, fmt.Sprintf(payroll.MsgRecordPrefix, i, strings.Join(messages, " && ")))
				continue
			}
			salary, problem, err := s.checkNewRecord(ctx, record)
			if err != nil {
				return err
			}
			if problem != "" {
				problems = append(problems, fmt.Sprintf(payroll.MsgRecordPrefix, i, problem))
				continue
			}
			salaries = append(salaries, salary)
		}

		if len(problems) > 0 {
			return apperrors.BadRequest(strings.Join(problems, " | "))
		}
		if hasDuplicates(records) {
			return apperrors.BadRequest(payroll.MsgDuplicateRecords)
		}
		return s.salaries.CreateAll(ctx, salaries)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Uploaded ", len(records), " salary records")
	return len(records), nil
}

// checkNewRecord looks up the employee of a well-formed record and makes
// sure there is no salary for its period yet.
func (s *payrollService) checkNewRecord(ctx context.Context, record *payroll.SalaryRecord) (*payroll.Salary, string, error) {
	login, err := s.logins.GetByEmail(ctx, record.Employee)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, payroll.MsgNoSuchEmployee, nil
		}
		return nil, "", err
	}

	salary := record.ToSalary()
	salary.Email = login.Email

	_, err = s.salaries.GetByEmailAndPeriod(ctx, salary.Email, salary.Period)
	switch {
	case err == nil:
		return nil, payroll.MsgRecordExists, nil
	case !errors.Is(err, payroll.ErrNotFound):
		return nil, "", err
	}
	return salary, "", nil
}

func hasDuplicates(records []*payroll.SalaryRecord) bool {
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		key := strings.ToLower(record.Employee) + "|" + record.Period
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// Update changes the monthly salary of an existing record.
func (s *payrollService) Update(ctx context.Context, record *payroll.SalaryRecord) error {
	if messages := record.Validate(); len(messages) > 0 {
		return apperrors.BadRequest(strings.Join(messages, " && "))
	}

	salary, err := s.salaries.GetByEmailAndPeriod(ctx, record.Employee, payroll.YearFirst(record.Period))
	if err != nil {
		if errors.Is(err, payroll.ErrNotFound) {
			return apperrors.BadRequest(payroll.MsgNoSuchRecord)
		}
		return err
	}

	salary.MonthlySalary = record.Salary
	if err := s.salaries.Update(ctx, salary); err != nil {
		return err
	}
	return nil
}
