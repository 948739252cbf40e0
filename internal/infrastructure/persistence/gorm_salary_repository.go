package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/wisskirchenj/account-reactive/internal/domain/payroll"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/persistence/models"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSalaryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSalaryRepository creates a new GORM-based SalaryRepository implementation
func NewGormSalaryRepository(db *gorm.DB, logger logger.Logger) (payroll.SalaryRepository, error) {
	return &gormSalaryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSalaryRepository) CreateAll(ctx context.Context, salaries []*payroll.Salary) error {
	if len(salaries) == 0 {
		return nil
	}

	modelList := make([]*models.SalaryModel, len(salaries))
	for i, salary := range salaries {
		modelList[i] = &models.SalaryModel{}
		modelList[i].FromDomain(salary)
	}

	if err := conn(ctx, r.db).Create(&modelList).Error; err != nil {
		return fmt.Errorf("failed to create salaries: %w", err)
	}

	for i, model := range modelList {
		salaries[i].ID = model.ID
	}
	r.logger.Info("Created ", len(salaries), " salary records")
	return nil
}

func (r *gormSalaryRepository) Update(ctx context.Context, salary *payroll.Salary) error {
	result := conn(ctx, r.db).Model(&models.SalaryModel{}).
		Where("id = ?", salary.ID).
		Update("monthly_salary", salary.MonthlySalary)
	if result.Error != nil {
		return fmt.Errorf("failed to update salary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("salary with id %d: %w", salary.ID, payroll.ErrNotFound)
	}
	r.logger.Info("Updated salary of ", salary.Email, " for ", salary.Period)
	return nil
}

func (r *gormSalaryRepository) GetByEmailAndPeriod(ctx context.Context, email, period string) (*payroll.Salary, error) {
	var model models.SalaryModel
	err := conn(ctx, r.db).Where(emailMatches+" AND period = ?", email, period).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("salary of %s for %s: %w", email, period, payroll.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch salary: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSalaryRepository) ListByEmail(ctx context.Context, email string) ([]*payroll.Salary, error) {
	var modelList []*models.SalaryModel
	if err := conn(ctx, r.db).Where(emailMatches, email).Order("period asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch salaries: %w", err)
	}

	domainList := make([]*payroll.Salary, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSalaryRepository) DeleteByEmail(ctx context.Context, email string) error {
	if err := conn(ctx, r.db).Where(emailMatches, email).Delete(&models.SalaryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete salaries: %w", err)
	}
	return nil
}
