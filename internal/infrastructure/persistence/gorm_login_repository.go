package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/persistence/models"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"

	"gorm.io/gorm"
)

const emailMatches = "LOWER(email) = LOWER(?)"

type gormLoginRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLoginRepository creates a new GORM-based LoginRepository implementation
func NewGormLoginRepository(db *gorm.DB, logger logger.Logger) (accounts.LoginRepository, error) {
	return &gormLoginRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormLoginRepository) Create(ctx context.Context, login *accounts.Login) error {
	model := &models.LoginModel{}
	model.FromDomain(login)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("login %s: %w", login.Email, accounts.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create login: %w", err)
	}

	login.ID = model.ID
	r.logger.Info("Created login with id ", login.ID)
	return nil
}

func (r *gormLoginRepository) Update(ctx context.Context, login *accounts.Login) error {
	result := conn(ctx, r.db).Model(&models.LoginModel{}).
		Where("id = ?", login.ID).
		Updates(map[string]interface{}{
			"name":           login.Name,
			"lastname":       login.Lastname,
			"password":       login.Password,
			"failed_logins":  login.FailedLogins,
			"account_locked": login.AccountLocked,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("login with id %d: %w", login.ID, accounts.ErrNotFound)
	}
	return nil
}

func (r *gormLoginRepository) GetByEmail(ctx context.Context, email string) (*accounts.Login, error) {
	var model models.LoginModel
	if err := conn(ctx, r.db).Where(emailMatches, email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("login %s: %w", email, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch login: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormLoginRepository) List(ctx context.Context) ([]*accounts.Login, error) {
	var modelList []*models.LoginModel
	if err := conn(ctx, r.db).Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch logins: %w", err)
	}

	domainList := make([]*accounts.Login, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormLoginRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.LoginModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count logins: %w", err)
	}
	return count, nil
}

func (r *gormLoginRepository) DeleteByEmail(ctx context.Context, email string) error {
	if err := conn(ctx, r.db).Where(emailMatches, email).Delete(&models.LoginModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete login: %w", err)
	}
	r.logger.Info("Deleted login ", email)
	return nil
}

func (r *gormLoginRepository) SetLocked(ctx context.Context, email string, locked bool) error {
	updates := map[string]interface{}{"account_locked": locked}
	if !locked {
		updates["failed_logins"] = 0
	}
	return r.update(ctx, email, updates)
}

func (r *gormLoginRepository) SetFailedLogins(ctx context.Context, email string, failedLogins int) error {
	return r.update(ctx, email, map[string]interface{}{"failed_logins": failedLogins})
}

func (r *gormLoginRepository) update(ctx context.Context, email string, updates map[string]interface{}) error {
	result := conn(ctx, r.db).Model(&models.LoginModel{}).Where(emailMatches, email).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("login %s: %w", email, accounts.ErrNotFound)
	}
	return nil
}
