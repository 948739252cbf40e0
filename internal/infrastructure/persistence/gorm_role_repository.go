package persistence

import (
	"context"
	"fmt"

	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/persistence/models"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormLoginRoleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLoginRoleRepository creates a new GORM-based LoginRoleRepository implementation
func NewGormLoginRoleRepository(db *gorm.DB, logger logger.Logger) (accounts.LoginRoleRepository, error) {
	return &gormLoginRoleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormLoginRoleRepository) Create(ctx context.Context, loginRole *accounts.LoginRole) error {
	model := &models.LoginRoleModel{}
	model.FromDomain(loginRole)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create login role: %w", err)
	}

	loginRole.ID = model.ID
	r.logger.Info("Assigned role ", loginRole.Role, " to ", loginRole.Email)
	return nil
}

func (r *gormLoginRoleRepository) RolesByEmail(ctx context.Context, email string) ([]string, error) {
	var roles []string
	err := conn(ctx, r.db).Model(&models.LoginRoleModel{}).
		Where(emailMatches, email).
		Order("id asc").
		Pluck("role", &roles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}
	return roles, nil
}

func (r *gormLoginRoleRepository) DeleteByEmail(ctx context.Context, email string) error {
	if err := conn(ctx, r.db).Where(emailMatches, email).Delete(&models.LoginRoleModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete login roles: %w", err)
	}
	return nil
}

func (r *gormLoginRoleRepository) DeleteByEmailAndRole(ctx context.Context, email, role string) error {
	err := conn(ctx, r.db).
		Where(emailMatches+" AND role = ?", email, role).
		Delete(&models.LoginRoleModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete login role: %w", err)
	}
	r.logger.Info("Removed role ", role, " from ", email)
	return nil
}

type gormRoleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRoleRepository creates a new GORM-based RoleRepository implementation
func NewGormRoleRepository(db *gorm.DB, logger logger.Logger) (accounts.RoleRepository, error) {
	return &gormRoleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRoleRepository) List(ctx context.Context) ([]*accounts.Role, error) {
	var modelList []*models.RoleModel
	if err := conn(ctx, r.db).Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch roles: %w", err)
	}

	domainList := make([]*accounts.Role, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormRoleRepository) Create(ctx context.Context, role *accounts.Role) error {
	model := &models.RoleModel{}
	model.FromDomain(role)

	result := conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to create role: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		role.ID = model.ID
		r.logger.Info("Created role ", role.RoleName)
	}
	return nil
}
