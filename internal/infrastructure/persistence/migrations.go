package persistence

import (
	"context"
	"fmt"

	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

const legacyLoginEmailIndex = "idx_login_email"

// AllModels lists every table of the schema.
func AllModels() []interface{} {
	return []interface{}{
		&models.LoginModel{},
		&models.LoginRoleModel{},
		&models.RoleModel{},
		&models.SalaryModel{},
		&models.SecurityEventModel{},
	}
}

// Migrate brings the schema up to date and seeds the system roles. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// schemas before the case-insensitive index carried a plain one
	migrator := db.WithContext(ctx).Migrator()
	if migrator.HasIndex(&models.LoginModel{}, legacyLoginEmailIndex) {
		if err := migrator.DropIndex(&models.LoginModel{}, legacyLoginEmailIndex); err != nil {
			return fmt.Errorf("failed to drop index %s: %w", legacyLoginEmailIndex, err)
		}
	}

	for _, name := range accounts.SystemRoles {
		role := &models.RoleModel{RoleName: name}
		if err := db.WithContext(ctx).Where(models.RoleModel{RoleName: name}).FirstOrCreate(role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
	}
	return nil
}
