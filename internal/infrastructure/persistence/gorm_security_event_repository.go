package persistence

import (
	"context"
	"fmt"

	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

type gormSecurityEventRepository struct {
	db *gorm.DB
}

// NewGormSecurityEventRepository creates a new GORM-based SecurityEventRepository implementation
func NewGormSecurityEventRepository(db *gorm.DB) (audit.SecurityEventRepository, error) {
	return &gormSecurityEventRepository{db: db}, nil
}

func (r *gormSecurityEventRepository) Create(ctx context.Context, event *audit.SecurityEvent) error {
	model := &models.SecurityEventModel{}
	model.FromDomain(event)

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create security event: %w", err)
	}
	event.ID = model.ID
	return nil
}

func (r *gormSecurityEventRepository) List(ctx context.Context) ([]*audit.SecurityEvent, error) {
	var modelList []*models.SecurityEventModel
	if err := conn(ctx, r.db).Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch security events: %w", err)
	}

	domainList := make([]*audit.SecurityEvent, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
