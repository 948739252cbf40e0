package models

import "github.com/wisskirchenj/account-reactive/internal/domain/accounts"

// LoginRoleModel is the GORM database model for role assignments
type LoginRoleModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Email string `gorm:"not null;index;type:varchar(255)"`
	Role  string `gorm:"not null;type:varchar(64)"`
}

// TableName specifies the table name for GORM
func (LoginRoleModel) TableName() string {
	return "login_role"
}

// ToDomain converts GORM model to domain entity
func (m *LoginRoleModel) ToDomain() *accounts.LoginRole {
	return &accounts.LoginRole{ID: m.ID, Email: m.Email, Role: m.Role}
}

// FromDomain converts domain entity to GORM model
func (m *LoginRoleModel) FromDomain(r *accounts.LoginRole) {
	m.ID = r.ID
	m.Email = r.Email
	m.Role = r.Role
}

// RoleModel is the GORM database model for system roles
type RoleModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	RoleName string `gorm:"not null;uniqueIndex;type:varchar(64)"`
}

// TableName specifies the table name for GORM
func (RoleModel) TableName() string {
	return "role"
}

// ToDomain converts GORM model to domain entity
func (m *RoleModel) ToDomain() *accounts.Role {
	return &accounts.Role{ID: m.ID, RoleName: m.RoleName}
}

// FromDomain converts domain entity to GORM model
func (m *RoleModel) FromDomain(r *accounts.Role) {
	m.ID = r.ID
	m.RoleName = r.RoleName
}
