package models

import "github.com/wisskirchenj/account-reactive/internal/domain/accounts"

// LoginEmailIndex makes emails unique regardless of case.
const LoginEmailIndex = "idx_login_email_lower"

// LoginModel is the GORM database model for logins
type LoginModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"not null;type:varchar(255)"`
	Lastname      string `gorm:"not null;type:varchar(255)"`
	Email         string `gorm:"not null;type:varchar(255);uniqueIndex:idx_login_email_lower,expression:lower(email)"`
	Password      string `gorm:"not null;type:varchar(255)"`
	FailedLogins  int    `gorm:"not null;default:0"`
	AccountLocked bool   `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (LoginModel) TableName() string {
	return "login"
}

// ToDomain converts GORM model to domain entity. Roles are not part of the row.
func (m *LoginModel) ToDomain() *accounts.Login {
	return &accounts.Login{
		ID:            m.ID,
		Name:          m.Name,
		Lastname:      m.Lastname,
		Email:         m.Email,
		Password:      m.Password,
		FailedLogins:  m.FailedLogins,
		AccountLocked: m.AccountLocked,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LoginModel) FromDomain(l *accounts.Login) {
	m.ID = l.ID
	m.Name = l.Name
	m.Lastname = l.Lastname
	m.Email = l.Email
	m.Password = l.Password
	m.FailedLogins = l.FailedLogins
	m.AccountLocked = l.AccountLocked
}
