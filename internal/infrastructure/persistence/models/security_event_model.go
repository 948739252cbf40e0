package models

import (
	"time"

	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
)

// SecurityEventModel is the GORM database model for the audit log.
// Date is kept as yyyy-mm-dd text, which every supported driver round-trips unchanged.
type SecurityEventModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Date    string `gorm:"not null;type:varchar(10)"`
	Action  string `gorm:"not null;type:varchar(32)"`
	Subject string `gorm:"not null;type:varchar(255)"`
	Object  string `gorm:"not null;type:varchar(255)"`
	Path    string `gorm:"not null;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (SecurityEventModel) TableName() string {
	return "audit"
}

// ToDomain converts GORM model to domain entity
func (m *SecurityEventModel) ToDomain() *audit.SecurityEvent {
	date, _ := time.Parse(audit.DateLayout, m.Date)
	return &audit.SecurityEvent{
		ID:      m.ID,
		Date:    date,
		Action:  m.Action,
		Subject: m.Subject,
		Object:  m.Object,
		Path:    m.Path,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SecurityEventModel) FromDomain(e *audit.SecurityEvent) {
	m.ID = e.ID
	m.Date = e.Date.Format(audit.DateLayout)
	m.Action = e.Action
	m.Subject = e.Subject
	m.Object = e.Object
	m.Path = e.Path
}
