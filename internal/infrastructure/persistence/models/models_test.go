//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/domain/payroll"
)

func TestLoginModel_DropsRoles(t *testing.T) {
	login := &accounts.Login{
		ID:            3,
		Name:          "Max",
		Lastname:      "Mustermann",
		Email:         "Max@acme.com",
		Password:      "$2a$07$hash",
		FailedLogins:  2,
		AccountLocked: true,
		Roles:         []string{accounts.RoleUser},
	}

	var model LoginModel
	model.FromDomain(login)
	back := model.ToDomain()

	assert.Nil(t, back.Roles)
	back.Roles = login.Roles
	assert.Equal(t, login, back)
	assert.Equal(t, "login", model.TableName())
}

func TestSalaryModel_KeepsYearFirstPeriod(t *testing.T) {
	var model SalaryModel
	model.FromDomain(&payroll.Salary{Email: "max@acme.com", Period: "2022-07", MonthlySalary: 7025})

	assert.Equal(t, "2022-07", model.Period)
	assert.Equal(t, int64(7025), model.ToDomain().MonthlySalary)
}

func TestSecurityEventModel_DateAsText(t *testing.T) {
	event := &audit.SecurityEvent{
		ID:      1,
		Date:    time.Date(2022, time.August, 1, 0, 0, 0, 0, time.UTC),
		Action:  audit.ActionLockUser,
		Subject: "admin@acme.com",
		Object:  "Lock user max@acme.com",
		Path:    "/api/admin/user/access",
	}

	var model SecurityEventModel
	model.FromDomain(event)

	assert.Equal(t, "2022-08-01", model.Date)
	assert.Equal(t, event, model.ToDomain())
}
