//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/domain/audit"
	"github.com/wisskirchenj/account-reactive/internal/domain/payroll"
	"github.com/wisskirchenj/account-reactive/internal/domain/transaction"
	"github.com/wisskirchenj/account-reactive/internal/pkg/config"
	"github.com/wisskirchenj/account-reactive/internal/pkg/testutil"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	Transactor    transaction.Transactor
	LoginRepo     accounts.LoginRepository
	LoginRoleRepo accounts.LoginRoleRepository
	RoleRepo      accounts.RoleRepository
	SalaryRepo    payroll.SalaryRepository
	EventRepo     audit.SecurityEventRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	log := testutil.SetupTestLogger(t)

	db, err := NewDBConnection(settings, log)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(context.Background(), db), "Failed to migrate schema")

	loginRepo, err := NewGormLoginRepository(db, log)
	require.NoError(t, err)
	loginRoleRepo, err := NewGormLoginRoleRepository(db, log)
	require.NoError(t, err)
	roleRepo, err := NewGormRoleRepository(db, log)
	require.NoError(t, err)
	salaryRepo, err := NewGormSalaryRepository(db, log)
	require.NoError(t, err)
	eventRepo, err := NewGormSecurityEventRepository(db)
	require.NoError(t, err)

	return &TestContext{
		DB:            db,
		Transactor:    NewGormTransactor(db),
		LoginRepo:     loginRepo,
		LoginRoleRepo: loginRoleRepo,
		RoleRepo:      roleRepo,
		SalaryRepo:    salaryRepo,
		EventRepo:     eventRepo,
	}
}

// CreateTestLogin stores a login with the given roles
func CreateTestLogin(t *testing.T, tc *TestContext, email string, roles ...string) *accounts.Login {
	t.Helper()

	ctx := context.Background()
	login := &accounts.Login{
		Name:     "Max",
		Lastname: "Mustermann",
		Email:    email,
		Password: "$2a$07$notarealhashbutlongenough",
	}
	require.NoError(t, tc.LoginRepo.Create(ctx, login))

	for _, role := range roles {
		require.NoError(t, tc.LoginRoleRepo.Create(ctx, &accounts.LoginRole{Email: email, Role: role}))
	}
	login.Roles = roles
	return login
}
