package persistence

import (
	"context"

	"github.com/wisskirchenj/account-reactive/internal/domain/transaction"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/telemetry"

	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
)

type txKey struct{}

type gormTransactor struct {
	db *gorm.DB
}

// NewGormTransactor creates a Transactor on top of db
func NewGormTransactor(db *gorm.DB) transaction.Transactor {
	return &gormTransactor{db: db}
}

// WithinTransaction joins a transaction already carried by ctx instead of
// nesting one. AfterCommit hooks run once the outermost transaction commits.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	ctx, span := telemetry.Tracer().Start(ctx, "db.transaction")
	defer span.End()

	ctx, hooks, owner := transaction.WithCommitHooks(ctx)
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if owner {
		hooks.Run()
	}
	return nil
}

// conn returns the transaction of ctx if there is one, db otherwise.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
