package database

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// InTransaction reports whether ctx already carries an open transaction.
// Store methods called with such a context join it instead of opening a
// second connection, which SQLite's single-connection pool would block on.
func InTransaction(ctx context.Context) bool {
	return txFromContext(ctx) != nil
}

func txFromContext(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txKey{}).(*gorm.DB)
	return tx
}

func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// getDBFromContext returns the transaction carried by ctx, or db bound to ctx
func getDBFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}
