// Package dbtx lets gorm repositories join a transaction that was opened on
// the underlying *sql.DB by a service.
package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a session of db whose statements run on tx. The session gets
// its own statement so the root handle keeps using the pool.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	txDB := db.Session(&gorm.Session{
		NewDB:                  true,
		Context:                context.Background(),
		SkipDefaultTransaction: true,
	})
	txDB.Statement.ConnPool = tx
	return txDB
}
