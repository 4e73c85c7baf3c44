// Package testutil wires gorm on top of go-sqlmock for repository tests.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormMock struct {
	SQL  *sql.DB
	DB   *gorm.DB
	Mock sqlmock.Sqlmock
}

func NewGormMock(t *testing.T) *GormMock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = sqlDB.Close() })

	return &GormMock{SQL: sqlDB, DB: gdb, Mock: mock}
}
