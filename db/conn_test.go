package db

import (
	"context"
	"path/filepath"
	"testing"

	"bitwise74/visitor-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteMigratesVisitors(t *testing.T) {
	conn, err := NewSQL(DriverSQLite, filepath.Join(t.TempDir(), "visitors.db"))
	require.NoError(t, err)

	assert.True(t, conn.Migrator().HasTable(&model.Visitor{}))
}

func TestNewSQLRejectsUnknownDriver(t *testing.T) {
	_, err := NewSQL("oracle", "")
	assert.Error(t, err)
}

func TestNewSQLPostgresNeedsDSN(t *testing.T) {
	_, err := NewSQL(DriverPostgres, "")
	assert.EqualError(t, err, "postgres requires a connection string")
}

func TestNewMongoNeedsURI(t *testing.T) {
	_, err := NewMongo(context.Background(), "", "visitors")
	assert.EqualError(t, err, "mongo requires a connection string")
}
