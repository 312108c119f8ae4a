package store

import (
	"bitwise74/visitor-api/db"
	"bitwise74/visitor-api/internal/model"
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visitor() *model.Visitor {
	return &model.Visitor{
		IP:      "1.2.3.4",
		Country: "US",
		City:    "Unknown",
		Device:  "desktop",
		Browser: "Chrome",
		OS:      "Windows",
	}
}

func newSQLite(t *testing.T) *SQL {
	t.Helper()

	conn, err := db.NewSQL(db.DriverSQLite, filepath.Join(t.TempDir(), "visitors.db"))
	require.NoError(t, err)

	s := NewSQL(conn)
	t.Cleanup(func() { s.Close(context.Background()) })
	return s
}

func stores(t *testing.T) map[string]VisitorStore {
	return map[string]VisitorStore{
		"memory": NewMemory(),
		"sqlite": newSQLite(t),
	}
}

func assertNewestFirst(t *testing.T, visitors []model.Visitor) {
	t.Helper()

	for i := 1; i < len(visitors); i++ {
		assert.False(t, visitors[i].Timestamp.After(visitors[i-1].Timestamp),
			"record %d is newer than record %d", i, i-1)
	}
}

func TestInsertAssignsIDAndTimestamp(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			v := visitor()
			require.NoError(t, s.Insert(context.Background(), v))

			assert.Len(t, v.ID, 16)
			assert.False(t, v.Timestamp.IsZero())

			list, err := s.List(context.Background())
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, v.ID, list[0].ID)
			assert.True(t, list[0].Complete())
		})
	}
}

func TestInsertRejectsIncompleteRecords(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			v := visitor()
			v.OS = ""

			err := s.Insert(context.Background(), v)
			assert.ErrorIs(t, err, ErrIncompleteRecord)

			list, err := s.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := rand.New(rand.NewSource(42))

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for range 25 {
				v := visitor()
				v.Timestamp = base.Add(time.Duration(r.Intn(10_000)) * time.Second)
				require.NoError(t, s.Insert(context.Background(), v))
			}

			list, err := s.List(context.Background())
			require.NoError(t, err)
			require.Len(t, list, 25)
			assertNewestFirst(t, list)
		})
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			list, err := s.List(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, list)
			assert.Empty(t, list)
		})
	}
}

func TestMemoryFailWith(t *testing.T) {
	m := NewMemory()
	m.FailWith = errors.New("disk on fire")

	assert.EqualError(t, m.Insert(context.Background(), visitor()), "disk on fire")
	assert.Equal(t, 0, m.Len())

	_, err := m.List(context.Background())
	assert.Error(t, err)
}

func TestMemoryTiesKeepLatestInsertFirst(t *testing.T) {
	m := NewMemory()
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	first, second := visitor(), visitor()
	first.Timestamp, second.Timestamp = ts, ts
	require.NoError(t, m.Insert(context.Background(), first))
	require.NoError(t, m.Insert(context.Background(), second))

	list, err := m.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.ID, list[0].ID)
}
