package geoip

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceMissingDatabase(t *testing.T) {
	_, err := NewService(filepath.Join(t.TempDir(), "GeoLite2-City.mmdb"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open city database")
}

func TestNoopAlwaysMisses(t *testing.T) {
	_, ok := Noop{}.Locate("8.8.8.8")
	assert.False(t, ok)
}

func TestStatic(t *testing.T) {
	s := Static{"8.8.8.8": {Country: "US", City: "Mountain View"}}

	loc, ok := s.Locate("8.8.8.8")
	require.True(t, ok)
	assert.Equal(t, "US", loc.Country)

	_, ok = s.Locate("127.0.0.1")
	assert.False(t, ok)
}

func TestServiceRejectsInvalidIP(t *testing.T) {
	s := &Service{}
	_, ok := s.Locate("not-an-ip")
	assert.False(t, ok)
	assert.NoError(t, s.Close())
}
