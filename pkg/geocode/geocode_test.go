package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/domain"
)

type mapCache struct {
	entries map[string]string
}

func newMapCache() *mapCache { return &mapCache{entries: map[string]string{}} }

func (m *mapCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := m.entries[key]; ok {
		return v, nil
	}
	return "", ErrMiss
}

func (m *mapCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.entries[key] = value
	return nil
}

func testAddress() *domain.Address {
	return &domain.Address{
		Street1: "12 Broadway",
		City:    "Croydon",
		State:   "Essex",
		ZipCode: "IG1 1AB",
	}
}

func TestResolve(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("q"), "Croydon")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"latitude":51.559,"longitude":0.0741}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newMapCache(), time.Hour, zap.NewNop())

	coords, err := client.Resolve(context.Background(), testAddress())
	require.NoError(t, err)
	assert.InDelta(t, 51.559, coords.Latitude, 0.0001)
	assert.InDelta(t, 0.0741, coords.Longitude, 0.0001)
	assert.Equal(t, 1, calls)
}

func TestResolveServesSecondLookupFromCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"latitude":51.559,"longitude":0.0741}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newMapCache(), time.Hour, zap.NewNop())

	_, err := client.Resolve(context.Background(), testAddress())
	require.NoError(t, err)

	coords, err := client.Resolve(context.Background(), testAddress())
	require.NoError(t, err)
	assert.InDelta(t, 51.559, coords.Latitude, 0.0001)
	assert.Equal(t, 1, calls)
}

func TestResolveNoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, 0, zap.NewNop())

	_, err := client.Resolve(context.Background(), testAddress())
	assert.Error(t, err)
}

func TestResolveServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, 0, zap.NewNop())

	_, err := client.Resolve(context.Background(), testAddress())
	assert.Error(t, err)
}
