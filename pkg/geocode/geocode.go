package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/domain"
)

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type geocodeResponse struct {
	Results []Coordinates `json:"results"`
}

// Client resolves postal addresses to coordinates via an external geocoding
// service, with a read-through cache in front. Resolution failures are
// returned to the caller, which treats the address as ungeocoded; a failed
// lookup never blocks matching.
type Client struct {
	httpClient *resty.Client
	cache      Cache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewClient builds a geocoding client against the given base URL. A nil
// cache disables caching.
func NewClient(baseURL string, cache Cache, cacheTTL time.Duration, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// Resolve returns coordinates for the address, serving from cache when the
// same normalized address was resolved before.
func (c *Client) Resolve(ctx context.Context, addr *domain.Address) (*Coordinates, error) {
	if addr == nil {
		return nil, fmt.Errorf("geocode: nil address")
	}
	key := cacheKey(addr)

	if c.cache != nil {
		cached, err := c.cache.Get(ctx, key)
		if err == nil {
			var coords Coordinates
			if err := json.Unmarshal([]byte(cached), &coords); err == nil {
				return &coords, nil
			}
			c.logger.Warn("Discarding malformed geocode cache entry", zap.String("key", key))
		} else if err != ErrMiss {
			c.logger.Warn("Geocode cache read failed", zap.Error(err))
		}
	}

	var response geocodeResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("q", addressQuery(addr)).
		SetResult(&response).
		Get("/v1/search")
	if err != nil {
		c.logger.Error("Geocoding request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to call geocoding service: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("Geocoding service returned error",
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("geocoding service error: status %d", resp.StatusCode())
	}
	if len(response.Results) == 0 {
		return nil, fmt.Errorf("geocode: no result for %q", addressQuery(addr))
	}

	coords := response.Results[0]
	if c.cache != nil {
		encoded, _ := json.Marshal(coords)
		if err := c.cache.Set(ctx, key, string(encoded), c.cacheTTL); err != nil {
			c.logger.Warn("Geocode cache write failed", zap.Error(err))
		}
	}
	return &coords, nil
}

func addressQuery(addr *domain.Address) string {
	parts := []string{addr.Street1, addr.City, addr.State, addr.ZipCode}
	if addr.Street2 != "" {
		parts = append([]string{addr.Street1, addr.Street2}, parts[1:]...)
	}
	return strings.Join(parts, ", ")
}

func cacheKey(addr *domain.Address) string {
	return "geocode:" + strings.ToLower(strings.ReplaceAll(addressQuery(addr), " ", ""))
}
