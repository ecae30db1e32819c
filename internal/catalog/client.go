// Package catalog is an HTTP client for the external room catalog
// service, with optional Redis read-through caching.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"stayline/internal/models"
)

// Client calls the room catalog REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	redis    *redis.Client
	cacheTTL time.Duration
}

// NewClient constructs a client with baseURL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// UseRedisCache configures optional Redis caching for GET endpoints.
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	c.cacheTTL = ttl
}

// ListRooms returns the room-type offers for a hotel.
func (c *Client) ListRooms(ctx context.Context, hotelID string) ([]models.RoomTypeOffer, error) {
	endpoint := fmt.Sprintf("%s/api/v1/hotels/%s/rooms", c.baseURL, url.PathEscape(hotelID))
	cacheKey := fmt.Sprintf("rooms:%s", hotelID)
	var wrap struct {
		Rooms []models.RoomTypeOffer `json:"rooms"`
	}

	if c.readCache(ctx, cacheKey, &wrap) {
		return wrap.Rooms, nil
	}

	if err := c.doGet(ctx, endpoint, &wrap); err != nil {
		return nil, err
	}
	c.writeCache(ctx, cacheKey, wrap)
	return wrap.Rooms, nil
}

// GetRoom returns a single room-type offer, resolved through ListRooms
// so the cache is shared.
func (c *Client) GetRoom(ctx context.Context, hotelID, roomTypeID string) (*models.RoomTypeOffer, error) {
	rooms, err := c.ListRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == roomTypeID {
			return &rooms[i], nil
		}
	}
	return nil, fmt.Errorf("room type %s not found for hotel %s", roomTypeID, hotelID)
}

func (c *Client) readCache(ctx context.Context, key string, out any) bool {
	if c.redis == nil || c.cacheTTL <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

func (c *Client) writeCache(ctx context.Context, key string, v any) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.redis.Set(ctx, key, data, c.cacheTTL)
}

func (c *Client) doGet(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
