package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avelis/spacetravel/config"
	"github.com/avelis/spacetravel/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds itinerary query results under a shared key prefix so a
// committed write can drop them all at once.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetConnectedPorts(ctx context.Context, portName string) ([]domain.ConnectedPort, error) {
	var ports []domain.ConnectedPort
	if err := c.get(ctx, connectedPortsKey(portName), &ports); err != nil {
		return nil, err
	}
	return ports, nil
}

func (c *RedisCache) SetConnectedPorts(ctx context.Context, portName string, ports []domain.ConnectedPort) error {
	return c.set(ctx, connectedPortsKey(portName), ports)
}

func (c *RedisCache) GetRouteFlights(ctx context.Context, originID, destID int64) ([]domain.RouteFlight, error) {
	var flights []domain.RouteFlight
	if err := c.get(ctx, routeFlightsKey(originID, destID), &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetRouteFlights(ctx context.Context, originID, destID int64, flights []domain.RouteFlight) error {
	return c.set(ctx, routeFlightsKey(originID, destID), flights)
}

// InvalidateItineraries deletes every cached itinerary result. Called after
// each committed write.
func (c *RedisCache) InvalidateItineraries(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *RedisCache) get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *RedisCache) set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

const keyPrefix = "itinerary:"

func connectedPortsKey(portName string) string {
	return keyPrefix + "ports:" + portName
}

func routeFlightsKey(originID, destID int64) string {
	return fmt.Sprintf("%sroute:%d:%d", keyPrefix, originID, destID)
}
