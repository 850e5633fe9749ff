package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/segyhp/travel-crm/pkg/errors"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const cacheVersionKey = "crm:cache:version"

// Cache is a Redis backed JSON cache whose keys carry a global version.
// A nil client turns it into a pass-through to the loader.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: logger}
}

func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Version returns the current cache version, initialising it when missing
func (c *Cache) Version(ctx context.Context) (int64, error) {
	if c.client == nil {
		return 0, nil
	}
	ver, err := c.client.Get(ctx, cacheVersionKey).Int64()
	if errors.Is(err, redis.Nil) || (err == nil && ver <= 0) {
		if err := c.client.SetNX(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, apperrors.WrapCacheError(err)
		}
		return c.client.Get(ctx, cacheVersionKey).Int64()
	}
	if err != nil {
		return 0, apperrors.WrapCacheError(err)
	}
	return ver, nil
}

func (c *Cache) BuildKey(ctx context.Context, parts ...string) (string, error) {
	joined := strings.Join(append([]string{"crm"}, parts...), ":")
	if c.client == nil {
		return joined, nil
	}
	ver, err := c.Version(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:v%d", joined, ver), nil
}

func (c *Cache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return errors.New("cache: loader required")
	}

	if c.client != nil {
		payload, err := c.client.Get(ctx, key).Bytes()
		if err == nil {
			return json.Unmarshal(payload, dest)
		}
		if !errors.Is(err, redis.Nil) {
			return apperrors.WrapCacheError(err)
		}
	}

	value, err := loader(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if c.client != nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.logger.WithError(err).WithField("key", key).Warn("failed to store cached value")
		}
	}
	return json.Unmarshal(raw, dest)
}

func (c *Cache) Bump(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Incr(ctx, cacheVersionKey).Err(); err != nil {
		return apperrors.WrapCacheError(err)
	}
	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}
