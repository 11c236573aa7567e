package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	r "github.com/redis/go-redis/v9"

	"github.com/jimlawless/whereami"
	"github.com/myapplevix/store-backend/internal/cfg"
	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/internal/repository/redis/converter"
	"github.com/myapplevix/store-backend/pkg/clients"
	"github.com/myapplevix/store-backend/pkg/e"
	"github.com/myapplevix/store-backend/pkg/logger"
)

// CacheRepo caches the public catalog listings per condition. Misses and
// failures are tolerated: the caller falls back to the database.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetCatalog returns the cached listing for a condition. ok is false on a miss.
func (c *CacheRepo) GetCatalog(ctx context.Context, condition domain.Condition) ([]domain.Product, bool, error) {
	data, err := c.client.Client.Get(ctx, c.catalogKey(condition)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, false, nil // cache miss
		}

		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ProductRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		// A corrupt entry behaves like a miss; drop it so it cannot recur.
		c.logger.Warnf("Catalog cache unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if delErr := c.client.Client.Del(context.Background(), c.catalogKey(condition)).Err(); delErr != nil {
			c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), delErr))
		}

		return nil, false, nil
	}

	return c.conv.ToArrEntity(models), true, nil
}

// SetCatalog caches the listing for a condition with the configured TTL.
func (c *CacheRepo) SetCatalog(ctx context.Context, condition domain.Condition, products []domain.Product) error {
	data, err := json.Marshal(c.conv.ToArrRedisModel(products))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.catalogKey(condition), data, c.cfg.CatalogTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// InvalidateCatalog drops every cached listing. Called after each mutation
// so public pages never serve a state the database no longer holds.
func (c *CacheRepo) InvalidateCatalog(ctx context.Context) error {
	keys := []string{
		c.catalogKey(domain.ConditionNew),
		c.catalogKey(domain.ConditionUsed),
	}

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) catalogKey(condition domain.Condition) string {
	return fmt.Sprintf("catalog:%s", condition)
}
