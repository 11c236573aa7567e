package usecase

import (
	"context"
	"time"

	"github.com/myapplevix/store-backend/internal/domain"
)

type ProductRepository interface {
	// Insert persists a new product in the InStock state.
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// MarkSold sets sold_at exactly once. Returns e.ErrProductNotFound when the
	// product does not exist and e.ErrProductAlreadySold when it already left stock.
	MarkSold(ctx context.Context, id string, soldAt time.Time) (*domain.Product, error)
	// Delete removes the record permanently.
	Delete(ctx context.Context, id string) error
	// ListAll returns every product, newest first. Sold items are included.
	ListAll(ctx context.Context) ([]domain.Product, error)
	// ListInStockByCondition returns in-stock products of one condition, cheapest first.
	ListInStockByCondition(ctx context.Context, condition domain.Condition) ([]domain.Product, error)
	// GetByID returns e.ErrProductNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type ConfigRepository interface {
	// Load returns the singleton configuration. A missing row is not an error:
	// an empty configuration is returned instead.
	Load(ctx context.Context) (*domain.StoreConfiguration, error)
	// Save applies a partial update to the singleton row.
	Save(ctx context.Context, patch *ConfigPatch) error
}

type CacheRepository interface {
	// GetCatalog returns the cached public listing for a condition.
	// ok is false on a cache miss.
	GetCatalog(ctx context.Context, condition domain.Condition) (products []domain.Product, ok bool, err error)
	SetCatalog(ctx context.Context, condition domain.Condition, products []domain.Product) error
	// InvalidateCatalog drops all cached listings. Called after every mutation.
	InvalidateCatalog(ctx context.Context) error
}
