package usecase

import (
	"context"

	"github.com/myapplevix/store-backend/internal/domain"
)

type LifecycleUC interface {
	Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	Sell(ctx context.Context, id string) (*domain.Product, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Product, error)
	Dashboard(ctx context.Context) (*DashboardRes, error)
}

type CatalogUC interface {
	ListByCondition(ctx context.Context, condition domain.Condition) (*CatalogPageRes, error)
	GetByID(ctx context.Context, id string) (*ProductPageRes, error)
}

type ConfigUC interface {
	Load(ctx context.Context) (*domain.StoreConfiguration, error)
	Save(ctx context.Context, patch *ConfigPatch) error
	ReplaceLogo(ctx context.Context, data []byte, contentType string) (string, error)
}
