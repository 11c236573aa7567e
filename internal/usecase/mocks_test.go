package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/myapplevix/store-backend/internal/domain"
)

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Infof(format string, args ...any) {}
func (nopLogger) Warnf(format string, args ...any) {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) MarkSold(ctx context.Context, id string, soldAt time.Time) (*domain.Product, error) {
	args := m.Called(ctx, id, soldAt)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *productRepoMock) ListAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *productRepoMock) ListInStockByCondition(ctx context.Context, condition domain.Condition) ([]domain.Product, error) {
	args := m.Called(ctx, condition)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *productRepoMock) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

type configRepoMock struct{ mock.Mock }

func (m *configRepoMock) Load(ctx context.Context) (*domain.StoreConfiguration, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(*domain.StoreConfiguration)
	return c, args.Error(1)
}

func (m *configRepoMock) Save(ctx context.Context, patch *ConfigPatch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

type cacheRepoMock struct{ mock.Mock }

func (m *cacheRepoMock) GetCatalog(ctx context.Context, condition domain.Condition) ([]domain.Product, bool, error) {
	args := m.Called(ctx, condition)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Bool(1), args.Error(2)
}

func (m *cacheRepoMock) SetCatalog(ctx context.Context, condition domain.Condition, products []domain.Product) error {
	args := m.Called(ctx, condition, products)
	return args.Error(0)
}

func (m *cacheRepoMock) InvalidateCatalog(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type producerMock struct{ mock.Mock }

func (m *producerMock) Publish(ctx context.Context, event *LifecycleEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type uploaderMock struct{ mock.Mock }

func (m *uploaderMock) UploadPhoto(ctx context.Context, data []byte, contentType string) (*UploadRes, error) {
	args := m.Called(ctx, data, contentType)
	res, _ := args.Get(0).(*UploadRes)
	return res, args.Error(1)
}

func (m *uploaderMock) UploadLogo(ctx context.Context, data []byte, contentType string) (*UploadRes, error) {
	args := m.Called(ctx, data, contentType)
	res, _ := args.Get(0).(*UploadRes)
	return res, args.Error(1)
}

func (m *uploaderMock) CleanupImages(keys []string) {
	m.Called(keys)
}
