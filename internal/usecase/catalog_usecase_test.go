package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/pkg/e"
)

func newCatalogFixture() (*CatalogUseCase, *productRepoMock, *configRepoMock, *cacheRepoMock) {
	productRepo := new(productRepoMock)
	configRepo := new(configRepoMock)
	cacheRepo := new(cacheRepoMock)
	uc := NewCatalogUC(productRepo, configRepo, cacheRepo, nopLogger{})
	return uc, productRepo, configRepo, cacheRepo
}

func TestContactLink_MatchesEncodeURIComponent(t *testing.T) {
	link := ContactLink("5511999998888", "Olá, vi o anúncio do *iPhone 15 Pro* e queria saber mais detalhes.")

	assert.Equal(t,
		"https://wa.me/5511999998888?text=Ol%C3%A1%2C%20vi%20o%20an%C3%BAncio%20do%20*iPhone%2015%20Pro*%20e%20queria%20saber%20mais%20detalhes.",
		link,
	)
}

func TestEncodeURIComponent_KeepsJSUnreservedSet(t *testing.T) {
	// characters url.QueryEscape would handle differently
	assert.Equal(t, "!~*'()", encodeURIComponent("!~*'()"))
	assert.Equal(t, "a%20b", encodeURIComponent("a b"))
	assert.Equal(t, "50%25", encodeURIComponent("50%"))
	assert.Equal(t, "a%2Bb%3Dc", encodeURIComponent("a+b=c"))
}

func TestCatalog_ListByCondition_InvalidCondition(t *testing.T) {
	uc, productRepo, _, _ := newCatalogFixture()

	_, err := uc.ListByCondition(context.Background(), "recondicionado")

	assert.ErrorIs(t, err, e.ErrInvalidCondition)
	productRepo.AssertNotCalled(t, "ListInStockByCondition", mock.Anything, mock.Anything)
}

func TestCatalog_ListByCondition_CacheMissFallsThrough(t *testing.T) {
	uc, productRepo, configRepo, cacheRepo := newCatalogFixture()

	products := []domain.Product{
		{ID: "cheap", Title: "iPhone 12", PriceCents: 150_000, Condition: domain.ConditionUsed},
		{ID: "mid", Title: "iPhone 13", PriceCents: 250_000, Condition: domain.ConditionUsed},
	}

	cacheRepo.On("GetCatalog", mock.Anything, domain.ConditionUsed).Return(nil, false, nil)
	cacheRepo.On("SetCatalog", mock.Anything, domain.ConditionUsed, products).Return(nil).Maybe()
	productRepo.On("ListInStockByCondition", mock.Anything, domain.ConditionUsed).Return(products, nil)
	configRepo.On("Load", mock.Anything).Return(&domain.StoreConfiguration{ContactNumber: "5511999998888"}, nil)

	res, err := uc.ListByCondition(context.Background(), domain.ConditionUsed)

	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "cheap", res.Items[0].Product.ID)
	assert.Equal(t, "5511999998888", res.ContactNumber)
	assert.Contains(t, res.Items[0].ContactLink, "https://wa.me/5511999998888?text=")
	assert.Contains(t, res.Items[0].ContactLink, "iPhone%2012")
	productRepo.AssertExpectations(t)
}

func TestCatalog_ListByCondition_CacheHitSkipsDatabase(t *testing.T) {
	uc, productRepo, configRepo, cacheRepo := newCatalogFixture()

	cached := []domain.Product{{ID: "c1", Title: "iPhone 14", Condition: domain.ConditionNew}}
	cacheRepo.On("GetCatalog", mock.Anything, domain.ConditionNew).Return(cached, true, nil)
	configRepo.On("Load", mock.Anything).Return(&domain.StoreConfiguration{}, nil)

	res, err := uc.ListByCondition(context.Background(), domain.ConditionNew)

	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "c1", res.Items[0].Product.ID)
	productRepo.AssertNotCalled(t, "ListInStockByCondition", mock.Anything, mock.Anything)
}

func TestCatalog_ListByCondition_CacheErrorDegradesToDirectRead(t *testing.T) {
	uc, productRepo, configRepo, cacheRepo := newCatalogFixture()

	cacheRepo.On("GetCatalog", mock.Anything, domain.ConditionNew).Return(nil, false, errors.New("redis down"))
	cacheRepo.On("SetCatalog", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	productRepo.On("ListInStockByCondition", mock.Anything, domain.ConditionNew).Return([]domain.Product{}, nil)
	configRepo.On("Load", mock.Anything).Return(&domain.StoreConfiguration{}, nil)

	res, err := uc.ListByCondition(context.Background(), domain.ConditionNew)

	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestCatalog_ListByCondition_FallbackNumberWhenUnconfigured(t *testing.T) {
	uc, productRepo, configRepo, cacheRepo := newCatalogFixture()

	cacheRepo.On("GetCatalog", mock.Anything, domain.ConditionNew).Return(nil, false, nil)
	cacheRepo.On("SetCatalog", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	productRepo.On("ListInStockByCondition", mock.Anything, domain.ConditionNew).
		Return([]domain.Product{{ID: "p", Title: "iPhone"}}, nil)
	configRepo.On("Load", mock.Anything).Return(&domain.StoreConfiguration{}, nil)

	res, err := uc.ListByCondition(context.Background(), domain.ConditionNew)

	require.NoError(t, err)
	assert.Equal(t, domain.FallbackContactNumber, res.ContactNumber)
	assert.Contains(t, res.Items[0].ContactLink, "https://wa.me/"+domain.FallbackContactNumber)
}

func TestCatalog_GetByID(t *testing.T) {
	uc, productRepo, configRepo, _ := newCatalogFixture()

	logo := "https://cdn.example/logo.png"
	productRepo.On("GetByID", mock.Anything, "p1").
		Return(&domain.Product{ID: "p1", Title: "iPhone 15"}, nil)
	configRepo.On("Load", mock.Anything).
		Return(&domain.StoreConfiguration{ContactNumber: "5511999998888", LogoURL: &logo}, nil)

	res, err := uc.GetByID(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", res.Product.ID)
	assert.Equal(t, &logo, res.LogoURL)
	assert.Contains(t, res.ContactLink, "iPhone%2015")
	assert.Contains(t, res.ContactLink, "interesse")
}

func TestCatalog_GetByID_NotFound(t *testing.T) {
	uc, productRepo, _, _ := newCatalogFixture()

	productRepo.On("GetByID", mock.Anything, "ghost").Return(nil, e.ErrProductNotFound)

	_, err := uc.GetByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}
