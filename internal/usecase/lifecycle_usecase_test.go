package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/pkg/e"
)

func newLifecycleFixture() (*LifecycleUseCase, *productRepoMock, *cacheRepoMock, *producerMock) {
	productRepo := new(productRepoMock)
	cacheRepo := new(cacheRepoMock)
	producer := new(producerMock)
	uc := NewLifecycleUC(productRepo, cacheRepo, producer, nopLogger{})
	return uc, productRepo, cacheRepo, producer
}

func validCreateReq() *CreateProductReq {
	return NewCreateProductReq("iPhone 15 Pro", "4.299,90", "novo", "128GB", "https://cdn.example/p.jpg")
}

func TestLifecycle_Create_Success(t *testing.T) {
	uc, productRepo, cacheRepo, producer := newLifecycleFixture()

	productRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Title == "iPhone 15 Pro" &&
			p.PriceCents == 429_990 &&
			p.Condition == domain.ConditionNew &&
			p.PrimaryPhoto() == "https://cdn.example/p.jpg" &&
			p.SoldAt == nil
	})).Return(&domain.Product{ID: "p1", Title: "iPhone 15 Pro", PriceCents: 429_990, Condition: domain.ConditionNew}, nil)
	cacheRepo.On("InvalidateCatalog", mock.Anything).Return(nil)
	producer.On("Publish", mock.Anything, mock.MatchedBy(func(ev *LifecycleEvent) bool {
		return ev.Type == EventProductCreated && ev.ProductID == "p1"
	})).Return(nil)

	created, err := uc.Create(context.Background(), validCreateReq())

	require.NoError(t, err)
	assert.Equal(t, "p1", created.ID)
	productRepo.AssertExpectations(t)
	cacheRepo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestLifecycle_Create_ValidationRejectsBeforePersistence(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(req *CreateProductReq)
		wantErr error
	}{
		{"empty title", func(r *CreateProductReq) { r.Title = "   " }, e.ErrTitleRequired},
		{"empty price", func(r *CreateProductReq) { r.Price = "" }, e.ErrPriceRequired},
		{"garbage price", func(r *CreateProductReq) { r.Price = "abc" }, e.ErrInvalidPrice},
		{"missing photo", func(r *CreateProductReq) { r.PhotoURL = "" }, e.ErrPhotoRequired},
		{"unknown condition", func(r *CreateProductReq) { r.Condition = "refurbished" }, e.ErrInvalidCondition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, productRepo, cacheRepo, producer := newLifecycleFixture()

			req := validCreateReq()
			tc.mutate(req)

			_, err := uc.Create(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			productRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			cacheRepo.AssertNotCalled(t, "InvalidateCatalog", mock.Anything)
			producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestLifecycle_Create_ConditionDefaultsToUsed(t *testing.T) {
	uc, productRepo, cacheRepo, producer := newLifecycleFixture()

	productRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Condition == domain.ConditionUsed
	})).Return(&domain.Product{ID: "p2", Condition: domain.ConditionUsed}, nil)
	cacheRepo.On("InvalidateCatalog", mock.Anything).Return(nil)
	producer.On("Publish", mock.Anything, mock.Anything).Return(nil)

	req := validCreateReq()
	req.Condition = ""

	_, err := uc.Create(context.Background(), req)

	require.NoError(t, err)
	productRepo.AssertExpectations(t)
}

func TestLifecycle_Sell_StampsCurrentMoment(t *testing.T) {
	uc, productRepo, cacheRepo, producer := newLifecycleFixture()

	frozen := time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC)
	uc.now = func() time.Time { return frozen }

	sold := &domain.Product{ID: "p1", SoldAt: &frozen}
	productRepo.On("MarkSold", mock.Anything, "p1", frozen).Return(sold, nil)
	cacheRepo.On("InvalidateCatalog", mock.Anything).Return(nil)
	producer.On("Publish", mock.Anything, mock.MatchedBy(func(ev *LifecycleEvent) bool {
		return ev.Type == EventProductSold && ev.ProductID == "p1"
	})).Return(nil)

	got, err := uc.Sell(context.Background(), "p1")

	require.NoError(t, err)
	require.NotNil(t, got.SoldAt)
	assert.Equal(t, frozen, *got.SoldAt)
	productRepo.AssertExpectations(t)
}

func TestLifecycle_Sell_AlreadySold(t *testing.T) {
	uc, productRepo, _, producer := newLifecycleFixture()

	productRepo.On("MarkSold", mock.Anything, "p1", mock.Anything).
		Return(nil, e.ErrProductAlreadySold)

	_, err := uc.Sell(context.Background(), "p1")

	assert.ErrorIs(t, err, e.ErrProductAlreadySold)
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestLifecycle_Remove_NotFound(t *testing.T) {
	uc, productRepo, _, producer := newLifecycleFixture()

	productRepo.On("Delete", mock.Anything, "ghost").Return(e.ErrProductNotFound)

	err := uc.Remove(context.Background(), "ghost")

	assert.ErrorIs(t, err, e.ErrProductNotFound)
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestLifecycle_MutationSucceedsDespiteSideEffectFailures(t *testing.T) {
	uc, productRepo, cacheRepo, producer := newLifecycleFixture()

	productRepo.On("Delete", mock.Anything, "p1").Return(nil)
	cacheRepo.On("InvalidateCatalog", mock.Anything).Return(errors.New("redis down"))
	producer.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	err := uc.Remove(context.Background(), "p1")

	assert.NoError(t, err)
}

func TestLifecycle_Dashboard_SummaryMatchesSnapshot(t *testing.T) {
	uc, productRepo, _, _ := newLifecycleFixture()

	soldAt := time.Now()
	products := []domain.Product{
		{ID: "a", Condition: domain.ConditionNew, PriceCents: 100_000, SoldAt: &soldAt},
		{ID: "b", Condition: domain.ConditionUsed, PriceCents: 50_000},
	}
	productRepo.On("ListAll", mock.Anything).Return(products, nil)

	res, err := uc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Len(t, res.Products, 2)
	assert.Equal(t, 1, res.Summary.TotalSold)
	assert.Equal(t, int64(100_000), res.Summary.RevenueCents)
}

func TestParsePriceCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{"4.299,90", 429_990, nil},
		{"1.234.567,89", 123_456_789, nil},
		{"4299.90", 429_990, nil},
		{"600", 60_000, nil},
		{"0,50", 50, nil},
		{" 100 ", 10_000, nil},
		{"", 0, e.ErrPriceRequired},
		{"   ", 0, e.ErrPriceRequired},
		{"abc", 0, e.ErrInvalidPrice},
		{"-10", 0, e.ErrInvalidPrice},
		{"10.999", 0, e.ErrPricePrecision},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePriceCents(tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
