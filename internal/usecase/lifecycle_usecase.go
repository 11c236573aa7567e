package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/pkg/e"
	"github.com/myapplevix/store-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// LifecycleUseCase is the source of truth for the product lifecycle:
// InStock -> Sold -> (deleted). Every successful mutation invalidates the
// public catalog cache and publishes a lifecycle event; both are
// best-effort and only logged on failure.
type LifecycleUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	producer    EventProducer
	logger      logger.Logger
	now         func() time.Time
}

func NewLifecycleUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	producer EventProducer,
	logger logger.Logger,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		producer:    producer,
		logger:      logger,
		now:         time.Now,
	}
}

// Create validates the form and inserts a new InStock product. Validation
// failures are rejected outright: no persistence call happens. The photo
// must already be uploaded; only its URL is persisted here.
func (l *LifecycleUseCase) Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "LifecycleUseCase.Create"

	priceCents, condition, err := l.validateCreate(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(
		uuid.NewString(),
		strings.TrimSpace(req.Title),
		priceCents,
		condition,
		req.PhotoURL,
		req.Description,
	)

	created, err := l.productRepo.Insert(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	l.afterMutation(ctx, op, EventProductCreated, created.ID)

	return created, nil
}

// Sell moves a product to the Sold state. The transition happens exactly
// once: selling an already-sold product is an error, never an overwrite of
// the original sale timestamp.
func (l *LifecycleUseCase) Sell(ctx context.Context, id string) (*domain.Product, error) {
	const op = "LifecycleUseCase.Sell"

	sold, err := l.productRepo.MarkSold(ctx, id, l.now())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	l.afterMutation(ctx, op, EventProductSold, sold.ID)

	return sold, nil
}

// Remove deletes the record permanently. The confirmation gate lives
// upstream in the notification coordinator; once called, removal is
// unconditional.
func (l *LifecycleUseCase) Remove(ctx context.Context, id string) error {
	const op = "LifecycleUseCase.Remove"

	if err := l.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	l.afterMutation(ctx, op, EventProductRemoved, id)

	return nil
}

// List returns the full product set, newest first. Sold items are included
// since the dashboard shows both states.
func (l *LifecycleUseCase) List(ctx context.Context) ([]domain.Product, error) {
	const op = "LifecycleUseCase.List"

	products, err := l.productRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// Dashboard re-fetches the product set and derives the sales summary from
// that same snapshot, so the two can never disagree.
func (l *LifecycleUseCase) Dashboard(ctx context.Context) (*DashboardRes, error) {
	products, err := l.List(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardRes{
		Products: products,
		Summary:  Summarize(products),
	}, nil
}

// afterMutation invalidates the public cache and publishes the lifecycle
// event. Neither failure is surfaced: the mutation already succeeded.
func (l *LifecycleUseCase) afterMutation(ctx context.Context, op, eventType, productID string) {
	if err := l.cacheRepo.InvalidateCatalog(ctx); err != nil {
		l.logger.Warnf("%s: failed to invalidate catalog cache: %v", op, err)
	}

	event := NewLifecycleEvent(uuid.NewString(), eventType, productID, l.now())
	if err := l.producer.Publish(ctx, event); err != nil {
		l.logger.Warnf("%s: failed to publish %s event: %v", op, eventType, err)
	}
}

// validateCreate checks title, price and photo before anything touches the
// backend, and resolves the condition default.
func (l *LifecycleUseCase) validateCreate(req *CreateProductReq) (int64, domain.Condition, error) {
	if strings.TrimSpace(req.Title) == "" {
		return 0, "", e.ErrTitleRequired
	}

	priceCents, err := ParsePriceCents(req.Price)
	if err != nil {
		return 0, "", err
	}

	if strings.TrimSpace(req.PhotoURL) == "" {
		return 0, "", e.ErrPhotoRequired
	}

	condition := domain.Condition(req.Condition)
	if req.Condition == "" {
		condition = domain.ConditionUsed
	}
	if !condition.Valid() {
		return 0, "", e.ErrInvalidCondition
	}

	return priceCents, condition, nil
}

// ParsePriceCents converts a localized decimal string to cents.
// "4.299,90" (pt-BR masked input) and "4299.90" are both accepted; the
// comma form treats dots as thousands separators.
func ParsePriceCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, e.ErrPriceRequired
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.IsNegative() {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
