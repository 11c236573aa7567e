package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/pkg/e"
	"github.com/myapplevix/store-backend/pkg/logger"
)

// Message templates behind the WhatsApp buttons. The card one is used on
// category listings, the detail one on the product page.
const (
	cardMessageTemplate   = "Olá, vi o anúncio do *%s* e queria saber mais detalhes."
	detailMessageTemplate = "Olá, estou vendo o *%s* no site e tenho interesse."
)

// CatalogUseCase serves the read-only public views. It never touches the
// lifecycle; a sold or deleted product simply stops appearing. Listings go
// through a cache-aside Redis layer that the lifecycle invalidates.
type CatalogUseCase struct {
	productRepo ProductRepository
	configRepo  ConfigRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	configRepo ConfigRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		configRepo:  configRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// ListByCondition returns the in-stock products of one condition, cheapest
// first, together with the store chrome the page needs.
func (c *CatalogUseCase) ListByCondition(ctx context.Context, condition domain.Condition) (*CatalogPageRes, error) {
	const op = "CatalogUseCase.ListByCondition"

	if !condition.Valid() {
		return nil, e.Wrap(op, e.ErrInvalidCondition)
	}

	products, err := c.listCached(ctx, op, condition)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	config, err := c.configRepo.Load(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	number := config.ContactNumberOrFallback()
	items := make([]CatalogItem, 0, len(products))
	for _, p := range products {
		items = append(items, CatalogItem{
			Product:     p,
			ContactLink: ContactLink(number, fmt.Sprintf(cardMessageTemplate, p.Title)),
		})
	}

	return &CatalogPageRes{
		Items:         items,
		LogoURL:       config.LogoURL,
		ContactNumber: number,
	}, nil
}

// GetByID returns one product with its contact link, or e.ErrProductNotFound.
func (c *CatalogUseCase) GetByID(ctx context.Context, id string) (*ProductPageRes, error) {
	const op = "CatalogUseCase.GetByID"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	config, err := c.configRepo.Load(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	number := config.ContactNumberOrFallback()

	return &ProductPageRes{
		Product:     *product,
		LogoURL:     config.LogoURL,
		ContactLink: ContactLink(number, fmt.Sprintf(detailMessageTemplate, product.Title)),
	}, nil
}

// listCached reads the listing through the cache. Cache failures degrade to
// a direct read; a miss refills the cache in the background.
func (c *CatalogUseCase) listCached(ctx context.Context, op string, condition domain.Condition) ([]domain.Product, error) {
	cached, ok, err := c.cacheRepo.GetCatalog(ctx, condition)
	if err != nil {
		c.logger.Warnf("%s: catalog cache read failed: %v", op, err)
	}
	if ok {
		return cached, nil
	}

	products, err := c.productRepo.ListInStockByCondition(ctx, condition)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetCatalog(bgCtx, condition, products); err != nil {
			c.logger.Warnf("%s: failed to cache catalog in background: %v", op, err)
		}
	}()

	return products, nil
}

// ContactLink builds the WhatsApp deep link:
// https://wa.me/{number}?text={urlEncodedMessage}.
func ContactLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + encodeURIComponent(message)
}

// encodeURIComponent mirrors the JavaScript function of the same name, which
// the storefront pages historically used to build these links. It differs
// from url.QueryEscape in keeping ! ~ * ' ( ) literal and escaping spaces
// as %20 instead of +.
func encodeURIComponent(s string) string {
	const unreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.!~*'()"

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if strings.IndexByte(unreserved, ch) >= 0 {
			b.WriteByte(ch)
		} else {
			fmt.Fprintf(&b, "%%%02X", ch)
		}
	}

	return b.String()
}
