package usecase

import (
	"time"

	"github.com/myapplevix/store-backend/internal/domain"
)

// LIFECYCLE

// CreateProductReq carries the raw create form. Price arrives as the
// localized decimal string the operator typed ("4.299,90").
type CreateProductReq struct {
	Title       string
	Price       string
	Condition   string
	Description string
	PhotoURL    string
}

// DashboardRes is the admin dashboard payload: full product list plus the
// summary derived from that same snapshot.
type DashboardRes struct {
	Products []domain.Product
	Summary  domain.SalesSummary
}

// CONFIGURATION

// ConfigPatch is a partial update of the configuration singleton.
// Nil fields are left untouched.
type ConfigPatch struct {
	StoreName     *string
	ContactNumber *string
	LogoURL       *string
}

// INFRASTRUCTURE

// UploadRes is the outcome of a storage upload.
type UploadRes struct {
	Key string
	URL string
}

// LifecycleEvent is published after a successful mutation.
type LifecycleEvent struct {
	EventID    string
	Type       string
	ProductID  string
	OccurredAt time.Time
}

const (
	EventProductCreated = "product.created"
	EventProductSold    = "product.sold"
	EventProductRemoved = "product.removed"
)

// CATALOG

// CatalogItem is a public listing entry with its ready-made contact link.
type CatalogItem struct {
	Product     domain.Product
	ContactLink string
}

// CatalogPageRes bundles a category listing with the chrome the public
// pages need (logo, contact number) in a single response.
type CatalogPageRes struct {
	Items         []CatalogItem
	LogoURL       *string
	ContactNumber string
}

// ProductPageRes is the product detail payload.
type ProductPageRes struct {
	Product     domain.Product
	LogoURL     *string
	ContactLink string
}

// MAPPERS

func NewUploadRes(key, url string) *UploadRes {
	return &UploadRes{Key: key, URL: url}
}

func NewCreateProductReq(title, price, condition, description, photoURL string) *CreateProductReq {
	return &CreateProductReq{
		Title:       title,
		Price:       price,
		Condition:   condition,
		Description: description,
		PhotoURL:    photoURL,
	}
}

func NewLifecycleEvent(eventID, eventType, productID string, occurredAt time.Time) *LifecycleEvent {
	return &LifecycleEvent{
		EventID:    eventID,
		Type:       eventType,
		ProductID:  productID,
		OccurredAt: occurredAt,
	}
}
