package domain

import "time"

// Condition is the stock condition of a device. The string values match the
// catalog data ("novo"/"seminovo") and are stored as-is.
type Condition string

const (
	ConditionNew  Condition = "novo"
	ConditionUsed Condition = "seminovo"
)

// Valid reports whether c is one of the two known conditions.
func (c Condition) Valid() bool {
	return c == ConditionNew || c == ConditionUsed
}

// Product is a single device in the catalog. A product is InStock until
// SoldAt is set exactly once by the sell operation; there is no way back.
// The legacy "active" flag is projected from SoldAt at the persistence
// boundary and never stored on the entity, so the two cannot disagree.
type Product struct {
	ID          string
	Title       string
	PriceCents  int64 // price in cents, currency-agnostic
	Condition   Condition
	Photos      []string // first element is the primary image
	Description string
	CreatedAt   time.Time
	SoldAt      *time.Time // nil while in stock
}

func NewProduct(id, title string, priceCents int64, condition Condition, photoURL, description string) *Product {
	return &Product{
		ID:          id,
		Title:       title,
		PriceCents:  priceCents,
		Condition:   condition,
		Photos:      []string{photoURL},
		Description: description,
	}
}

// Sold reports whether the product has left stock.
func (p *Product) Sold() bool {
	return p.SoldAt != nil
}

// PrimaryPhoto returns the first photo URL or "" when none is attached.
func (p *Product) PrimaryPhoto() string {
	if len(p.Photos) == 0 {
		return ""
	}
	return p.Photos[0]
}
