package converter

import "time"

// ProductRedisModel is the cached projection of a catalog product.
type ProductRedisModel struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	PriceCents  int64      `json:"price_cents"`
	Condition   string     `json:"condition"`
	Photos      []string   `json:"photos"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	SoldAt      *time.Time `json:"sold_at,omitempty"`
}
