package converter

import "time"

// ProductModel is a row of the products table. The legacy active column is
// kept in the schema for the storefront's historical consumers; it is always
// written as sold_at IS NULL and never read back into the entity.
type ProductModel struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	PriceCents  int64      `db:"price_cents"`
	Condition   string     `db:"condition"`
	Photos      []string   `db:"photos"`
	Description string     `db:"description"`
	Active      bool       `db:"active"`
	CreatedAt   time.Time  `db:"created_at"`
	SoldAt      *time.Time `db:"sold_at"`
}

// StoreConfigurationModel is the store_configuration singleton row.
type StoreConfigurationModel struct {
	ID            int16      `db:"id"`
	StoreName     string     `db:"store_name"`
	ContactNumber string     `db:"contact_number"`
	LogoURL       *string    `db:"logo_url"`
	UpdatedAt     *time.Time `db:"updated_at"`
}
