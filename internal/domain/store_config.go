package domain

// StoreConfigurationID addresses the single configuration row. The row is
// seeded by a migration and only ever updated, never inserted or deleted.
const StoreConfigurationID = 1

// FallbackContactNumber is used for outbound contact links while the store
// has not been configured yet.
const FallbackContactNumber = "5500000000000"

// StoreConfiguration is the store-wide settings singleton.
type StoreConfiguration struct {
	StoreName     string
	ContactNumber string  // digits only, international format (country code + area code + number)
	LogoURL       *string // nil until a logo has been uploaded
}

// ContactNumberOrFallback returns the configured WhatsApp number or the
// placeholder sentinel when the store is not configured.
func (c *StoreConfiguration) ContactNumberOrFallback() string {
	if c == nil || c.ContactNumber == "" {
		return FallbackContactNumber
	}
	return c.ContactNumber
}
