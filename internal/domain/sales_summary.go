package domain

// SalesSummary is derived from the current product set and never persisted.
// TotalSold == NewSold + UsedSold by construction.
type SalesSummary struct {
	TotalSold    int
	NewSold      int
	UsedSold     int
	RevenueCents int64 // sum of price over all sold products
}

// NewShare returns NewSold/TotalSold, or 0 when nothing was sold yet.
func (s SalesSummary) NewShare() float64 {
	if s.TotalSold == 0 {
		return 0
	}
	return float64(s.NewSold) / float64(s.TotalSold)
}

// UsedShare returns UsedSold/TotalSold, or 0 when nothing was sold yet.
func (s SalesSummary) UsedShare() float64 {
	if s.TotalSold == 0 {
		return 0
	}
	return float64(s.UsedSold) / float64(s.TotalSold)
}
