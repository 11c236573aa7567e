package usecase

import "github.com/myapplevix/store-backend/internal/domain"

// Summarize derives the sales summary from a product snapshot. It is a pure
// function recomputed on every refresh; nothing is cached or incremented,
// so the summary can never drift from the set it was derived from.
//
// Only sold products count. The partition is exhaustive (anything not "novo"
// lands in the used bucket) so TotalSold == NewSold + UsedSold always holds.
// A malformed price never fails the aggregation; it contributes zero.
func Summarize(products []domain.Product) domain.SalesSummary {
	var s domain.SalesSummary

	for _, p := range products {
		if !p.Sold() {
			continue
		}

		s.TotalSold++
		if p.Condition == domain.ConditionNew {
			s.NewSold++
		} else {
			s.UsedSold++
		}

		if p.PriceCents > 0 {
			s.RevenueCents += p.PriceCents
		}
	}

	return s
}
