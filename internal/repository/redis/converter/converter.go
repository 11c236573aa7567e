package converter

import "github.com/myapplevix/store-backend/internal/domain"

// ProductConverter maps catalog products between domain entities and the
// Redis JSON model.
type ProductConverter interface {
	ToArrRedisModel(entities []domain.Product) []ProductRedisModel
	ToArrEntity(models []ProductRedisModel) []domain.Product
}

type productConverter struct{}

func NewProductConverter() ProductConverter {
	return productConverter{}
}

func (productConverter) ToArrRedisModel(entities []domain.Product) []ProductRedisModel {
	models := make([]ProductRedisModel, 0, len(entities))
	for _, p := range entities {
		models = append(models, ProductRedisModel{
			ID:          p.ID,
			Title:       p.Title,
			PriceCents:  p.PriceCents,
			Condition:   string(p.Condition),
			Photos:      p.Photos,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
			SoldAt:      p.SoldAt,
		})
	}

	return models
}

func (productConverter) ToArrEntity(models []ProductRedisModel) []domain.Product {
	entities := make([]domain.Product, 0, len(models))
	for _, m := range models {
		entities = append(entities, domain.Product{
			ID:          m.ID,
			Title:       m.Title,
			PriceCents:  m.PriceCents,
			Condition:   domain.Condition(m.Condition),
			Photos:      m.Photos,
			Description: m.Description,
			CreatedAt:   m.CreatedAt,
			SoldAt:      m.SoldAt,
		})
	}

	return entities
}
