package converter

import "github.com/myapplevix/store-backend/internal/domain"

// ProductConverter maps Product between the domain entity and the
// PostgreSQL model. The entity carries only SoldAt; the redundant active
// column is derived here, at the persistence boundary, so the two encodings
// cannot disagree anywhere else in the program.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// StoreConfigurationConverter maps the configuration singleton.
type StoreConfigurationConverter interface {
	ToEntity(model *StoreConfigurationModel) *domain.StoreConfiguration
}

type productConverter struct{}

func NewProductConverter() ProductConverter {
	return productConverter{}
}

func (productConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:          entity.ID,
		Title:       entity.Title,
		PriceCents:  entity.PriceCents,
		Condition:   string(entity.Condition),
		Photos:      entity.Photos,
		Description: entity.Description,
		Active:      entity.SoldAt == nil,
		CreatedAt:   entity.CreatedAt,
		SoldAt:      entity.SoldAt,
	}
}

func (productConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Title:       model.Title,
		PriceCents:  model.PriceCents,
		Condition:   domain.Condition(model.Condition),
		Photos:      model.Photos,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		SoldAt:      model.SoldAt,
	}
}

func (c productConverter) ToArrEntity(models []ProductModel) []domain.Product {
	entities := make([]domain.Product, 0, len(models))
	for i := range models {
		entities = append(entities, *c.ToEntity(&models[i]))
	}

	return entities
}

type storeConfigurationConverter struct{}

func NewStoreConfigurationConverter() StoreConfigurationConverter {
	return storeConfigurationConverter{}
}

func (storeConfigurationConverter) ToEntity(model *StoreConfigurationModel) *domain.StoreConfiguration {
	return &domain.StoreConfiguration{
		StoreName:     model.StoreName,
		ContactNumber: model.ContactNumber,
		LogoURL:       model.LogoURL,
	}
}
