package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/internal/repository/pgdb/converter"
	"github.com/myapplevix/store-backend/internal/usecase"
	"github.com/myapplevix/store-backend/pkg/e"
)

// ConfigRepo implements the configuration repository on PostgreSQL. The
// singleton row is seeded by a migration and addressed by its fixed id.
type ConfigRepo struct {
	pool Querier
	conv converter.StoreConfigurationConverter
}

func NewConfigRepo(pool Querier, conv converter.StoreConfigurationConverter) *ConfigRepo {
	return &ConfigRepo{
		pool: pool,
		conv: conv,
	}
}

// Load fetches the singleton. A missing row yields an empty configuration,
// not an error: "not yet configured" is a valid state.
func (c *ConfigRepo) Load(ctx context.Context) (*domain.StoreConfiguration, error) {
	query := `
		SELECT id, store_name, contact_number, logo_url, updated_at
		FROM store_configuration
		WHERE id = $1;
	`

	var model converter.StoreConfigurationModel
	err := c.pool.QueryRow(ctx, query, domain.StoreConfigurationID).Scan(
		&model.ID, &model.StoreName, &model.ContactNumber, &model.LogoURL, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.StoreConfiguration{}, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Save partially updates the singleton row. COALESCE keeps whatever the
// patch leaves nil; the row is never inserted here.
func (c *ConfigRepo) Save(ctx context.Context, patch *usecase.ConfigPatch) error {
	query := `
		UPDATE store_configuration
		SET
			store_name     = COALESCE($2, store_name),
			contact_number = COALESCE($3, contact_number),
			logo_url       = COALESCE($4, logo_url),
			updated_at     = NOW()
		WHERE id = $1;
	`

	tag, err := c.pool.Exec(ctx, query,
		domain.StoreConfigurationID, patch.StoreName, patch.ContactNumber, patch.LogoURL,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("store_configuration row %d missing", domain.StoreConfigurationID))
	}

	return nil
}
