package pgdb

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/internal/repository/pgdb/converter"
	"github.com/myapplevix/store-backend/pkg/e"
)

const productColumns = "id, title, price_cents, condition, photos, description, active, created_at, sold_at"

// ProductRepo implements the product repository on PostgreSQL.
type ProductRepo struct {
	pool Querier
	conv converter.ProductConverter
}

func NewProductRepo(pool Querier, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Insert persists a new InStock product and returns it with the
// database-assigned created_at.
func (p *ProductRepo) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (id, title, price_cents, condition, photos, description, active, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + productColumns + `;
	`

	in := p.conv.ToModel(product)

	model, err := p.scanOne(p.pool.QueryRow(ctx, query,
		in.ID, in.Title, in.PriceCents, in.Condition,
		in.Photos, in.Description, in.Active, in.SoldAt,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// MarkSold flips the product to Sold exactly once. The sold_at IS NULL
// guard makes a second sell hit zero rows, which is then told apart from a
// missing product.
func (p *ProductRepo) MarkSold(ctx context.Context, id string, soldAt time.Time) (*domain.Product, error) {
	query := `
		UPDATE products
		SET active = false, sold_at = $2
		WHERE id = $1 AND sold_at IS NULL
		RETURNING ` + productColumns + `;
	`

	model, err := p.scanOne(p.pool.QueryRow(ctx, query, id, soldAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, p.soldOrMissing(ctx, id)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Delete removes the record permanently.
func (p *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// ListAll returns every product, most recently created first.
func (p *ProductRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC;
	`

	return p.list(ctx, query)
}

// ListInStockByCondition returns the public listing: in-stock products of
// one condition, cheapest first.
func (p *ProductRepo) ListInStockByCondition(ctx context.Context, condition domain.Condition) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE active = true AND condition = $1
		ORDER BY price_cents ASC;
	`

	return p.list(ctx, query, string(condition))
}

// GetByID returns a single product or e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1;
	`

	model, err := p.scanOne(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) list(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Title, &model.PriceCents, &model.Condition,
			&model.Photos, &model.Description, &model.Active,
			&model.CreatedAt, &model.SoldAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *ProductRepo) scanOne(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	if err := row.Scan(
		&model.ID, &model.Title, &model.PriceCents, &model.Condition,
		&model.Photos, &model.Description, &model.Active,
		&model.CreatedAt, &model.SoldAt,
	); err != nil {
		return nil, err
	}

	return &model, nil
}

// soldOrMissing disambiguates a zero-row sell: the product is either
// already sold or does not exist at all.
func (p *ProductRepo) soldOrMissing(ctx context.Context, id string) error {
	var exists bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if exists {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductAlreadySold)
	}

	return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
}
