// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/consumo/internal/platform/database/schema"
	"github.com/taibuivan/consumo/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, product *Product) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_product")
	}
	defer func() { _ = tx.Rollback(context) }()

	productQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.Product.Table, schema.Product.ID, schema.Product.Image, schema.Product.CreatedAt,
	)
	if _, err := tx.Exec(context, productQuery, product.ID, product.Image, product.CreatedAt); err != nil {
		return dberr.Wrap(err, "create_product")
	}

	regionQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.ProductRegion.Table, schema.ProductRegion.ID, schema.ProductRegion.ProductID, schema.ProductRegion.Region,
	)
	for _, region := range product.Regions {
		if _, err := tx.Exec(context, regionQuery, region.ID, product.ID, region.Region); err != nil {
			return dberr.Wrap(err, "create_product_region")
		}
	}

	contentQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)`,
		schema.ProductContent.Table, schema.ProductContent.ID, schema.ProductContent.ProductID,
		schema.ProductContent.Language, schema.ProductContent.Name, schema.ProductContent.Description,
	)
	for _, content := range product.Contents {
		if _, err := tx.Exec(context, contentQuery,
			content.ID, product.ID, content.Language, content.Name, content.Description,
		); err != nil {
			return dberr.Wrap(err, "create_product_content")
		}
	}

	return dberr.Wrap(tx.Commit(context), "commit_create_product")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Product, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Product.ID, schema.Product.Image, schema.Product.CreatedAt,
		schema.Product.Table, schema.Product.ID,
	)

	product := &Product{}
	err := repository.db.QueryRow(context, query, id).Scan(&product.ID, &product.Image, &product.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_product")
	}

	if err := repository.hydrate(context, []*Product{product}); err != nil {
		return nil, err
	}
	return product, nil
}

func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Product.Table, schema.Product.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "product_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Product, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.Product.ID, schema.Product.Image, schema.Product.CreatedAt,
		schema.Product.Table, schema.Product.CreatedAt,
	)
	return repository.queryProducts(context, query)
}

func (repository *PostgresRepository) SearchByName(context context.Context, name string) ([]*Product, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT p.%s, p.%s, p.%s
		FROM %s p
		JOIN %s c ON c.%s = p.%s
		WHERE c.%s ILIKE $1
		ORDER BY p.%s ASC
	`,
		schema.Product.ID, schema.Product.Image, schema.Product.CreatedAt,
		schema.Product.Table, schema.ProductContent.Table,
		schema.ProductContent.ProductID, schema.Product.ID,
		schema.ProductContent.Name, schema.Product.CreatedAt,
	)
	return repository.queryProducts(context, query, "%"+name+"%")
}

func (repository *PostgresRepository) SearchByRegion(context context.Context, region string) ([]*Product, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT p.%s, p.%s, p.%s
		FROM %s p
		JOIN %s r ON r.%s = p.%s
		WHERE r.%s = $1
		ORDER BY p.%s ASC
	`,
		schema.Product.ID, schema.Product.Image, schema.Product.CreatedAt,
		schema.Product.Table, schema.ProductRegion.Table,
		schema.ProductRegion.ProductID, schema.Product.ID,
		schema.ProductRegion.Region, schema.Product.CreatedAt,
	)
	return repository.queryProducts(context, query, region)
}

func (repository *PostgresRepository) UpsertContent(context context.Context, productID string, content *Content) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s
		RETURNING %s
	`,
		schema.ProductContent.Table, schema.ProductContent.ID, schema.ProductContent.ProductID,
		schema.ProductContent.Language, schema.ProductContent.Name, schema.ProductContent.Description,
		schema.ProductContent.ProductID, schema.ProductContent.Language,
		schema.ProductContent.Name, schema.ProductContent.Name,
		schema.ProductContent.Description, schema.ProductContent.Description,
		schema.ProductContent.ID,
	)

	err := repository.db.QueryRow(context, query,
		content.ID, productID, content.Language, content.Name, content.Description,
	).Scan(&content.ID)
	return dberr.Wrap(err, "upsert_product_content")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Product.Table, schema.Product.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_product")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// queryProducts runs a product-row query and hydrates regions and contents.
func (repository *PostgresRepository) queryProducts(context context.Context, query string, args ...any) ([]*Product, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		product := &Product{}
		if err := rows.Scan(&product.ID, &product.Image, &product.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_product")
		}
		products = append(products, product)
	}
	rows.Close()

	if err := repository.hydrate(context, products); err != nil {
		return nil, err
	}
	return products, nil
}

// hydrate loads regions and contents for the given products in two queries.
func (repository *PostgresRepository) hydrate(context context.Context, products []*Product) error {
	if len(products) == 0 {
		return nil
	}

	index := make(map[string]*Product, len(products))
	ids := make([]string, 0, len(products))
	for _, product := range products {
		product.Regions = make([]Region, 0)
		product.Contents = make([]Content, 0)
		index[product.ID] = product
		ids = append(ids, product.ID)
	}

	regionQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC`,
		schema.ProductRegion.ID, schema.ProductRegion.ProductID, schema.ProductRegion.Region,
		schema.ProductRegion.Table, schema.ProductRegion.ProductID, schema.ProductRegion.Region,
	)
	regionRows, err := repository.db.Query(context, regionQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "list_product_regions")
	}
	defer regionRows.Close()

	for regionRows.Next() {
		var productID string
		region := Region{}
		if err := regionRows.Scan(&region.ID, &productID, &region.Region); err != nil {
			return dberr.Wrap(err, "scan_product_region")
		}
		if product, ok := index[productID]; ok {
			product.Regions = append(product.Regions, region)
		}
	}
	regionRows.Close()

	contentQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC`,
		schema.ProductContent.ID, schema.ProductContent.ProductID, schema.ProductContent.Language,
		schema.ProductContent.Name, schema.ProductContent.Description,
		schema.ProductContent.Table, schema.ProductContent.ProductID, schema.ProductContent.Language,
	)
	contentRows, err := repository.db.Query(context, contentQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "list_product_contents")
	}
	defer contentRows.Close()

	for contentRows.Next() {
		var productID string
		content := Content{}
		if err := contentRows.Scan(&content.ID, &productID, &content.Language, &content.Name, &content.Description); err != nil {
			return dberr.Wrap(err, "scan_product_content")
		}
		if product, ok := index[productID]; ok {
			product.Contents = append(product.Contents, content)
		}
	}

	return nil
}
