// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package request

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

func (repository *PostgresRepository) CreateProductRequest(context context.Context, request *ProductRequest) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.ProductRequest.Table, schema.ProductRequest.ID, schema.ProductRequest.UserID,
		schema.ProductRequest.Name, schema.ProductRequest.Description,
		schema.ProductRequest.Image, schema.ProductRequest.CreatedAt,
	)

	_, err := repository.db.Exec(context, query,
		request.ID, request.UserID, request.Name, request.Description, request.Image, request.CreatedAt,
	)
	return dberr.Wrap(err, "create_product_request")
}

func (repository *PostgresRepository) ListProductRequests(context context.Context) ([]*ProductRequest, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.ProductRequest.ID, schema.ProductRequest.UserID, schema.ProductRequest.Name,
		schema.ProductRequest.Description, schema.ProductRequest.Image, schema.ProductRequest.CreatedAt,
		schema.ProductRequest.Table, schema.ProductRequest.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_product_requests")
	}
	defer rows.Close()

	requests := make([]*ProductRequest, 0)
	for rows.Next() {
		request := &ProductRequest{}
		if err := rows.Scan(
			&request.ID, &request.UserID, &request.Name,
			&request.Description, &request.Image, &request.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_product_request")
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (repository *PostgresRepository) DeleteProductRequest(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ProductRequest.Table, schema.ProductRequest.ID,
	)
	return repository.deleteOne(context, query, id, "delete_product_request")
}

func (repository *PostgresRepository) CreateBlogRequest(context context.Context, request *BlogRequest) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.BlogRequest.Table, schema.BlogRequest.ID, schema.BlogRequest.UserID,
		schema.BlogRequest.ProductID, schema.BlogRequest.Title, schema.BlogRequest.Description,
		schema.BlogRequest.Image, schema.BlogRequest.CreatedAt,
	)

	_, err := repository.db.Exec(context, query,
		request.ID, request.UserID, request.ProductID, request.Title,
		request.Description, request.Image, request.CreatedAt,
	)
	return dberr.Wrap(err, "create_blog_request")
}

func (repository *PostgresRepository) ListBlogRequests(context context.Context) ([]*BlogRequest, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.BlogRequest.ID, schema.BlogRequest.UserID, schema.BlogRequest.ProductID,
		schema.BlogRequest.Title, schema.BlogRequest.Description, schema.BlogRequest.Image,
		schema.BlogRequest.CreatedAt,
		schema.BlogRequest.Table, schema.BlogRequest.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_blog_requests")
	}
	defer rows.Close()

	requests := make([]*BlogRequest, 0)
	for rows.Next() {
		request := &BlogRequest{}
		if err := rows.Scan(
			&request.ID, &request.UserID, &request.ProductID, &request.Title,
			&request.Description, &request.Image, &request.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_blog_request")
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (repository *PostgresRepository) DeleteBlogRequest(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BlogRequest.Table, schema.BlogRequest.ID,
	)
	return repository.deleteOne(context, query, id, "delete_blog_request")
}

func (repository *PostgresRepository) deleteOne(context context.Context, query, id, operation string) error {
	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, operation)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
