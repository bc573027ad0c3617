// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"context"
	"fmt"
	"strings"

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

func (repository *PostgresRepository) Create(context context.Context, record *ResourceAccess) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		schema.ResourceAccess.Table,
		schema.ResourceAccess.ID, schema.ResourceAccess.UserID, schema.ResourceAccess.ResourceType,
		schema.ResourceAccess.ResourceID, schema.ResourceAccess.AccessType, schema.ResourceAccess.DeviceType,
		schema.ResourceAccess.CreatedAt,
	)

	_, err := repository.db.Exec(context, query,
		record.ID, record.UserID, record.ResourceType, record.ResourceID,
		record.AccessType, record.DeviceType, record.CreatedAt,
	)
	return dberr.Wrap(err, "create_resource_access")
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit int) ([]*ResourceAccess, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.ResourceAccess.ID, schema.ResourceAccess.UserID, schema.ResourceAccess.ResourceType,
		schema.ResourceAccess.ResourceID, schema.ResourceAccess.AccessType, schema.ResourceAccess.DeviceType,
		schema.ResourceAccess.CreatedAt, schema.ResourceAccess.Table,
	)

	args := []any{}
	if len(filter.ResourceTypes) > 0 {
		placeholders := make([]string, 0, len(filter.ResourceTypes))
		for _, resourceType := range filter.ResourceTypes {
			args = append(args, resourceType)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		query += fmt.Sprintf(" WHERE %s IN (%s)", schema.ResourceAccess.ResourceType, strings.Join(placeholders, ", "))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $%d", schema.ResourceAccess.CreatedAt, len(args))

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_resource_accesses")
	}
	defer rows.Close()

	records := make([]*ResourceAccess, 0)
	for rows.Next() {
		record := &ResourceAccess{}
		if err := rows.Scan(
			&record.ID, &record.UserID, &record.ResourceType, &record.ResourceID,
			&record.AccessType, &record.DeviceType, &record.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_resource_access")
		}
		records = append(records, record)
	}

	return records, nil
}
