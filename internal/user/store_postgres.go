// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

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

func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		schema.User.Table,
		schema.User.ID, schema.User.Email, schema.User.Nickname, schema.User.PasswordHash,
		schema.User.Role, schema.User.Image, schema.User.IsBlocked, schema.User.CreatedAt,
	)

	_, err := repository.db.Exec(context, query,
		user.ID, user.Email, user.Nickname, user.PasswordHash,
		user.Role, user.Image, user.IsBlocked, user.CreatedAt,
	)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findBy(context, schema.User.ID, id)
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findBy(context, schema.User.Email, email)
}

func (repository *PostgresRepository) FindByNickname(context context.Context, nickname string) (*User, error) {
	return repository.findBy(context, schema.User.Nickname, nickname)
}

func (repository *PostgresRepository) findBy(context context.Context, column, value string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.User.ID, schema.User.Email, schema.User.Nickname, schema.User.PasswordHash,
		schema.User.Role, schema.User.Image, schema.User.IsBlocked, schema.User.CreatedAt,
		schema.User.Table, column,
	)

	user := &User{}
	err := repository.db.QueryRow(context, query, value).Scan(
		&user.ID, &user.Email, &user.Nickname, &user.PasswordHash,
		&user.Role, &user.Image, &user.IsBlocked, &user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_"+column)
	}

	return user, nil
}

func (repository *PostgresRepository) List(context context.Context, search string, limit, offset int) ([]*User, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.User.ID, schema.User.Email, schema.User.Nickname, schema.User.PasswordHash,
		schema.User.Role, schema.User.Image, schema.User.IsBlocked, schema.User.CreatedAt,
		schema.User.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.User.Table)

	args := []any{}
	countArgs := []any{}

	if search != "" {
		searchTerm := "%" + search + "%"
		condition := fmt.Sprintf(" WHERE (%s ILIKE $1 OR %s ILIKE $1)", schema.User.Email, schema.User.Nickname)
		query += condition
		countQuery += condition
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", schema.User.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Nickname, &user.PasswordHash,
			&user.Role, &user.Image, &user.IsBlocked, &user.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}

	return users, total, nil
}

func (repository *PostgresRepository) SetBlocked(context context.Context, id string, blocked bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.User.Table, schema.User.IsBlocked, schema.User.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, blocked)
	if err != nil {
		return dberr.Wrap(err, "set_user_blocked")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.User.Table, schema.User.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
