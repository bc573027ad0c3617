// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package forum

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

func (repository *PostgresRepository) CreateForum(context context.Context, forum *Forum) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.Forum.Table, schema.Forum.Region, schema.Forum.Name,
	)

	_, err := repository.db.Exec(context, query, forum.Region, forum.Name)
	return dberr.Wrap(err, "create_forum")
}

func (repository *PostgresRepository) ListForums(context context.Context) ([]*Forum, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Forum.Region, schema.Forum.Name, schema.Forum.Table, schema.Forum.Region,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_forums")
	}
	defer rows.Close()

	forums := make([]*Forum, 0)
	for rows.Next() {
		forum := &Forum{}
		if err := rows.Scan(&forum.Region, &forum.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_forum")
		}
		forums = append(forums, forum)
	}
	return forums, nil
}

func (repository *PostgresRepository) ForumExists(context context.Context, region string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Forum.Table, schema.Forum.Region,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, region).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "forum_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateThread(context context.Context, thread *Thread) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.Thread.Table, schema.Thread.ID, schema.Thread.Region, schema.Thread.Language,
		schema.Thread.Title, schema.Thread.Description, schema.Thread.CreatedAt,
	)

	_, err := repository.db.Exec(context, query,
		thread.ID, thread.Region, thread.Language, thread.Title, thread.Description, thread.CreatedAt,
	)
	return dberr.Wrap(err, "create_thread")
}

func (repository *PostgresRepository) ThreadsByRegion(context context.Context, region string) ([]*Thread, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Thread.ID, schema.Thread.Region, schema.Thread.Language,
		schema.Thread.Title, schema.Thread.Description, schema.Thread.CreatedAt,
		schema.Thread.Table, schema.Thread.Region, schema.Thread.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, region)
	if err != nil {
		return nil, dberr.Wrap(err, "list_threads")
	}
	defer rows.Close()

	threads := make([]*Thread, 0)
	for rows.Next() {
		thread := &Thread{}
		if err := rows.Scan(
			&thread.ID, &thread.Region, &thread.Language,
			&thread.Title, &thread.Description, &thread.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_thread")
		}
		threads = append(threads, thread)
	}
	rows.Close()

	if err := repository.hydrate(context, threads); err != nil {
		return nil, err
	}
	return threads, nil
}

func (repository *PostgresRepository) AddComment(context context.Context, threadID string, comment *ThreadComment) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)`,
		schema.ThreadComment.Table, schema.ThreadComment.ID, schema.ThreadComment.ThreadID,
		schema.ThreadComment.UserID, schema.ThreadComment.Content, schema.ThreadComment.CreatedAt,
	)

	_, err := repository.db.Exec(context, query,
		comment.ID, threadID, comment.UserID, comment.Content, comment.CreatedAt,
	)
	return dberr.WrapParent(err, "create_thread_comment")
}

func (repository *PostgresRepository) DeleteThread(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Thread.Table, schema.Thread.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_thread")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// hydrate loads comments for the given threads in one query.
func (repository *PostgresRepository) hydrate(context context.Context, threads []*Thread) error {
	if len(threads) == 0 {
		return nil
	}

	index := make(map[string]*Thread, len(threads))
	ids := make([]string, 0, len(threads))
	for _, thread := range threads {
		thread.Comments = make([]ThreadComment, 0)
		index[thread.ID] = thread
		ids = append(ids, thread.ID)
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC`,
		schema.ThreadComment.ID, schema.ThreadComment.ThreadID, schema.ThreadComment.UserID,
		schema.ThreadComment.Content, schema.ThreadComment.CreatedAt,
		schema.ThreadComment.Table, schema.ThreadComment.ThreadID, schema.ThreadComment.CreatedAt,
	)
	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_thread_comments")
	}
	defer rows.Close()

	for rows.Next() {
		var threadID string
		comment := ThreadComment{}
		if err := rows.Scan(&comment.ID, &threadID, &comment.UserID, &comment.Content, &comment.CreatedAt); err != nil {
			return dberr.Wrap(err, "scan_thread_comment")
		}
		if thread, ok := index[threadID]; ok {
			thread.Comments = append(thread.Comments, comment)
		}
	}

	return nil
}
