// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

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

func (repository *PostgresRepository) Create(context context.Context, blog *Blog) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_blog")
	}
	defer func() { _ = tx.Rollback(context) }()

	blogQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
		schema.Blog.Table, schema.Blog.ID, schema.Blog.ProductID, schema.Blog.Image, schema.Blog.CreatedAt,
	)
	if _, err := tx.Exec(context, blogQuery, blog.ID, blog.ProductID, blog.Image, blog.CreatedAt); err != nil {
		return dberr.Wrap(err, "create_blog")
	}

	contentQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)`,
		schema.BlogContent.Table, schema.BlogContent.ID, schema.BlogContent.BlogID,
		schema.BlogContent.Language, schema.BlogContent.Title, schema.BlogContent.Description,
	)
	for _, content := range blog.Contents {
		if _, err := tx.Exec(context, contentQuery,
			content.ID, blog.ID, content.Language, content.Title, content.Description,
		); err != nil {
			return dberr.Wrap(err, "create_blog_content")
		}
	}

	return dberr.Wrap(tx.Commit(context), "commit_create_blog")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Blog, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Blog.ID, schema.Blog.ProductID, schema.Blog.Image, schema.Blog.CreatedAt,
		schema.Blog.Table, schema.Blog.ID,
	)

	blog := &Blog{}
	err := repository.db.QueryRow(context, query, id).Scan(&blog.ID, &blog.ProductID, &blog.Image, &blog.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_blog")
	}

	if err := repository.hydrate(context, []*Blog{blog}); err != nil {
		return nil, err
	}
	return blog, nil
}

func (repository *PostgresRepository) Exists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Blog.Table, schema.Blog.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "blog_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Blog, error) {
	query := fmt.Sprintf(`SELECT DISTINCT b.%s, b.%s, b.%s, b.%s FROM %s b`,
		schema.Blog.ID, schema.Blog.ProductID, schema.Blog.Image, schema.Blog.CreatedAt,
		schema.Blog.Table,
	)

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if filter.Title != "" {
		query += fmt.Sprintf(` JOIN %s c ON c.%s = b.%s`,
			schema.BlogContent.Table, schema.BlogContent.BlogID, schema.Blog.ID,
		)
		args = append(args, "%"+filter.Title+"%")
		conditions = append(conditions, fmt.Sprintf(`c.%s ILIKE $%d`, schema.BlogContent.Title, len(args)))
	}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conditions = append(conditions, fmt.Sprintf(`b.%s = $%d`, schema.Blog.ProductID, len(args)))
	}

	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += fmt.Sprintf(` ORDER BY b.%s ASC`, schema.Blog.CreatedAt)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_blogs")
	}
	defer rows.Close()

	blogs := make([]*Blog, 0)
	for rows.Next() {
		blog := &Blog{}
		if err := rows.Scan(&blog.ID, &blog.ProductID, &blog.Image, &blog.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_blog")
		}
		blogs = append(blogs, blog)
	}
	rows.Close()

	if err := repository.hydrate(context, blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (repository *PostgresRepository) AddComment(context context.Context, blogID string, comment *Comment) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.BlogComment.Table, schema.BlogComment.ID, schema.BlogComment.BlogID,
		schema.BlogComment.UserID, schema.BlogComment.Text, schema.BlogComment.Image,
		schema.BlogComment.LikeCount, schema.BlogComment.CreatedAt,
	)

	_, err := repository.db.Exec(context, query,
		comment.ID, blogID, comment.UserID, comment.Text, comment.Image, comment.LikeCount, comment.CreatedAt,
	)
	return dberr.WrapParent(err, "create_blog_comment")
}

func (repository *PostgresRepository) LikeComment(context context.Context, commentID string) (int, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1 RETURNING %s`,
		schema.BlogComment.Table, schema.BlogComment.LikeCount, schema.BlogComment.LikeCount,
		schema.BlogComment.ID, schema.BlogComment.LikeCount,
	)

	var likeCount int
	if err := repository.db.QueryRow(context, query, commentID).Scan(&likeCount); err != nil {
		return 0, dberr.Wrap(err, "like_blog_comment")
	}
	return likeCount, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Blog.Table, schema.Blog.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_blog")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// hydrate loads contents and comments for the given blogs in two queries.
func (repository *PostgresRepository) hydrate(context context.Context, blogs []*Blog) error {
	if len(blogs) == 0 {
		return nil
	}

	index := make(map[string]*Blog, len(blogs))
	ids := make([]string, 0, len(blogs))
	for _, blog := range blogs {
		blog.Contents = make([]Content, 0)
		blog.Comments = make([]Comment, 0)
		index[blog.ID] = blog
		ids = append(ids, blog.ID)
	}

	contentQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC`,
		schema.BlogContent.ID, schema.BlogContent.BlogID, schema.BlogContent.Language,
		schema.BlogContent.Title, schema.BlogContent.Description,
		schema.BlogContent.Table, schema.BlogContent.BlogID, schema.BlogContent.Language,
	)
	contentRows, err := repository.db.Query(context, contentQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "list_blog_contents")
	}
	defer contentRows.Close()

	for contentRows.Next() {
		var blogID string
		content := Content{}
		if err := contentRows.Scan(&content.ID, &blogID, &content.Language, &content.Title, &content.Description); err != nil {
			return dberr.Wrap(err, "scan_blog_content")
		}
		if blog, ok := index[blogID]; ok {
			blog.Contents = append(blog.Contents, content)
		}
	}
	contentRows.Close()

	commentQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC`,
		schema.BlogComment.ID, schema.BlogComment.BlogID, schema.BlogComment.UserID,
		schema.BlogComment.Text, schema.BlogComment.Image, schema.BlogComment.LikeCount,
		schema.BlogComment.CreatedAt,
		schema.BlogComment.Table, schema.BlogComment.BlogID, schema.BlogComment.CreatedAt,
	)
	commentRows, err := repository.db.Query(context, commentQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "list_blog_comments")
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var blogID string
		comment := Comment{}
		if err := commentRows.Scan(
			&comment.ID, &blogID, &comment.UserID, &comment.Text,
			&comment.Image, &comment.LikeCount, &comment.CreatedAt,
		); err != nil {
			return dberr.Wrap(err, "scan_blog_comment")
		}
		if blog, ok := index[blogID]; ok {
			blog.Comments = append(blog.Comments, comment)
		}
	}

	return nil
}
