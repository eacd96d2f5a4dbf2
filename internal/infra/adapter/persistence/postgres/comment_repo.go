package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"
)

type CommentRepo struct{ db Executor }

func NewCommentRepo(db Executor) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	const query = `
INSERT INTO comments (content, parent_kind, parent_id)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		c.Content, string(c.Parent.Kind), c.Parent.ID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT id, content, parent_kind, parent_id, created_at
FROM comments
WHERE id = $1
LIMIT 1`
	var c entity.Comment
	var kind string
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Content, &kind, &c.Parent.ID, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	c.Parent.Kind = entity.ParentKind(kind)
	return &c, nil
}

// ListByParent fetches one window of a thread in (created_at DESC,
// id DESC) order. The row comparison against the cursor position keeps
// the walk stable even when several comments share a timestamp.
func (repo *CommentRepo) ListByParent(ctx context.Context, q repository.CommentQuery) ([]*entity.Comment, error) {
	args := []any{string(q.Parent.Kind), q.Parent.ID}
	cursorClause := ""
	if q.After != nil {
		cursorClause = "AND (created_at, id) < ($3, $4)"
		args = append(args, q.After.CreatedAt, q.After.ID)
	}
	query := fmt.Sprintf(`
SELECT id, content, parent_kind, parent_id, created_at
FROM comments
WHERE parent_kind = $1 AND parent_id = $2
%s
ORDER BY created_at DESC, id DESC
LIMIT $%d`, cursorClause, len(args)+1)
	args = append(args, q.Limit)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListByParent: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, q.Limit)
	for rows.Next() {
		var c entity.Comment
		var kind string
		if err := rows.Scan(&c.ID, &c.Content, &kind, &c.Parent.ID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListByParent: Scan: %w", err)
		}
		c.Parent.Kind = entity.ParentKind(kind)
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) Update(ctx context.Context, c *entity.Comment) error {
	const query = `UPDATE comments SET content = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, c.Content, c.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", sql.ErrNoRows)
	}
	return nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", sql.ErrNoRows)
	}
	return nil
}
