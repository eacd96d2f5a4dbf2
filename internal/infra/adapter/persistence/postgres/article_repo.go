package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"
)

type ArticleRepo struct {
	db      Executor
	builder SearchClauseBuilder
}

func NewArticleRepo(db Executor) repository.ArticleRepository {
	return &ArticleRepo{
		db:      db,
		builder: SearchClauseBuilder{SearchColumns: []string{"title", "content"}},
	}
}

func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	const query = `
INSERT INTO articles (title, content)
VALUES ($1, $2)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query, a.Title, a.Content).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, content, created_at
FROM articles
WHERE id = $1
LIMIT 1`
	var a entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.Title, &a.Content, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &a, nil
}

func (repo *ArticleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`
	var existsFlag bool
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&existsFlag); err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return existsFlag, nil
}

func (repo *ArticleRepo) List(ctx context.Context, q repository.ArticleQuery) ([]repository.ArticleSummary, error) {
	where, args := repo.builder.BuildWhere(q.Search)
	query := fmt.Sprintf(`
SELECT id, title, content, created_at
FROM articles
%s
%s
LIMIT $%d OFFSET $%d`, where, repo.builder.BuildOrder(q.Sort), len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]repository.ArticleSummary, 0, q.Limit)
	for rows.Next() {
		var s repository.ArticleSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Content, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (repo *ArticleRepo) Count(ctx context.Context, search string) (int64, error) {
	where, args := repo.builder.BuildWhere(search)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM articles %s`, where)

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	const query = `
UPDATE articles SET
       title   = $1,
       content = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, a.Title, a.Content, a.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", sql.ErrNoRows)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", sql.ErrNoRows)
	}
	return nil
}
