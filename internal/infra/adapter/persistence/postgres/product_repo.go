package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"

	"github.com/lib/pq"
)

type ProductRepo struct {
	db      Executor
	builder SearchClauseBuilder
}

func NewProductRepo(db Executor) repository.ProductRepository {
	return &ProductRepo{
		db:      db,
		builder: SearchClauseBuilder{SearchColumns: []string{"name", "description"}},
	}
}

func (repo *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	const query = `
INSERT INTO products (name, description, price, tags, image_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Price, pq.Array(p.Tags), p.ImageURL,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ProductRepo) Get(ctx context.Context, id int64) (*entity.Product, error) {
	const query = `
SELECT id, name, description, price, tags, image_url, created_at
FROM products
WHERE id = $1
LIMIT 1`
	var p entity.Product
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		pq.Array(&p.Tags), &p.ImageURL, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &p, nil
}

func (repo *ProductRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`
	var existsFlag bool
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&existsFlag); err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return existsFlag, nil
}

func (repo *ProductRepo) List(ctx context.Context, q repository.ProductQuery) ([]repository.ProductSummary, error) {
	where, args := repo.builder.BuildWhere(q.Search)
	query := fmt.Sprintf(`
SELECT id, name, price, created_at
FROM products
%s
%s
LIMIT $%d OFFSET $%d`, where, repo.builder.BuildOrder(q.Sort), len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]repository.ProductSummary, 0, q.Limit)
	for rows.Next() {
		var s repository.ProductSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (repo *ProductRepo) Count(ctx context.Context, search string) (int64, error) {
	where, args := repo.builder.BuildWhere(search)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM products %s`, where)

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	const query = `
UPDATE products SET
       name        = $1,
       description = $2,
       price       = $3,
       tags        = $4,
       image_url   = $5
WHERE id = $6`
	res, err := repo.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, pq.Array(p.Tags), p.ImageURL, p.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", sql.ErrNoRows)
	}
	return nil
}

func (repo *ProductRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM products WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", sql.ErrNoRows)
	}
	return nil
}
