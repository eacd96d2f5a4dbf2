package repository

import (
	"context"
	"time"

	"pandamarket/internal/common/pagination"
	"pandamarket/internal/domain/entity"
)

// ArticleSummary is the trimmed row shape returned by article listings.
type ArticleSummary struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
}

// ArticleQuery carries the filter and window of an article listing.
// Search matches title or content case-insensitively.
type ArticleQuery struct {
	Search string
	Sort   pagination.Sort
	Offset int
	Limit  int
}

type ArticleRepository interface {
	Create(ctx context.Context, a *entity.Article) error
	// Get returns (nil, nil) when no article has the id.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, q ArticleQuery) ([]ArticleSummary, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, a *entity.Article) error
	Delete(ctx context.Context, id int64) error
}
