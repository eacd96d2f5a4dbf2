package repository

import (
	"context"

	"pandamarket/internal/common/pagination"
	"pandamarket/internal/domain/entity"
)

// CommentQuery selects one window of a comment thread.
// Rows are ordered by (createdAt DESC, id DESC); After, when set, means
// "strictly after this position in that order". Limit is the exact row
// count to fetch; the service over-fetches by one to detect a next page.
type CommentQuery struct {
	Parent entity.ParentRef
	After  *pagination.Position
	Limit  int
}

type CommentRepository interface {
	// Create persists a new comment and fills ID and CreatedAt.
	Create(ctx context.Context, c *entity.Comment) error
	// Get returns (nil, nil) when no comment has the id.
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// ListByParent returns one window of the parent's thread.
	ListByParent(ctx context.Context, q CommentQuery) ([]*entity.Comment, error)
	Update(ctx context.Context, c *entity.Comment) error
	Delete(ctx context.Context, id int64) error
}
