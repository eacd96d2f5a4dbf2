// Package comment exposes the HTTP handlers for comment threads.
// Threads hang off a parent resource (product or article); the same
// handlers serve both, parameterized by the parent kind.
package comment

import (
	"time"

	"pandamarket/internal/domain/entity"
)

// DTO is the JSON shape of a comment.
type DTO struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	ParentKind string    `json:"parent_kind"`
	ParentID   int64     `json:"parent_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		ID:         c.ID,
		Content:    c.Content,
		ParentKind: string(c.Parent.Kind),
		ParentID:   c.Parent.ID,
		CreatedAt:  c.CreatedAt,
	}
}
