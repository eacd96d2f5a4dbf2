// Package article provides HTTP handlers for the free board's article
// endpoints.
package article

import (
	"time"

	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"
)

// DTO represents the JSON structure of an article.
type DTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
	}
}

func summaryToDTO(s repository.ArticleSummary) DTO {
	return DTO{
		ID:        s.ID,
		Title:     s.Title,
		Content:   s.Content,
		CreatedAt: s.CreatedAt,
	}
}
