// Package product provides HTTP handlers for product endpoints:
// creating, fetching, listing with search and pagination, partial
// updates, and deletion.
package product

import (
	"time"

	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"
)

// DTO represents the JSON structure of a full product.
type DTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// SummaryDTO is the trimmed row shape used by listings.
type SummaryDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(p *entity.Product) DTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Tags:        tags,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}

func toSummaryDTO(s repository.ProductSummary) SummaryDTO {
	return SummaryDTO{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price,
		CreatedAt: s.CreatedAt,
	}
}
