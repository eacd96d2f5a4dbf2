// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Product, Article and Comment, along
// with their validation rules and domain-specific errors.
package entity

import "time"

// Product represents an item listed on the used-goods market.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Tags        []string
	ImageURL    string
	CreatedAt   time.Time
}
