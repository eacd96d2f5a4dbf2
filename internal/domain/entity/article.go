package entity

import "time"

// Article represents a post on the free board.
type Article struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
}
