package pagination

// Metadata is the offset-strategy pagination block of a list response.
type Metadata struct {
	Total      int64 `json:"total"`       // Total number of items matching the filter
	Page       int   `json:"page"`        // Current page number (1-based)
	Limit      int   `json:"limit"`       // Items per page
	TotalPages int   `json:"total_pages"` // ceil(total/limit)
}

// CursorMetadata is the cursor-strategy pagination block of a comment
// thread response. NextCursor is null on the final page.
type CursorMetadata struct {
	NextCursor *string `json:"next_cursor"`
	Limit      int     `json:"limit"`
	HasNext    bool    `json:"has_next"`
}
