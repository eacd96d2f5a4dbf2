package pagination

// Response is the generic offset-paginated response envelope.
// T is the type of data items (e.g., product or article summaries).
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse creates an offset-paginated response.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}

// CursorResponse is the cursor-paginated response envelope used by
// comment threads.
type CursorResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination CursorMetadata `json:"pagination"`
}

// NewCursorResponse creates a cursor-paginated response.
func NewCursorResponse[T any](data []T, metadata CursorMetadata) CursorResponse[T] {
	return CursorResponse[T]{
		Data:       data,
		Pagination: metadata,
	}
}
