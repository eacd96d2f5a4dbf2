package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Position identifies a row in the (createdAt DESC, id DESC) sort order.
// Both fields participate so the cursor stays strictly monotonic even
// when several rows share a timestamp.
type Position struct {
	CreatedAt time.Time
	ID        int64
}

// EncodeCursor renders a position as an opaque token. The same entity
// always yields the same token: the encoding is the base64 (raw URL
// alphabet) form of "<createdAt unix micro>:<id>".
func EncodeCursor(p Position) string {
	raw := fmt.Sprintf("%d:%d", p.CreatedAt.UnixMicro(), p.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (Position, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Position{}, fmt.Errorf("decode cursor: %w", err)
	}
	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("decode cursor: malformed token")
	}
	micros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Position{}, fmt.Errorf("decode cursor: %w", err)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return Position{}, fmt.Errorf("decode cursor: malformed id")
	}
	return Position{CreatedAt: time.UnixMicro(micros).UTC(), ID: id}, nil
}

// Window trims an over-fetched result set down to the requested page.
// The caller fetches limit+1 rows; Window drops the sentinel row, flags
// hasNext, and derives the next cursor from the page's last row.
//
// positionOf extracts the sort position of one item; it is only invoked
// when a next page exists.
func Window[T any](items []T, limit int, positionOf func(T) Position) ([]T, CursorMetadata) {
	meta := CursorMetadata{Limit: limit}

	if len(items) > limit {
		items = items[:limit]
		meta.HasNext = true
		token := EncodeCursor(positionOf(items[len(items)-1]))
		meta.NextCursor = &token
	}
	return items, meta
}
