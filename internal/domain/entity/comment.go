package entity

import "time"

// ParentKind identifies which resource type a comment is attached to.
type ParentKind string

const (
	ParentProduct ParentKind = "product"
	ParentArticle ParentKind = "article"
)

// Valid reports whether the kind is one of the known parent kinds.
func (k ParentKind) Valid() bool {
	return k == ParentProduct || k == ParentArticle
}

// ParentRef is a tagged reference to a comment's parent resource.
// A comment always belongs to exactly one product or one article;
// the tagged form makes that invariant structural instead of relying
// on two nullable foreign keys.
type ParentRef struct {
	Kind ParentKind
	ID   int64
}

// Comment represents a comment attached to a product or an article.
type Comment struct {
	ID        int64
	Content   string
	Parent    ParentRef
	CreatedAt time.Time
}
