// Package comment provides use cases for nested comments on products
// and articles, including polymorphic parent resolution and cursor
// pagination over threads.
package comment

import (
	"context"
	"fmt"

	"pandamarket/internal/apperr"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"
)

// Resolver verifies that a comment's polymorphic parent reference
// points at an existing product or article before any comment
// operation touches storage.
type Resolver struct {
	Products repository.ProductRepository
	Articles repository.ArticleRepository
}

// notFoundMessage returns the kind-specific missing-parent message.
func notFoundMessage(kind entity.ParentKind) string {
	if kind == entity.ParentProduct {
		return apperr.MsgProductNotFound
	}
	return apperr.MsgArticleNotFound
}

// Resolve checks the parent reference. A malformed id (zero, negative,
// or an unknown kind) is rejected as Invalid before any storage call;
// a well-formed id whose row is absent is NotFound with the parent
// kind's own message. The distinction is part of the API contract.
func (r *Resolver) Resolve(ctx context.Context, ref entity.ParentRef) error {
	if !ref.Kind.Valid() || ref.ID <= 0 {
		return apperr.New(apperr.Invalid, apperr.MsgInvalidID)
	}

	var (
		exists bool
		err    error
	)
	switch ref.Kind {
	case entity.ParentProduct:
		exists, err = r.Products.Exists(ctx, ref.ID)
	case entity.ParentArticle:
		exists, err = r.Articles.Exists(ctx, ref.ID)
	}
	if err != nil {
		return fmt.Errorf("resolve parent: %w", apperr.FromStorage(err, notFoundMessage(ref.Kind)))
	}
	if !exists {
		return apperr.New(apperr.NotFound, notFoundMessage(ref.Kind))
	}
	return nil
}
