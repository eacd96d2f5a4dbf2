// Package article provides use cases for managing free-board articles.
package article

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"pandamarket/internal/apperr"
	"pandamarket/internal/common/pagination"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"
)

// Service provides article management use cases.
type Service struct {
	Repo repository.ArticleRepository
	Cfg  pagination.Config
}

// PaginatedResult is one page of article summaries plus metadata.
type PaginatedResult struct {
	Data       []repository.ArticleSummary
	Pagination pagination.Metadata
}

// Create validates the draft and persists a new article.
func (s *Service) Create(ctx context.Context, draft entity.ArticleDraft) (*entity.Article, error) {
	a, err := entity.ValidateArticle(draft)
	if err != nil {
		return nil, apperr.Wrap(apperr.Invalid, err.Error(), err)
	}

	if err := s.Repo.Create(ctx, &a); err != nil {
		return nil, fmt.Errorf("create article: %w", apperr.FromStorage(err, apperr.MsgArticleNotFound))
	}
	return &a, nil
}

// Get retrieves a single article by id.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, apperr.New(apperr.Invalid, apperr.MsgInvalidID)
	}

	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", apperr.FromStorage(err, apperr.MsgArticleNotFound))
	}
	if a == nil {
		return nil, apperr.New(apperr.NotFound, apperr.MsgArticleNotFound)
	}
	return a, nil
}

// List returns one offset page of article summaries; count and page
// fetch share the filter predicate and run concurrently.
func (s *Service) List(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	params = params.WithDefaults(s.Cfg)

	var (
		total     int64
		summaries []repository.ArticleSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.Repo.Count(gctx, params.Search)
		return err
	})
	g.Go(func() error {
		var err error
		summaries, err = s.Repo.List(gctx, repository.ArticleQuery{
			Search: params.Search,
			Sort:   params.Sort,
			Offset: params.Offset,
			Limit:  params.Limit,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list articles: %w", apperr.FromStorage(err, apperr.MsgArticleNotFound))
	}

	return &PaginatedResult{
		Data: summaries,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// Update applies a partial update. An empty patch fails closed before
// any storage call; existence is verified next and only supplied
// fields are re-validated.
func (s *Service) Update(ctx context.Context, id int64, patch entity.ArticlePatch) (*entity.Article, error) {
	if id <= 0 {
		return nil, apperr.New(apperr.Invalid, apperr.MsgInvalidID)
	}
	if patch.IsEmpty() {
		err := entity.EmptyPatchError()
		return nil, apperr.Wrap(apperr.Invalid, err.Error(), err)
	}

	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", apperr.FromStorage(err, apperr.MsgArticleNotFound))
	}
	if a == nil {
		return nil, apperr.New(apperr.NotFound, apperr.MsgArticleNotFound)
	}

	if err := entity.ApplyArticlePatch(a, patch); err != nil {
		return nil, apperr.Wrap(apperr.Invalid, err.Error(), err)
	}

	if err := s.Repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update article: %w", apperr.FromStorage(err, apperr.MsgArticleNotFound))
	}
	return a, nil
}

// Delete removes an article after verifying it exists and returns the
// deleted id.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, apperr.New(apperr.Invalid, apperr.MsgInvalidID)
	}

	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("check article: %w", apperr.FromStorage(err, apperr.MsgArticleNotFound))
	}
	if !exists {
		return 0, apperr.New(apperr.NotFound, apperr.MsgArticleNotFound)
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete article: %w", apperr.FromStorage(err, apperr.MsgArticleNotFound))
	}
	return id, nil
}
