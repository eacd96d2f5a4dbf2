// Package product provides use cases for managing market products.
// It implements business logic for creating, updating, deleting, and
// listing products, delegating persistence to the product repository.
package product

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"pandamarket/internal/apperr"
	"pandamarket/internal/common/pagination"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"
)

// Service provides product management use cases.
type Service struct {
	Repo repository.ProductRepository
	Cfg  pagination.Config
}

// PaginatedResult is one page of product summaries plus metadata.
type PaginatedResult struct {
	Data       []repository.ProductSummary
	Pagination pagination.Metadata
}

// Create validates the draft and persists a new product.
// All field violations are aggregated into a single Invalid error;
// nothing reaches storage when validation fails.
func (s *Service) Create(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error) {
	p, err := entity.ValidateProduct(draft)
	if err != nil {
		return nil, apperr.Wrap(apperr.Invalid, err.Error(), err)
	}

	if err := s.Repo.Create(ctx, &p); err != nil {
		return nil, fmt.Errorf("create product: %w", apperr.FromStorage(err, apperr.MsgProductNotFound))
	}
	return &p, nil
}

// Get retrieves a single product by id. A malformed id is Invalid,
// a missing row is NotFound; the two are never conflated.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Product, error) {
	if id <= 0 {
		return nil, apperr.New(apperr.Invalid, apperr.MsgInvalidID)
	}

	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", apperr.FromStorage(err, apperr.MsgProductNotFound))
	}
	if p == nil {
		return nil, apperr.New(apperr.NotFound, apperr.MsgProductNotFound)
	}
	return p, nil
}

// List returns one offset page of product summaries. The count and the
// page fetch run concurrently against the same search predicate, so the
// reported total always matches the filter.
func (s *Service) List(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	params = params.WithDefaults(s.Cfg)

	var (
		total     int64
		summaries []repository.ProductSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.Repo.Count(gctx, params.Search)
		return err
	})
	g.Go(func() error {
		var err error
		summaries, err = s.Repo.List(gctx, repository.ProductQuery{
			Search: params.Search,
			Sort:   params.Sort,
			Offset: params.Offset,
			Limit:  params.Limit,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list products: %w", apperr.FromStorage(err, apperr.MsgProductNotFound))
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
// any storage call, then existence is verified and only supplied fields
// are re-validated.
func (s *Service) Update(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	if id <= 0 {
		return nil, apperr.New(apperr.Invalid, apperr.MsgInvalidID)
	}
	if patch.IsEmpty() {
		err := entity.EmptyPatchError()
		return nil, apperr.Wrap(apperr.Invalid, err.Error(), err)
	}

	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", apperr.FromStorage(err, apperr.MsgProductNotFound))
	}
	if p == nil {
		return nil, apperr.New(apperr.NotFound, apperr.MsgProductNotFound)
	}

	if err := entity.ApplyProductPatch(p, patch); err != nil {
		return nil, apperr.Wrap(apperr.Invalid, err.Error(), err)
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", apperr.FromStorage(err, apperr.MsgProductNotFound))
	}
	return p, nil
}

// Delete removes a product after verifying it exists, so a missing row
// reports NotFound rather than a silent no-op. Returns the deleted id.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, apperr.New(apperr.Invalid, apperr.MsgInvalidID)
	}

	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("check product: %w", apperr.FromStorage(err, apperr.MsgProductNotFound))
	}
	if !exists {
		return 0, apperr.New(apperr.NotFound, apperr.MsgProductNotFound)
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete product: %w", apperr.FromStorage(err, apperr.MsgProductNotFound))
	}
	return id, nil
}
