package comment

import (
	"context"
	"fmt"

	"pandamarket/internal/apperr"
	"pandamarket/internal/common/pagination"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"
)

// Service provides comment management use cases.
type Service struct {
	Repo     repository.CommentRepository
	Resolver *Resolver
	Cfg      pagination.CursorConfig
}

// ThreadPage is one cursor window of a comment thread.
type ThreadPage struct {
	Data       []*entity.Comment
	Pagination pagination.CursorMetadata
}

// Create validates the content, resolves the parent reference, and
// persists the comment. A missing parent is NotFound and nothing is
// written.
func (s *Service) Create(ctx context.Context, parent entity.ParentRef, content string) (*entity.Comment, error) {
	trimmed, err := entity.ValidateCommentContent(content)
	if err != nil {
		return nil, apperr.Wrap(apperr.Invalid, err.Error(), err)
	}

	if err := s.Resolver.Resolve(ctx, parent); err != nil {
		return nil, err
	}

	c := &entity.Comment{Content: trimmed, Parent: parent}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", apperr.FromStorage(err, notFoundMessage(parent.Kind)))
	}
	return c, nil
}

// ListThread returns one cursor window of the parent's comment thread,
// newest first. The parent must exist; absence is NotFound, never an
// empty page. The repository is asked for limit+1 rows so the window
// can flag whether a next page exists.
func (s *Service) ListThread(ctx context.Context, parent entity.ParentRef, params pagination.CursorParams) (*ThreadPage, error) {
	if err := params.Validate(s.Cfg); err != nil {
		return nil, apperr.Wrap(apperr.Invalid, err.Error(), err)
	}

	if err := s.Resolver.Resolve(ctx, parent); err != nil {
		return nil, err
	}

	rows, err := s.Repo.ListByParent(ctx, repository.CommentQuery{
		Parent: parent,
		After:  params.After,
		Limit:  params.Limit + 1,
	})
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", apperr.FromStorage(err, apperr.MsgCommentNotFound))
	}

	data, meta := pagination.Window(rows, params.Limit, func(c *entity.Comment) pagination.Position {
		return pagination.Position{CreatedAt: c.CreatedAt, ID: c.ID}
	})
	return &ThreadPage{Data: data, Pagination: meta}, nil
}

// Update replaces a comment's content after verifying it exists.
func (s *Service) Update(ctx context.Context, id int64, content string) (*entity.Comment, error) {
	if id <= 0 {
		return nil, apperr.New(apperr.Invalid, apperr.MsgInvalidID)
	}

	trimmed, err := entity.ValidateCommentContent(content)
	if err != nil {
		return nil, apperr.Wrap(apperr.Invalid, err.Error(), err)
	}

	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", apperr.FromStorage(err, apperr.MsgCommentNotFound))
	}
	if c == nil {
		return nil, apperr.New(apperr.NotFound, apperr.MsgCommentNotFound)
	}

	c.Content = trimmed
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update comment: %w", apperr.FromStorage(err, apperr.MsgCommentNotFound))
	}
	return c, nil
}

// Delete removes a comment after verifying it exists and returns the
// deleted id.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, apperr.New(apperr.Invalid, apperr.MsgInvalidID)
	}

	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get comment: %w", apperr.FromStorage(err, apperr.MsgCommentNotFound))
	}
	if c == nil {
		return 0, apperr.New(apperr.NotFound, apperr.MsgCommentNotFound)
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return 0, fmt.Errorf("delete comment: %w", apperr.FromStorage(err, apperr.MsgCommentNotFound))
	}
	return id, nil
}
