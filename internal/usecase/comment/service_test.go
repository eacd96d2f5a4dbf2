package comment_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"pandamarket/internal/apperr"
	"pandamarket/internal/common/pagination"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"
	"pandamarket/internal/usecase/comment"
)

// existence stubs: only Exists matters to the resolver, the embedded
// nil interface panics loudly if anything else gets called.
type productExistence struct {
	repository.ProductRepository
	ids map[int64]bool
}

func (p productExistence) Exists(_ context.Context, id int64) (bool, error) {
	return p.ids[id], nil
}

type articleExistence struct {
	repository.ArticleRepository
	ids map[int64]bool
	err error
}

func (a articleExistence) Exists(_ context.Context, id int64) (bool, error) {
	if a.err != nil {
		return false, a.err
	}
	return a.ids[id], nil
}

// In-memory CommentRepository ordered by (createdAt DESC, id DESC).
type stubCommentRepo struct {
	data   map[int64]*entity.Comment
	nextID int64
	clock  time.Time
}

func newCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{
		data:   map[int64]*entity.Comment{},
		nextID: 1,
		clock:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *stubCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	c.ID = s.nextID
	c.CreatedAt = s.clock
	s.nextID++
	s.clock = s.clock.Add(time.Second)
	cp := *c
	s.data[c.ID] = &cp
	return nil
}

func (s *stubCommentRepo) Get(_ context.Context, id int64) (*entity.Comment, error) {
	c, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s *stubCommentRepo) ListByParent(_ context.Context, q repository.CommentQuery) ([]*entity.Comment, error) {
	var rows []*entity.Comment
	for _, c := range s.data {
		if c.Parent != q.Parent {
			continue
		}
		cp := *c
		rows = append(rows, &cp)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].ID > rows[j].ID
	})
	if q.After != nil {
		idx := 0
		for idx < len(rows) {
			c := rows[idx]
			if c.CreatedAt.Before(q.After.CreatedAt) ||
				(c.CreatedAt.Equal(q.After.CreatedAt) && c.ID < q.After.ID) {
				break
			}
			idx++
		}
		rows = rows[idx:]
	}
	if len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}
	return rows, nil
}

func (s *stubCommentRepo) Update(_ context.Context, c *entity.Comment) error {
	cp := *c
	s.data[c.ID] = &cp
	return nil
}

func (s *stubCommentRepo) Delete(_ context.Context, id int64) error {
	delete(s.data, id)
	return nil
}

func newService(repo *stubCommentRepo, productIDs, articleIDs map[int64]bool) *comment.Service {
	return &comment.Service{
		Repo: repo,
		Resolver: &comment.Resolver{
			Products: productExistence{ids: productIDs},
			Articles: articleExistence{ids: articleIDs},
		},
		Cfg: pagination.CursorConfig{DefaultLimit: 10, MaxLimit: 100},
	}
}

func TestResolve_MalformedVersusMissing(t *testing.T) {
	r := &comment.Resolver{
		Products: productExistence{ids: map[int64]bool{7: true}},
		Articles: articleExistence{ids: map[int64]bool{}},
	}
	ctx := context.Background()

	// Malformed references are Invalid before storage is consulted.
	for _, ref := range []entity.ParentRef{
		{Kind: entity.ParentProduct, ID: 0},
		{Kind: entity.ParentProduct, ID: -3},
		{Kind: entity.ParentKind("video"), ID: 1},
	} {
		err := r.Resolve(ctx, ref)
		if !apperr.IsKind(err, apperr.Invalid) {
			t.Errorf("Resolve(%+v) kind = %v, want Invalid", ref, apperr.KindOf(err))
		}
		if apperr.UserMessage(err) != apperr.MsgInvalidID {
			t.Errorf("Resolve(%+v) message = %q", ref, apperr.UserMessage(err))
		}
	}

	// A well-formed id with no row is NotFound, kind-specific.
	err := r.Resolve(ctx, entity.ParentRef{Kind: entity.ParentProduct, ID: 99})
	if !apperr.IsKind(err, apperr.NotFound) || apperr.UserMessage(err) != apperr.MsgProductNotFound {
		t.Errorf("missing product: kind=%v msg=%q", apperr.KindOf(err), apperr.UserMessage(err))
	}
	err = r.Resolve(ctx, entity.ParentRef{Kind: entity.ParentArticle, ID: 99})
	if !apperr.IsKind(err, apperr.NotFound) || apperr.UserMessage(err) != apperr.MsgArticleNotFound {
		t.Errorf("missing article: kind=%v msg=%q", apperr.KindOf(err), apperr.UserMessage(err))
	}

	if err := r.Resolve(ctx, entity.ParentRef{Kind: entity.ParentProduct, ID: 7}); err != nil {
		t.Errorf("existing product: err=%v", err)
	}
}

func TestResolve_StorageFailure(t *testing.T) {
	r := &comment.Resolver{
		Articles: articleExistence{err: errors.New("connection reset")},
	}
	err := r.Resolve(context.Background(), entity.ParentRef{Kind: entity.ParentArticle, ID: 1})
	if !apperr.IsKind(err, apperr.Unknown) {
		t.Errorf("kind = %v, want Unknown", apperr.KindOf(err))
	}
}

func TestCreate_MissingParentWritesNothing(t *testing.T) {
	repo := newCommentRepo()
	svc := newService(repo, map[int64]bool{}, map[int64]bool{})

	_, err := svc.Create(context.Background(),
		entity.ParentRef{Kind: entity.ParentArticle, ID: 42}, "부모가 없는 댓글")
	if !apperr.IsKind(err, apperr.NotFound) {
		t.Fatalf("kind = %v, want NotFound", apperr.KindOf(err))
	}
	if len(repo.data) != 0 {
		t.Errorf("comment was persisted despite missing parent")
	}
}

func TestCreate_InvalidContentSkipsResolution(t *testing.T) {
	repo := newCommentRepo()
	svc := newService(repo, map[int64]bool{1: true}, nil)

	_, err := svc.Create(context.Background(),
		entity.ParentRef{Kind: entity.ParentProduct, ID: 1}, "짧")
	if !apperr.IsKind(err, apperr.Invalid) {
		t.Fatalf("kind = %v, want Invalid", apperr.KindOf(err))
	}
	if len(repo.data) != 0 {
		t.Errorf("invalid comment was persisted")
	}
}

// Walking a 5-comment thread with limit 2 yields pages of 2, 2, 1;
// the concatenation is the full thread, newest first, no duplicates.
func TestListThread_CursorWalk(t *testing.T) {
	repo := newCommentRepo()
	parent := entity.ParentRef{Kind: entity.ParentProduct, ID: 1}
	svc := newService(repo, map[int64]bool{1: true}, nil)
	ctx := context.Background()

	contents := []string{
		"첫 번째 댓글입니다", "두 번째 댓글입니다", "세 번째 댓글입니다",
		"네 번째 댓글입니다", "다섯 번째 댓글입니다",
	}
	for _, c := range contents {
		if _, err := svc.Create(ctx, parent, c); err != nil {
			t.Fatal(err)
		}
	}

	var seen []int64
	params := pagination.CursorParams{Limit: 2}
	wantSizes := []int{2, 2, 1}
	for i, want := range wantSizes {
		page, err := svc.ListThread(ctx, parent, params)
		if err != nil {
			t.Fatalf("page %d: %v", i, err)
		}
		if len(page.Data) != want {
			t.Fatalf("page %d: len=%d, want %d", i, len(page.Data), want)
		}
		wantNext := i < len(wantSizes)-1
		if page.Pagination.HasNext != wantNext {
			t.Fatalf("page %d: has_next=%v, want %v", i, page.Pagination.HasNext, wantNext)
		}
		for _, c := range page.Data {
			seen = append(seen, c.ID)
		}
		if wantNext {
			if page.Pagination.NextCursor == nil {
				t.Fatalf("page %d: next_cursor missing", i)
			}
			pos, err := pagination.DecodeCursor(*page.Pagination.NextCursor)
			if err != nil {
				t.Fatalf("page %d: bad cursor: %v", i, err)
			}
			params = pagination.CursorParams{After: &pos, Limit: 2}
		} else if page.Pagination.NextCursor != nil {
			t.Fatalf("last page still carries a cursor")
		}
	}

	// Newest first means ids 5..1.
	for i, id := range seen {
		if want := int64(5 - i); id != want {
			t.Errorf("seen[%d] = %d, want %d", i, id, want)
		}
	}
}

func TestUpdateDelete_Lifecycle(t *testing.T) {
	repo := newCommentRepo()
	parent := entity.ParentRef{Kind: entity.ParentArticle, ID: 3}
	svc := newService(repo, nil, map[int64]bool{3: true})
	ctx := context.Background()

	created, err := svc.Create(ctx, parent, "원래 댓글 내용입니다")
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(ctx, created.ID, "수정된 댓글 내용입니다")
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if updated.Content != "수정된 댓글 내용입니다" {
		t.Errorf("content = %q", updated.Content)
	}
	if updated.Parent != parent {
		t.Errorf("parent changed: %+v", updated.Parent)
	}

	id, err := svc.Delete(ctx, created.ID)
	if err != nil || id != created.ID {
		t.Fatalf("Delete = (%d, %v)", id, err)
	}
	if _, err := svc.Delete(ctx, created.ID); !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("second delete kind = %v, want NotFound", apperr.KindOf(err))
	}

	if _, err := svc.Update(ctx, 0, "유효한 길이의 내용"); !apperr.IsKind(err, apperr.Invalid) {
		t.Errorf("id 0 kind = %v, want Invalid", apperr.KindOf(err))
	}
}

func TestListThread_RejectsBadLimit(t *testing.T) {
	svc := newService(newCommentRepo(), map[int64]bool{1: true}, nil)
	parent := entity.ParentRef{Kind: entity.ParentProduct, ID: 1}

	for _, limit := range []int{0, -1, 101} {
		_, err := svc.ListThread(context.Background(), parent, pagination.CursorParams{Limit: limit})
		if !apperr.IsKind(err, apperr.Invalid) {
			t.Errorf("limit %d: kind = %v, want Invalid", limit, apperr.KindOf(err))
		}
	}
}
