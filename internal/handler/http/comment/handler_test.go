package comment

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pandamarket/internal/common/pagination"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"
	cmtUC "pandamarket/internal/usecase/comment"
)

// productExistence stubs only Exists; the resolver never calls the rest.
type productExistence struct {
	repository.ProductRepository
	ids map[int64]bool
}

func (s productExistence) Exists(_ context.Context, id int64) (bool, error) {
	return s.ids[id], nil
}

type articleExistence struct {
	repository.ArticleRepository
	ids map[int64]bool
}

func (s articleExistence) Exists(_ context.Context, id int64) (bool, error) {
	return s.ids[id], nil
}

type stubCommentRepo struct {
	items  map[int64]*entity.Comment
	nextID int64
	clock  time.Time
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{
		items:  make(map[int64]*entity.Comment),
		nextID: 1,
		clock:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *stubCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	c.ID = r.nextID
	c.CreatedAt = r.clock
	r.clock = r.clock.Add(time.Second)
	r.nextID++
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *stubCommentRepo) Get(_ context.Context, id int64) (*entity.Comment, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *stubCommentRepo) ListByParent(_ context.Context, q repository.CommentQuery) ([]*entity.Comment, error) {
	var all []*entity.Comment
	for _, c := range r.items {
		if c.Parent == q.Parent {
			all = append(all, c)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	var out []*entity.Comment
	for _, c := range all {
		if q.After != nil {
			after := c.CreatedAt.Before(q.After.CreatedAt) ||
				(c.CreatedAt.Equal(q.After.CreatedAt) && c.ID < q.After.ID)
			if !after {
				continue
			}
		}
		out = append(out, c)
		if len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (r *stubCommentRepo) Update(_ context.Context, c *entity.Comment) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

func newMux(t *testing.T) (*http.ServeMux, *stubCommentRepo) {
	t.Helper()
	repo := newStubCommentRepo()
	svc := &cmtUC.Service{
		Repo: repo,
		Resolver: &cmtUC.Resolver{
			Products: productExistence{ids: map[int64]bool{1: true}},
			Articles: articleExistence{ids: map[int64]bool{7: true}},
		},
		Cfg: pagination.CursorConfig{DefaultLimit: 10, MaxLimit: 100},
	}

	mux := http.NewServeMux()
	Register(mux, svc, slog.New(slog.DiscardHandler))
	return mux, repo
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateComment_OnBothParentKinds(t *testing.T) {
	mux, repo := newMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/products/1/comments", `{"content":"상품 잘 봤습니다"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Comment DTO    `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "댓글 등록 완료", resp.Message)
	assert.Equal(t, "product", resp.Comment.ParentKind)
	assert.Equal(t, int64(1), resp.Comment.ParentID)

	rec = doJSON(t, mux, http.MethodPost, "/articles/7/comments", `{"content":"좋은 글이네요"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, repo.items, 2)
}

func TestCreateComment_MissingParent(t *testing.T) {
	mux, repo := newMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/products/999/comments", `{"content":"아무도 못 볼 댓글"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "상품을 찾을 수 없습니다")

	rec = doJSON(t, mux, http.MethodPost, "/articles/999/comments", `{"content":"아무도 못 볼 댓글"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "게시글을 찾을 수 없습니다")

	assert.Empty(t, repo.items)
}

func TestThread_CursorWalk(t *testing.T) {
	mux, _ := newMux(t)

	for _, content := range []string{"첫 번째 댓글", "두 번째 댓글", "세 번째 댓글", "네 번째 댓글", "다섯 번째 댓글"} {
		rec := doJSON(t, mux, http.MethodPost, "/products/1/comments", `{"content":"`+content+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	var seen []int64
	target := "/products/1/comments?limit=2"
	for page := 0; page < 3; page++ {
		rec := doJSON(t, mux, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp pagination.CursorResponse[DTO]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		for _, c := range resp.Data {
			seen = append(seen, c.ID)
		}

		if page < 2 {
			require.True(t, resp.Pagination.HasNext)
			require.NotNil(t, resp.Pagination.NextCursor)
			target = "/products/1/comments?limit=2&cursor=" + *resp.Pagination.NextCursor
		} else {
			assert.False(t, resp.Pagination.HasNext)
			assert.Nil(t, resp.Pagination.NextCursor)
		}
	}

	// Newest first across all pages, no gaps or repeats.
	assert.Equal(t, []int64{5, 4, 3, 2, 1}, seen)
}

func TestThread_RejectsBadLimitAndCursor(t *testing.T) {
	mux, _ := newMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/products/1/comments?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "limit must be between 1 and 100")

	rec = doJSON(t, mux, http.MethodGet, "/products/1/comments?cursor=%21%21%21", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cursor is not a valid token")
}

func TestThread_MissingParentIsNotEmptyPage(t *testing.T) {
	mux, _ := newMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/products/999/comments", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateComment(t *testing.T) {
	mux, repo := newMux(t)
	doJSON(t, mux, http.MethodPost, "/products/1/comments", `{"content":"원래 댓글"}`)

	rec := doJSON(t, mux, http.MethodPatch, "/comments/1", `{"content":"수정된 댓글"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "댓글 수정 완료")
	assert.Equal(t, "수정된 댓글", repo.items[1].Content)
}

func TestDeleteComment(t *testing.T) {
	mux, repo := newMux(t)
	doJSON(t, mux, http.MethodPost, "/products/1/comments", `{"content":"지워질 댓글"}`)

	rec := doJSON(t, mux, http.MethodDelete, "/comments/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "댓글 삭제 완료")
	assert.Empty(t, repo.items)

	rec = doJSON(t, mux, http.MethodDelete, "/comments/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "댓글을 찾을 수 없습니다")
}
