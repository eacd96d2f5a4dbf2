package product

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pandamarket/internal/common/pagination"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/repository"
	prodUC "pandamarket/internal/usecase/product"
)

type stubRepo struct {
	items  map[int64]*entity.Product
	nextID int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{items: make(map[int64]*entity.Product), nextID: 1}
}

func (r *stubRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.nextID
	p.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	r.nextID++
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *stubRepo) Get(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

func (r *stubRepo) matching(search string) []*entity.Product {
	var out []*entity.Product
	for _, p := range r.items {
		if search == "" ||
			strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) ||
			strings.Contains(strings.ToLower(p.Description), strings.ToLower(search)) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubRepo) List(_ context.Context, q repository.ProductQuery) ([]repository.ProductSummary, error) {
	matched := r.matching(q.Search)
	var out []repository.ProductSummary
	for i := q.Offset; i < len(matched) && len(out) < q.Limit; i++ {
		p := matched[i]
		out = append(out, repository.ProductSummary{
			ID: p.ID, Name: p.Name, Price: p.Price, CreatedAt: p.CreatedAt,
		})
	}
	return out, nil
}

func (r *stubRepo) Count(_ context.Context, search string) (int64, error) {
	return int64(len(r.matching(search))), nil
}

func (r *stubRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

func newMux(t *testing.T) (*http.ServeMux, *stubRepo) {
	t.Helper()
	repo := newStubRepo()
	cfg := pagination.Config{DefaultPage: 1, DefaultLimit: 10, MaxLimit: 50}
	svc := &prodUC.Service{Repo: repo, Cfg: cfg}

	mux := http.NewServeMux()
	Register(mux, svc, cfg, slog.New(slog.DiscardHandler))
	return mux, repo
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateProduct(t *testing.T) {
	mux, repo := newMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/products",
		`{"name":"빈티지 자전거","description":"상태 좋은 중고 자전거입니다","price":"150000","tags":["자전거","중고"]}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Product DTO    `json:"product"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "상품 등록 완료", resp.Message)
	assert.Equal(t, int64(1), resp.Product.ID)
	assert.Equal(t, "빈티지 자전거", resp.Product.Name)
	assert.Equal(t, float64(150000), resp.Product.Price) // numeric string coerced
	assert.Len(t, repo.items, 1)
}

func TestCreateProduct_AggregatesViolations(t *testing.T) {
	mux, repo := newMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/products", `{"name":"","price":-5}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "상품 이름은 필수입니다.")
	assert.Contains(t, body, "가격은 0보다 커야 합니다.")
	assert.Empty(t, repo.items)
}

func TestCreateProduct_MalformedBody(t *testing.T) {
	mux, _ := newMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/products", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "잘못된 요청 본문입니다.")
}

func TestGetProduct(t *testing.T) {
	mux, repo := newMux(t)
	require.NoError(t, repo.Create(context.Background(), &entity.Product{
		Name: "의자", Description: "편안한 사무용 의자입니다", Price: 30000,
	}))

	rec := doJSON(t, mux, http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto DTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "의자", dto.Name)
	assert.NotNil(t, dto.Tags) // nil tags render as []
}

func TestGetProduct_NotFoundVersusInvalid(t *testing.T) {
	mux, _ := newMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/products/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "상품을 찾을 수 없습니다")
	assert.Contains(t, rec.Body.String(), `"statusCode":404`)

	rec = doJSON(t, mux, http.MethodGet, "/products/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "유효하지 않은 ID 형식입니다")
	assert.Contains(t, rec.Body.String(), `"statusCode":400`)
}

func TestListProducts_SearchAndPagination(t *testing.T) {
	mux, repo := newMux(t)
	for i := 0; i < 15; i++ {
		name := fmt.Sprintf("책상 %d", i)
		if i%3 == 0 {
			name = fmt.Sprintf("자전거 %d", i)
		}
		require.NoError(t, repo.Create(context.Background(), &entity.Product{
			Name: name, Description: "괜찮은 중고 물건입니다", Price: 1000,
		}))
	}

	rec := doJSON(t, mux, http.MethodGet, "/products?search=자전거&limit=3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp pagination.Response[SummaryDTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, 1, resp.Pagination.Page)
}

func TestListProducts_ClampsLimit(t *testing.T) {
	mux, repo := newMux(t)
	require.NoError(t, repo.Create(context.Background(), &entity.Product{
		Name: "의자", Description: "편안한 사무용 의자입니다", Price: 30000,
	}))

	// limit above MaxLimit is clamped, not rejected.
	rec := doJSON(t, mux, http.MethodGet, "/products?limit=500", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp pagination.Response[SummaryDTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 50, resp.Pagination.Limit)
}

func TestUpdateProduct(t *testing.T) {
	mux, repo := newMux(t)
	require.NoError(t, repo.Create(context.Background(), &entity.Product{
		Name: "의자", Description: "편안한 사무용 의자입니다", Price: 30000,
	}))

	rec := doJSON(t, mux, http.MethodPatch, "/products/1", `{"price":25000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "상품 수정 완료")
	assert.Equal(t, float64(25000), repo.items[1].Price)
	assert.Equal(t, "의자", repo.items[1].Name) // untouched field survives
}

func TestUpdateProduct_RequiresField(t *testing.T) {
	mux, repo := newMux(t)
	require.NoError(t, repo.Create(context.Background(), &entity.Product{
		Name: "의자", Description: "편안한 사무용 의자입니다", Price: 30000,
	}))

	rec := doJSON(t, mux, http.MethodPatch, "/products/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "수정할 필드가 최소 하나 필요합니다.")
}

func TestDeleteProduct(t *testing.T) {
	mux, repo := newMux(t)
	require.NoError(t, repo.Create(context.Background(), &entity.Product{
		Name: "의자", Description: "편안한 사무용 의자입니다", Price: 30000,
	}))

	rec := doJSON(t, mux, http.MethodDelete, "/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "상품 삭제 완료")
	assert.Empty(t, repo.items)

	rec = doJSON(t, mux, http.MethodDelete, "/products/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
