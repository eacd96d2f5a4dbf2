package article

import (
	"log/slog"
	"net/http"

	"pandamarket/internal/common/pagination"
	artUC "pandamarket/internal/usecase/article"
)

// Register wires the article routes onto the mux.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("POST   /articles", CreateHandler{svc})
	mux.Handle("GET    /articles/{id}", GetHandler{svc})
	mux.Handle("PATCH  /articles/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{svc})
}
