package product

import (
	"log/slog"
	"net/http"

	"pandamarket/internal/common/pagination"
	prodUC "pandamarket/internal/usecase/product"
)

// Register wires the product routes onto the mux.
func Register(mux *http.ServeMux, svc *prodUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /products", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("POST   /products", CreateHandler{svc})
	mux.Handle("GET    /products/{id}", GetHandler{svc})
	mux.Handle("PATCH  /products/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /products/{id}", DeleteHandler{svc})
}
