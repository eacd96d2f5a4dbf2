package comment

import (
	"log/slog"
	"net/http"

	"pandamarket/internal/domain/entity"
	cmtUC "pandamarket/internal/usecase/comment"
)

// Register wires the comment routes onto the mux. Thread routes are
// nested under each parent resource; mutation routes address comments
// directly by id.
func Register(mux *http.ServeMux, svc *cmtUC.Service, logger *slog.Logger) {
	mux.Handle("GET    /products/{id}/comments", ThreadHandler{
		Svc:    svc,
		Kind:   entity.ParentProduct,
		Cfg:    svc.Cfg,
		Logger: logger,
	})
	mux.Handle("POST   /products/{id}/comments", CreateHandler{Svc: svc, Kind: entity.ParentProduct})
	mux.Handle("GET    /articles/{id}/comments", ThreadHandler{
		Svc:    svc,
		Kind:   entity.ParentArticle,
		Cfg:    svc.Cfg,
		Logger: logger,
	})
	mux.Handle("POST   /articles/{id}/comments", CreateHandler{Svc: svc, Kind: entity.ParentArticle})
	mux.Handle("PATCH  /comments/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /comments/{id}", DeleteHandler{Svc: svc})
}
