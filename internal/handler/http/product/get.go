package product

import (
	"net/http"

	"pandamarket/internal/handler/http/pathutil"
	"pandamarket/internal/handler/http/respond"
	prodUC "pandamarket/internal/usecase/product"
)

type GetHandler struct{ Svc *prodUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(p))
}
