package article

import (
	"net/http"

	"pandamarket/internal/handler/http/pathutil"
	"pandamarket/internal/handler/http/respond"
	artUC "pandamarket/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(a))
}
