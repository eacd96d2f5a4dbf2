package article

import (
	"net/http"

	"pandamarket/internal/handler/http/pathutil"
	"pandamarket/internal/handler/http/respond"
	artUC "pandamarket/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

type deleteResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	deletedID, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, deleteResponse{
		Message: "게시글 삭제 완료",
		ID:      deletedID,
	})
}
