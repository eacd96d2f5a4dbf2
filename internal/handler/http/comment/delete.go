package comment

import (
	"net/http"

	"pandamarket/internal/handler/http/pathutil"
	"pandamarket/internal/handler/http/respond"
	cmtUC "pandamarket/internal/usecase/comment"
)

type DeleteHandler struct{ Svc *cmtUC.Service }

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
		Message: "댓글 삭제 완료",
		ID:      deletedID,
	})
}
