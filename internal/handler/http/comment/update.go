package comment

import (
	"encoding/json"
	"net/http"

	"pandamarket/internal/apperr"
	"pandamarket/internal/handler/http/pathutil"
	"pandamarket/internal/handler/http/respond"
	cmtUC "pandamarket/internal/usecase/comment"
)

type UpdateHandler struct{ Svc *cmtUC.Service }

type updateResponse struct {
	Message string `json:"message"`
	Comment DTO    `json:"comment"`
}

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Problem(w, r, apperr.Wrap(apperr.Invalid, "잘못된 요청 본문입니다.", err))
		return
	}

	updated, err := h.Svc.Update(r.Context(), id, req.Content)
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, updateResponse{
		Message: "댓글 수정 완료",
		Comment: toDTO(updated),
	})
}
