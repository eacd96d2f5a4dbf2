package article

import (
	"encoding/json"
	"net/http"

	"pandamarket/internal/apperr"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/handler/http/pathutil"
	"pandamarket/internal/handler/http/respond"
	artUC "pandamarket/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

type updateResponse struct {
	Message string `json:"message"`
	Article DTO    `json:"article"`
}

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Problem(w, r, apperr.Wrap(apperr.Invalid, "잘못된 요청 본문입니다.", err))
		return
	}

	updated, err := h.Svc.Update(r.Context(), id, entity.ArticlePatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, updateResponse{
		Message: "게시글 수정 완료",
		Article: toDTO(updated),
	})
}
