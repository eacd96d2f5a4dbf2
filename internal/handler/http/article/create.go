package article

import (
	"encoding/json"
	"net/http"

	"pandamarket/internal/apperr"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/handler/http/respond"
	artUC "pandamarket/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

type createResponse struct {
	Message string `json:"message"`
	Article DTO    `json:"article"`
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Problem(w, r, apperr.Wrap(apperr.Invalid, "잘못된 요청 본문입니다.", err))
		return
	}

	created, err := h.Svc.Create(r.Context(), entity.ArticleDraft{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, createResponse{
		Message: "게시글 등록 완료",
		Article: toDTO(created),
	})
}
