package comment

import (
	"encoding/json"
	"net/http"

	"pandamarket/internal/apperr"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/handler/http/pathutil"
	"pandamarket/internal/handler/http/respond"
	cmtUC "pandamarket/internal/usecase/comment"
)

// CreateHandler appends a comment to one parent's thread. The parent
// kind is fixed at registration time; the parent id comes from the path.
type CreateHandler struct {
	Svc  *cmtUC.Service
	Kind entity.ParentKind
}

type createResponse struct {
	Message string `json:"message"`
	Comment DTO    `json:"comment"`
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	created, err := h.Svc.Create(r.Context(), entity.ParentRef{Kind: h.Kind, ID: id}, req.Content)
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, createResponse{
		Message: "댓글 등록 완료",
		Comment: toDTO(created),
	})
}
