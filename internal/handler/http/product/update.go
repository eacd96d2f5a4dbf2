package product

import (
	"encoding/json"
	"net/http"

	"pandamarket/internal/apperr"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/handler/http/pathutil"
	"pandamarket/internal/handler/http/respond"
	prodUC "pandamarket/internal/usecase/product"
)

type UpdateHandler struct{ Svc *prodUC.Service }

type updateResponse struct {
	Message string `json:"message"`
	Product DTO    `json:"product"`
}

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       any      `json:"price"`
		Tags        []string `json:"tags"`
	}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		respond.Problem(w, r, apperr.Wrap(apperr.Invalid, "잘못된 요청 본문입니다.", err))
		return
	}

	updated, err := h.Svc.Update(r.Context(), id, entity.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Tags:        req.Tags,
	})
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, updateResponse{
		Message: "상품 수정 완료",
		Product: toDTO(updated),
	})
}
