package product

import (
	"encoding/json"
	"net/http"

	"pandamarket/internal/apperr"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/handler/http/respond"
	prodUC "pandamarket/internal/usecase/product"
)

type CreateHandler struct{ Svc *prodUC.Service }

// createResponse is the write envelope: a completion message plus the
// persisted entity.
type createResponse struct {
	Message string `json:"message"`
	Product DTO    `json:"product"`
}

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       any      `json:"price"`
		Tags        []string `json:"tags"`
		ImageURL    string   `json:"image_url"`
	}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber() // keep price digits intact for validation
	if err := dec.Decode(&req); err != nil {
		respond.Problem(w, r, apperr.Wrap(apperr.Invalid, "잘못된 요청 본문입니다.", err))
		return
	}

	created, err := h.Svc.Create(r.Context(), entity.ProductDraft{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, createResponse{
		Message: "상품 등록 완료",
		Product: toDTO(created),
	})
}
