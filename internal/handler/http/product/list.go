package product

import (
	"log/slog"
	"net/http"
	"time"

	"pandamarket/internal/common/pagination"
	"pandamarket/internal/handler/http/respond"
	"pandamarket/internal/observability/logging"
	prodUC "pandamarket/internal/usecase/product"
)

type ListHandler struct {
	Svc           *prodUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params := pagination.ParseQueryParams(r, h.PaginationCfg)
	pagination.LogRequest(logger, "products", params)

	result, err := h.Svc.List(ctx, params)
	if err != nil {
		logger.Error("failed to list products",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("products", "database")
		pagination.RecordRequest("products", "offset", http.StatusInternalServerError)
		respond.Problem(w, r, err)
		return
	}

	dtos := make([]SummaryDTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, toSummaryDTO(item))
	}

	pagination.UpdateTotalCount("products", result.Pagination.Total)
	pagination.RecordRequest("products", "offset", http.StatusOK)
	pagination.RecordDuration("products", time.Since(startTime).Seconds())
	pagination.LogResponse(logger, "products", len(dtos), time.Since(startTime), http.StatusOK)

	respond.JSON(w, http.StatusOK, pagination.Response[SummaryDTO]{
		Data:       dtos,
		Pagination: result.Pagination,
	})
}
