package article

import (
	"log/slog"
	"net/http"
	"time"

	"pandamarket/internal/common/pagination"
	"pandamarket/internal/handler/http/respond"
	"pandamarket/internal/observability/logging"
	artUC "pandamarket/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params := pagination.ParseQueryParams(r, h.PaginationCfg)
	pagination.LogRequest(logger, "articles", params)

	result, err := h.Svc.List(ctx, params)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("articles", "database")
		pagination.RecordRequest("articles", "offset", http.StatusInternalServerError)
		respond.Problem(w, r, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, summaryToDTO(item))
	}

	pagination.UpdateTotalCount("articles", result.Pagination.Total)
	pagination.RecordRequest("articles", "offset", http.StatusOK)
	pagination.RecordDuration("articles", time.Since(startTime).Seconds())
	pagination.LogResponse(logger, "articles", len(dtos), time.Since(startTime), http.StatusOK)

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}
