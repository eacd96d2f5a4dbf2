package comment

import (
	"log/slog"
	"net/http"
	"time"

	"pandamarket/internal/apperr"
	"pandamarket/internal/common/pagination"
	"pandamarket/internal/domain/entity"
	"pandamarket/internal/handler/http/pathutil"
	"pandamarket/internal/handler/http/respond"
	"pandamarket/internal/observability/logging"
	cmtUC "pandamarket/internal/usecase/comment"
)

// ThreadHandler serves one cursor window of a parent's comment thread,
// newest first.
type ThreadHandler struct {
	Svc    *cmtUC.Service
	Kind   entity.ParentKind
	Cfg    pagination.CursorConfig
	Logger *slog.Logger
}

func (h ThreadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	id, err := pathutil.ID(r, "id")
	if err != nil {
		respond.Problem(w, r, err)
		return
	}

	params, err := pagination.ParseCursorParams(r, h.Cfg)
	if err != nil {
		pagination.RecordError("comments", "validation")
		pagination.RecordRequest("comments", "cursor", http.StatusBadRequest)
		respond.Problem(w, r, apperr.Wrap(apperr.Invalid, err.Error(), err))
		return
	}

	logger.Info("comment thread request",
		"parent_kind", string(h.Kind),
		"parent_id", id,
		"limit", params.Limit,
		"has_cursor", params.After != nil)

	page, err := h.Svc.ListThread(ctx, entity.ParentRef{Kind: h.Kind, ID: id}, params)
	if err != nil {
		logger.Error("failed to list comment thread",
			"error", err.Error(),
			"parent_kind", string(h.Kind),
			"parent_id", id)
		pagination.RecordError("comments", "database")
		pagination.RecordRequest("comments", "cursor", apperr.HTTPStatus(apperr.KindOf(err)))
		respond.Problem(w, r, err)
		return
	}

	dtos := make([]DTO, 0, len(page.Data))
	for _, c := range page.Data {
		dtos = append(dtos, toDTO(c))
	}

	pagination.RecordRequest("comments", "cursor", http.StatusOK)
	pagination.RecordDuration("comments", time.Since(startTime).Seconds())
	pagination.LogResponse(logger, "comments", len(dtos), time.Since(startTime), http.StatusOK)

	respond.JSON(w, http.StatusOK, pagination.NewCursorResponse(dtos, page.Pagination))
}
