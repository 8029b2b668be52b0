package httpapi

import (
	"net/http"
	"time"

	"github.com/cricketlabs/livestats/internal/usecase"
)

type syncResultDTO struct {
	RunID         string `json:"runId"`
	Source        string `json:"source"`
	Total         int    `json:"total"`
	Stored        int    `json:"stored"`
	Failed        int    `json:"failed"`
	FinishedAtUTC string `json:"finishedAtUtc"`
}

func (h *Handler) SyncFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncFeed")
	defer span.End()

	source := queryString(r, "source")
	result, err := h.feedSyncService.Sync(ctx, source)
	if err != nil {
		h.logger.WarnContext(ctx, "feed sync failed", "source", source, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, syncResultToDTO(result))
}

func syncResultToDTO(v usecase.SyncResult) syncResultDTO {
	return syncResultDTO{
		RunID:         v.RunID,
		Source:        v.Source,
		Total:         v.Total,
		Stored:        v.Stored,
		Failed:        v.Failed,
		FinishedAtUTC: v.FinishedAt.UTC().Format(time.RFC3339),
	}
}
