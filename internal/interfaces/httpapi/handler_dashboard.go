package httpapi

import (
	"net/http"
)

type dashboardSummaryDTO struct {
	Players     int64          `json:"players"`
	Teams       int64          `json:"teams"`
	Venues      int64          `json:"venues"`
	Matches     int64          `json:"matches"`
	FeedMatches int64          `json:"feedMatches"`
	LastSync    *syncResultDTO `json:"lastSync,omitempty"`
}

func (h *Handler) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboardSummary")
	defer span.End()

	summary, err := h.dashboardService.Summary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := dashboardSummaryDTO{
		Players:     summary.Players,
		Teams:       summary.Teams,
		Venues:      summary.Venues,
		Matches:     summary.Matches,
		FeedMatches: summary.FeedMatches,
	}
	if summary.LastSync != nil {
		last := syncResultToDTO(*summary.LastSync)
		dto.LastSync = &last
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}
