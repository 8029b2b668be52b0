package httpapi

import (
	"net/http"

	"github.com/cricketlabs/livestats/internal/domain/analytics"
	"github.com/cricketlabs/livestats/internal/usecase"
)

type querySummaryDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
}

type queryResultDTO struct {
	Query querySummaryDTO `json:"query"`
	Rows  []analytics.Row `json:"rows"`
}

func (h *Handler) ListAnalyticsQueries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAnalyticsQueries")
	defer span.End()

	summaries := h.analyticsService.ListQueries(ctx)
	out := make([]querySummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, querySummaryToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RunAnalyticsQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAnalyticsQuery")
	defer span.End()

	queryID := r.PathValue("queryID")
	result, err := h.analyticsService.RunQuery(ctx, queryID)
	if err != nil {
		h.logger.WarnContext(ctx, "run analytics query failed", "query_id", queryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := result.Rows
	if rows == nil {
		rows = []analytics.Row{}
	}
	writeSuccess(ctx, w, http.StatusOK, queryResultDTO{
		Query: querySummaryToDTO(result.Query),
		Rows:  rows,
	})
}

func querySummaryToDTO(s usecase.QuerySummary) querySummaryDTO {
	return querySummaryDTO{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Level:       s.Level,
	}
}
