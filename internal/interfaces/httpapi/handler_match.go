package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cricketlabs/livestats/internal/domain/match"
	"github.com/cricketlabs/livestats/internal/usecase"
)

type matchUpsertRequest struct {
	Description   string `json:"description" validate:"required,max=200"`
	Format        string `json:"format" validate:"max=50"`
	Team1ID       *int64 `json:"team1Id"`
	Team2ID       *int64 `json:"team2Id"`
	VenueID       *int64 `json:"venueId"`
	Team1Name     string `json:"team1Name" validate:"required,max=100"`
	Team2Name     string `json:"team2Name" validate:"required,max=100"`
	VenueName     string `json:"venueName" validate:"max=150"`
	City          string `json:"city" validate:"max=100"`
	MatchDate     string `json:"matchDate"`
	SeriesName    string `json:"seriesName" validate:"max=200"`
	Status        string `json:"status" validate:"max=250"`
	State         string `json:"state" validate:"max=50"`
	WinningTeam   string `json:"winningTeam" validate:"max=100"`
	TossWinner    string `json:"tossWinner" validate:"max=100"`
	TossDecision  string `json:"tossDecision" validate:"omitempty,oneof=bat bowl"`
	VictoryMargin string `json:"victoryMargin" validate:"max=100"`
}

type matchDTO struct {
	ID            int64  `json:"id"`
	ExternalID    *int64 `json:"externalId,omitempty"`
	Description   string `json:"description"`
	Format        string `json:"format"`
	Team1ID       *int64 `json:"team1Id,omitempty"`
	Team2ID       *int64 `json:"team2Id,omitempty"`
	VenueID       *int64 `json:"venueId,omitempty"`
	Team1Name     string `json:"team1Name"`
	Team2Name     string `json:"team2Name"`
	VenueName     string `json:"venueName"`
	City          string `json:"city"`
	MatchDate     string `json:"matchDate,omitempty"`
	SeriesName    string `json:"seriesName"`
	Status        string `json:"status"`
	State         string `json:"state"`
	WinningTeam   string `json:"winningTeam,omitempty"`
	TossWinner    string `json:"tossWinner,omitempty"`
	TossDecision  string `json:"tossDecision,omitempty"`
	VictoryMargin string `json:"victoryMargin,omitempty"`
	CreatedAtUTC  string `json:"createdAtUtc"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	filter := match.ListFilter{
		Format: queryString(r, "format"),
		State:  queryString(r, "state"),
		Series: queryString(r, "series"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	items, err := h.matchService.ListMatches(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(items))
}

// ListLiveMatches serves the live feed directly; nothing is stored and
// nothing stale from a previous sync is shown.
func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	records, err := h.feedSyncService.LiveMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, liveMatchesToDTOs(records))
}

func (h *Handler) ListRecentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentMatches")
	defer span.End()

	items, err := h.matchService.ListRecentMatches(ctx, queryInt(r, "limit"))
	if err != nil {
		h.logger.WarnContext(ctx, "list recent matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(items))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.GetMatch(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := matchFromRequest(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.CreateMatch(ctx, m)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := matchFromRequest(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	m.ID = id

	updated, err := h.matchService.UpdateMatch(ctx, m)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.DeleteMatch(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func matchFromRequest(req matchUpsertRequest) (match.Match, error) {
	m := match.Match{
		Description:   req.Description,
		Format:        req.Format,
		Team1ID:       req.Team1ID,
		Team2ID:       req.Team2ID,
		VenueID:       req.VenueID,
		Team1Name:     req.Team1Name,
		Team2Name:     req.Team2Name,
		VenueName:     req.VenueName,
		City:          req.City,
		SeriesName:    req.SeriesName,
		Status:        req.Status,
		State:         req.State,
		WinningTeam:   req.WinningTeam,
		TossWinner:    req.TossWinner,
		TossDecision:  req.TossDecision,
		VictoryMargin: req.VictoryMargin,
	}
	if req.MatchDate != "" {
		parsed, err := time.Parse("2006-01-02", req.MatchDate)
		if err != nil {
			return match.Match{}, fmt.Errorf("%w: matchDate must be YYYY-MM-DD", usecase.ErrInvalidInput)
		}
		m.MatchDate = parsed
	}
	return m, nil
}

func matchToDTO(v match.Match) matchDTO {
	dto := matchDTO{
		ID:            v.ID,
		ExternalID:    v.ExternalID,
		Description:   v.Description,
		Format:        v.Format,
		Team1ID:       v.Team1ID,
		Team2ID:       v.Team2ID,
		VenueID:       v.VenueID,
		Team1Name:     v.Team1Name,
		Team2Name:     v.Team2Name,
		VenueName:     v.VenueName,
		City:          v.City,
		SeriesName:    v.SeriesName,
		Status:        v.Status,
		State:         v.State,
		WinningTeam:   v.WinningTeam,
		TossWinner:    v.TossWinner,
		TossDecision:  v.TossDecision,
		VictoryMargin: v.VictoryMargin,
	}
	if !v.MatchDate.IsZero() {
		dto.MatchDate = v.MatchDate.Format("2006-01-02")
	}
	if !v.CreatedAt.IsZero() {
		dto.CreatedAtUTC = v.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func matchesToDTOs(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

type liveMatchDTO struct {
	ExternalID  *int64 `json:"externalId,omitempty"`
	Description string `json:"description"`
	Format      string `json:"format"`
	SeriesName  string `json:"seriesName"`
	Team1Name   string `json:"team1Name"`
	Team2Name   string `json:"team2Name"`
	VenueName   string `json:"venueName"`
	City        string `json:"city"`
	Status      string `json:"status"`
	State       string `json:"state"`
	StartDate   string `json:"startDate,omitempty"`
}

func liveMatchesToDTOs(records []match.Record) []liveMatchDTO {
	out := make([]liveMatchDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, liveMatchDTO{
			ExternalID:  rec.ExternalID,
			Description: rec.Description,
			Format:      rec.Format,
			SeriesName:  rec.SeriesName,
			Team1Name:   rec.Team1Name,
			Team2Name:   rec.Team2Name,
			VenueName:   rec.VenueName,
			City:        rec.City,
			Status:      rec.Status,
			State:       rec.State,
			StartDate:   rec.StartDate,
		})
	}
	return out
}
