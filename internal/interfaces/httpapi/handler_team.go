package httpapi

import (
	"net/http"
	"time"

	"github.com/cricketlabs/livestats/internal/domain/team"
)

type teamUpsertRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Country       string `json:"country" validate:"max=100"`
	MatchesPlayed int    `json:"matchesPlayed" validate:"gte=0"`
	MatchesWon    int    `json:"matchesWon" validate:"gte=0"`
	MatchesLost   int    `json:"matchesLost" validate:"gte=0"`
}

type teamDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Country       string  `json:"country"`
	MatchesPlayed int     `json:"matchesPlayed"`
	MatchesWon    int     `json:"matchesWon"`
	MatchesLost   int     `json:"matchesLost"`
	WinPercentage float64 `json:"winPercentage"`
	CreatedAtUTC  string  `json:"createdAtUtc"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	filter := team.ListFilter{
		Country: queryString(r, "country"),
		Limit:   queryInt(r, "limit"),
		Offset:  queryInt(r, "offset"),
	}
	items, err := h.teamService.ListTeams(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	id, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.GetTeam(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req teamUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.CreateTeam(ctx, teamFromRequest(req))
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	id, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req teamUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t := teamFromRequest(req)
	t.ID = id
	updated, err := h.teamService.UpdateTeam(ctx, t)
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(updated))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	id, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.teamService.DeleteTeam(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func teamFromRequest(req teamUpsertRequest) team.Team {
	return team.Team{
		Name:          req.Name,
		Country:       req.Country,
		MatchesPlayed: req.MatchesPlayed,
		MatchesWon:    req.MatchesWon,
		MatchesLost:   req.MatchesLost,
	}
}

func teamToDTO(v team.Team) teamDTO {
	dto := teamDTO{
		ID:            v.ID,
		Name:          v.Name,
		Country:       v.Country,
		MatchesPlayed: v.MatchesPlayed,
		MatchesWon:    v.MatchesWon,
		MatchesLost:   v.MatchesLost,
		WinPercentage: v.WinPercentage,
	}
	if !v.CreatedAt.IsZero() {
		dto.CreatedAtUTC = v.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
