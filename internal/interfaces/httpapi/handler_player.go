package httpapi

import (
	"net/http"
	"time"

	"github.com/cricketlabs/livestats/internal/domain/player"
)

type playerUpsertRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Country        string  `json:"country" validate:"max=100"`
	PlayingRole    string  `json:"playingRole" validate:"max=50"`
	BattingStyle   string  `json:"battingStyle" validate:"max=50"`
	BowlingStyle   string  `json:"bowlingStyle" validate:"max=80"`
	TotalRuns      int64   `json:"totalRuns" validate:"gte=0"`
	TotalWickets   int     `json:"totalWickets" validate:"gte=0"`
	BattingAverage float64 `json:"battingAverage" validate:"gte=0"`
	BowlingAverage float64 `json:"bowlingAverage" validate:"gte=0"`
	EconomyRate    float64 `json:"economyRate" validate:"gte=0"`
	StrikeRate     float64 `json:"strikeRate" validate:"gte=0"`
	MatchesPlayed  int     `json:"matchesPlayed" validate:"gte=0"`
	Centuries      int     `json:"centuries" validate:"gte=0"`
	Fifties        int     `json:"fifties" validate:"gte=0"`
}

type playerDTO struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Country        string  `json:"country"`
	PlayingRole    string  `json:"playingRole"`
	BattingStyle   string  `json:"battingStyle"`
	BowlingStyle   string  `json:"bowlingStyle"`
	TotalRuns      int64   `json:"totalRuns"`
	TotalWickets   int     `json:"totalWickets"`
	BattingAverage float64 `json:"battingAverage"`
	BowlingAverage float64 `json:"bowlingAverage"`
	EconomyRate    float64 `json:"economyRate"`
	StrikeRate     float64 `json:"strikeRate"`
	MatchesPlayed  int     `json:"matchesPlayed"`
	Centuries      int     `json:"centuries"`
	Fifties        int     `json:"fifties"`
	CreatedAtUTC   string  `json:"createdAtUtc"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	filter := player.ListFilter{
		Country: queryString(r, "country"),
		Role:    queryString(r, "role"),
		Limit:   queryInt(r, "limit"),
		Offset:  queryInt(r, "offset"),
	}
	items, err := h.playerService.ListPlayers(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.GetPlayer(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.CreatePlayer(ctx, playerFromRequest(req))
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p := playerFromRequest(req)
	p.ID = id
	updated, err := h.playerService.UpdatePlayer(ctx, p)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.DeletePlayer(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ExportPlayers streams the player table as a CSV download.
func (h *Handler) ExportPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportPlayers")
	defer span.End()

	filter := player.ListFilter{
		Country: queryString(r, "country"),
		Role:    queryString(r, "role"),
	}
	raw, err := h.exportService.ExportPlayersCSV(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "export players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="players.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func playerFromRequest(req playerUpsertRequest) player.Player {
	return player.Player{
		Name:           req.Name,
		Country:        req.Country,
		PlayingRole:    req.PlayingRole,
		BattingStyle:   req.BattingStyle,
		BowlingStyle:   req.BowlingStyle,
		TotalRuns:      req.TotalRuns,
		TotalWickets:   req.TotalWickets,
		BattingAverage: req.BattingAverage,
		BowlingAverage: req.BowlingAverage,
		EconomyRate:    req.EconomyRate,
		StrikeRate:     req.StrikeRate,
		MatchesPlayed:  req.MatchesPlayed,
		Centuries:      req.Centuries,
		Fifties:        req.Fifties,
	}
}

func playerToDTO(v player.Player) playerDTO {
	dto := playerDTO{
		ID:             v.ID,
		Name:           v.Name,
		Country:        v.Country,
		PlayingRole:    v.PlayingRole,
		BattingStyle:   v.BattingStyle,
		BowlingStyle:   v.BowlingStyle,
		TotalRuns:      v.TotalRuns,
		TotalWickets:   v.TotalWickets,
		BattingAverage: v.BattingAverage,
		BowlingAverage: v.BowlingAverage,
		EconomyRate:    v.EconomyRate,
		StrikeRate:     v.StrikeRate,
		MatchesPlayed:  v.MatchesPlayed,
		Centuries:      v.Centuries,
		Fifties:        v.Fifties,
	}
	if !v.CreatedAt.IsZero() {
		dto.CreatedAtUTC = v.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
