package httpapi

import (
	"net/http"
	"time"

	"github.com/cricketlabs/livestats/internal/domain/venue"
)

type venueUpsertRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	City     string `json:"city" validate:"max=100"`
	Country  string `json:"country" validate:"max=100"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

type venueDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Capacity     int    `json:"capacity"`
	CreatedAtUTC string `json:"createdAtUtc"`
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	filter := venue.ListFilter{
		Country:     queryString(r, "country"),
		MinCapacity: queryInt(r, "minCapacity"),
		Limit:       queryInt(r, "limit"),
		Offset:      queryInt(r, "offset"),
	}
	items, err := h.venueService.ListVenues(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list venues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]venueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, venueToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetVenue")
	defer span.End()

	id, err := pathID(r, "venueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.venueService.GetVenue(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, venueToDTO(item))
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateVenue")
	defer span.End()

	var req venueUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.venueService.CreateVenue(ctx, venueFromRequest(req))
	if err != nil {
		h.logger.WarnContext(ctx, "create venue failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, venueToDTO(created))
}

func (h *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateVenue")
	defer span.End()

	id, err := pathID(r, "venueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req venueUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	v := venueFromRequest(req)
	v.ID = id
	updated, err := h.venueService.UpdateVenue(ctx, v)
	if err != nil {
		h.logger.WarnContext(ctx, "update venue failed", "venue_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, venueToDTO(updated))
}

func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteVenue")
	defer span.End()

	id, err := pathID(r, "venueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.venueService.DeleteVenue(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete venue failed", "venue_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func venueFromRequest(req venueUpsertRequest) venue.Venue {
	return venue.Venue{
		Name:     req.Name,
		City:     req.City,
		Country:  req.Country,
		Capacity: req.Capacity,
	}
}

func venueToDTO(v venue.Venue) venueDTO {
	dto := venueDTO{
		ID:       v.ID,
		Name:     v.Name,
		City:     v.City,
		Country:  v.Country,
		Capacity: v.Capacity,
	}
	if !v.CreatedAt.IsZero() {
		dto.CreatedAtUTC = v.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
