package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/cricketlabs/livestats/internal/platform/logging"
	"github.com/cricketlabs/livestats/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	feedSyncService  *usecase.FeedSyncService
	matchService     *usecase.MatchService
	playerService    *usecase.PlayerService
	teamService      *usecase.TeamService
	venueService     *usecase.VenueService
	analyticsService *usecase.AnalyticsService
	dashboardService *usecase.DashboardService
	exportService    *usecase.ExportService
	readiness        func(ctx context.Context) error
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	feedSyncService *usecase.FeedSyncService,
	matchService *usecase.MatchService,
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	venueService *usecase.VenueService,
	analyticsService *usecase.AnalyticsService,
	dashboardService *usecase.DashboardService,
	exportService *usecase.ExportService,
	readiness func(ctx context.Context) error,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		feedSyncService:  feedSyncService,
		matchService:     matchService,
		playerService:    playerService,
		teamService:      teamService,
		venueService:     venueService,
		analyticsService: analyticsService,
		dashboardService: dashboardService,
		exportService:    exportService,
		readiness:        readiness,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Readyz")
	defer span.End()

	if h.readiness != nil {
		if err := h.readiness(ctx); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: readiness check: %v", usecase.ErrDependencyUnavailable, err))
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// queryInt reads an optional integer query parameter, zero when absent or
// malformed. Window normalization happens in the usecase layer.
func queryInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(name)))
	return v
}

func queryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
