package httpapi

import (
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/afthonia/elo-dashboard/internal/platform/logging"
	"github.com/afthonia/elo-dashboard/internal/usecase"
)

type Handler struct {
	statsService   *usecase.StatsService
	historyService *usecase.HistoryService
	compareService *usecase.CompareService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	statsService *usecase.StatsService,
	historyService *usecase.HistoryService,
	compareService *usecase.CompareService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		statsService:   statsService,
		historyService: historyService,
		compareService: compareService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	q := r.URL.Query()
	reset, _ := strconv.ParseBool(q.Get("reset"))

	result, err := h.statsService.List(ctx, usecase.ListInput{
		Season:      q.Get("season"),
		Team:        q.Get("team"),
		Position:    q.Get("position"),
		PlayingTime: q.Get("playing_time"),
		Search:      q.Get("search"),
		Reset:       reset,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, listResultToDTO(result))
}

func (h *Handler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerHistory")
	defer span.End()

	playerName := r.PathValue("playerName")
	seasonKey := r.URL.Query().Get("season")

	result, err := h.historyService.Get(ctx, playerName, seasonKey)
	if err != nil {
		h.logger.WarnContext(ctx, "player history failed",
			"player", playerName,
			"season", seasonKey,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, historyResultToDTO(result))
}

type compareRequest struct {
	Players string `json:"players" validate:"required"`
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	var req compareRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, usecase.ErrNoPlayersSupplied)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, usecase.ErrNoPlayersSupplied)
		return
	}

	result, err := h.compareService.Compare(ctx, req.Players)
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, compareResponseDTO{
		Players: result.Players,
		Chart:   result.ChartPNG,
	})
}
