package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	engine ReminderEngine
	board  AlertBoard
}

func NewReminderHandler(engine ReminderEngine, board AlertBoard) *ReminderHandler {
	return &ReminderHandler{
		engine: engine,
		board:  board,
	}
}

// Register mounts the control routes on g.
func (h *ReminderHandler) Register(g *gin.RouterGroup) {
	g.GET("/preference", h.HandleGetPreference)
	g.PUT("/preference", h.HandlePutPreference)
	g.POST("/visibility", h.HandleVisibility)
	g.POST("/poll", h.HandlePoll)
	g.GET("/alerts", h.HandleListAlerts)
	g.DELETE("/alerts/:id", h.HandleDismissAlert)
	g.POST("/session/reset", h.HandleSessionReset)
}

func (h *ReminderHandler) HandleGetPreference(c *gin.Context) {
	c.JSON(http.StatusOK, PreferenceResponse{
		Enabled:   h.engine.Enabled(),
		Persisted: h.engine.Persisted(),
	})
}

func (h *ReminderHandler) HandlePutPreference(c *gin.Context) {
	ctx := c.Request.Context()

	var req PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "preference request validation failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	// The toggle takes effect even when it could not be saved.
	persisted := true
	if err := h.engine.SetEnabled(ctx, *req.Enabled); err != nil {
		persisted = false
		slog.WarnContext(ctx, "preference applied but not persisted",
			slog.Bool("enabled", *req.Enabled),
			slog.String("error", err.Error()),
		)
	}

	c.JSON(http.StatusOK, PreferenceResponse{
		Enabled:   h.engine.Enabled(),
		Persisted: persisted,
	})
}

func (h *ReminderHandler) HandleVisibility(c *gin.Context) {
	ctx := c.Request.Context()

	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if req.Hidden {
		c.JSON(http.StatusAccepted, VisibilityResponse{PollScheduled: false})
		return
	}

	h.engine.NotifyVisible()
	slog.DebugContext(ctx, "visibility regained, poll scheduled")

	c.JSON(http.StatusAccepted, VisibilityResponse{PollScheduled: true})
}

func (h *ReminderHandler) HandlePoll(c *gin.Context) {
	result := h.engine.PollOnce(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

func (h *ReminderHandler) HandleListAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, h.board.Snapshot())
}

func (h *ReminderHandler) HandleDismissAlert(c *gin.Context) {
	id := c.Param("id")
	if !h.board.Dismiss(id) {
		respondError(c, http.StatusNotFound, "not_found", "alert not found")
		return
	}

	slog.InfoContext(c.Request.Context(), "alert dismissed by user",
		slog.String("alert_id", id),
	)

	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) HandleSessionReset(c *gin.Context) {
	cleared := h.engine.ResetSession(c.Request.Context())
	c.JSON(http.StatusOK, SessionResetResponse{Cleared: cleared})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}
