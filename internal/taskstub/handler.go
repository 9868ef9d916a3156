package taskstub

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

type Handler struct {
	storage *Storage
}

func NewHandler(storage *Storage) *Handler {
	return &Handler{storage: storage}
}

// NewRouter serves the upcoming tasks endpoint plus seed/reset controls under /stub.
func NewRouter(storage *Storage) *gin.Engine {
	h := NewHandler(storage)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/tasks/api/upcoming/", h.HandleUpcoming)

	stub := r.Group("/stub")
	{
		stub.POST("/seed", h.HandleSeed)
		stub.POST("/reset", h.HandleReset)
		stub.POST("/fail", h.HandleFail)
		stub.DELETE("/tasks/:id", h.HandleRemove)
	}

	return r
}

// GET /tasks/api/upcoming/
func (h *Handler) HandleUpcoming(c *gin.Context) {
	if c.GetHeader("X-Requested-With") != "XMLHttpRequest" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ajax requests only"})
		return
	}

	tasks, status := h.storage.Upcoming()
	if status != 0 {
		c.JSON(status, gin.H{"error": "stub failure"})
		return
	}

	slog.Debug("served upcoming tasks",
		slog.Int("count", len(tasks)),
	)

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// POST /stub/seed
func (h *Handler) HandleSeed(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := h.storage.clock.Now()
	for _, t := range req.Tasks {
		var deadline time.Time
		switch {
		case t.Deadline != "":
			parsed, err := domain.ParseDeadline(t.Deadline)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deadline: " + t.Deadline})
				return
			}
			deadline = parsed
		case t.InMinutes != nil:
			deadline = now.Add(time.Duration(*t.InMinutes) * time.Minute)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "deadline or in_minutes is required for task " + t.ID})
			return
		}

		h.storage.Put(domain.TaskID(t.ID), t.Name, deadline)
	}

	slog.Info("seeded tasks", slog.Int("count", len(req.Tasks)))

	c.JSON(http.StatusOK, gin.H{
		"status": "seeded",
		"count":  len(req.Tasks),
	})
}

// POST /stub/reset
func (h *Handler) HandleReset(c *gin.Context) {
	h.storage.Reset()

	slog.Info("reset stub tasks")

	c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
}

// POST /stub/fail
func (h *Handler) HandleFail(c *gin.Context) {
	var req FailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != 0 && (req.Status < 400 || req.Status > 599) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be 0 or an error status"})
		return
	}

	h.storage.FailWith(req.Status)

	c.JSON(http.StatusOK, gin.H{"status": "ok", "fail_with": req.Status})
}

// DELETE /stub/tasks/:id
func (h *Handler) HandleRemove(c *gin.Context) {
	if !h.storage.Remove(domain.TaskID(c.Param("id"))) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
