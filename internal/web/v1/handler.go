package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/focus-service/internal/core/domain"
	logicv1 "github.com/duynhne/focus-service/internal/logic/v1"
	"github.com/duynhne/focus-service/internal/logger"
	"github.com/duynhne/focus-service/middleware"
)

// Handler groups HTTP handlers for the focus API.
// Dependencies are injected via the constructor — no global state.
//
// Error contract: request-shape problems are 400, everything else is a
// generic 500 carrying the underlying message as {"error": ...}. Clients
// distinguish failures by message text only.
type Handler struct {
	focus *logicv1.FocusService
}

// NewHandler creates a new Handler with the given FocusService.
func NewHandler(focus *logicv1.FocusService) *Handler {
	return &Handler{focus: focus}
}

// RegisterRoutes registers all focus API routes on the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sessions", h.ListSessions)
	rg.POST("/sessions", h.CreateSession)
	rg.DELETE("/sessions/:id", h.DeleteSession)
	rg.GET("/stats", h.GetStats)
	rg.GET("/user", h.GetUser)
}

// ListSessions handles GET /api/sessions.
func (h *Handler) ListSessions(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	sessions, err := h.focus.ListSessions(ctx)
	if err != nil {
		span.RecordError(err)
		log.Error().Err(err).Msg("List sessions failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// CreateSession handles POST /api/sessions.
func (h *Handler) CreateSession(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	var req domain.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetAttributes(attribute.Bool("request.valid", false))
		span.RecordError(err)
		log.Error().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(attribute.Bool("request.valid", true))

	session, err := h.focus.CreateSession(ctx, req)
	if err != nil {
		span.RecordError(err)
		log.Error().Err(err).Str("task", req.Task).Msg("Create session failed")

		switch {
		case errors.Is(err, logicv1.ErrTaskRequired),
			errors.Is(err, logicv1.ErrDurationRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log.Info().
		Int64("session_id", session.ID).
		Str("task", session.Task).
		Int("duration", session.Duration).
		Msg("Session created")
	c.JSON(http.StatusOK, session)
}

// DeleteSession handles DELETE /api/sessions/:id.
// The success message is the same whether or not the id existed.
func (h *Handler) DeleteSession(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		span.RecordError(err)
		log.Error().Err(err).Str("id", c.Param("id")).Msg("Malformed session id")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.focus.DeleteSession(ctx, id); err != nil {
		span.RecordError(err)
		log.Error().Err(err).Int64("session_id", id).Msg("Delete session failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Info().Int64("session_id", id).Msg("Session deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

// GetStats handles GET /api/stats.
func (h *Handler) GetStats(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	stats, err := h.focus.GetStats(ctx, domain.DefaultUserID)
	if err != nil {
		span.RecordError(err)
		log.Error().Err(err).Msg("Stats computation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetUser handles GET /api/user, creating the default profile when absent.
func (h *Handler) GetUser(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "http.request", trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	defer span.End()

	log := logger.FromContext(ctx)

	profile, err := h.focus.GetProfile(ctx, domain.DefaultUserID)
	if err != nil {
		span.RecordError(err)
		log.Error().Err(err).Msg("Profile fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
