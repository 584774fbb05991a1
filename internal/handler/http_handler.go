// Package handler exposes the strategy catalog over HTTP.
package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/idkit/internal/generator"
	"github.com/weiawesome/idkit/pkg/log"
	"github.com/weiawesome/idkit/pkg/response"
	"github.com/weiawesome/idkit/pkg/timestamp"
)

// maxBatchSize bounds a single generate call.
const maxBatchSize = 1000

type generateRequest struct {
	Count int `json:"count"`
}

type generateResponse struct {
	Kind  string   `json:"kind"`
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

type idRequest struct {
	ID string `json:"id" binding:"required"`
}

type validateResponse struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type parseResponse struct {
	Kind   string                 `json:"kind"`
	ID     string                 `json:"id"`
	Parsed *generator.ParseResult `json:"parsed"`
}

// Handler handles HTTP requests against the ID strategy catalog.
type Handler struct {
	registry generator.Registry
}

// NewHandler creates a new HTTP handler.
func NewHandler(registry generator.Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.GET("/kinds", h.ListKinds)

		ids := api.Group("/ids/:kind")
		{
			ids.POST("/generate", h.Generate)
			ids.POST("/validate", h.Validate)
			ids.POST("/parse", h.Parse)
		}
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "idkit",
		"time":    timestamp.NowUTC(),
	})
}

// ListKinds lists the registered strategy kinds.
func (h *Handler) ListKinds(c *gin.Context) {
	response.Success(c, gin.H{"kinds": h.registry.Kinds()})
}

// Generate mints one or more IDs of the requested kind. The body is
// optional; an absent or empty body means count 1.
func (h *Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	kind := c.Param("kind")

	gen, ok := h.registry.Get(kind)
	if !ok {
		response.NotFound(c, fmt.Sprintf("unknown kind %q", kind))
		return
	}

	req := generateRequest{Count: 1}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		l.Warn().Err(err).Msg("invalid generate request")
		response.BadRequest(c, err.Error())
		return
	}
	if req.Count < 1 || req.Count > maxBatchSize {
		response.BadRequest(c, fmt.Sprintf("count must be between 1 and %d", maxBatchSize))
		return
	}

	ids, err := gen.GenerateBatch(req.Count)
	if err != nil {
		l.Error().Err(err).Str(log.FieldKind, kind).Int(log.FieldCount, req.Count).Msg("generate failed")
		response.InternalError(c, "failed to generate ids")
		return
	}

	response.Success(c, generateResponse{Kind: kind, Count: len(ids), IDs: ids})
}

// Validate checks an ID against the requested kind's rules.
func (h *Handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	kind := c.Param("kind")

	gen, ok := h.registry.Get(kind)
	if !ok {
		response.NotFound(c, fmt.Sprintf("unknown kind %q", kind))
		return
	}

	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid validate request")
		response.BadRequest(c, err.Error())
		return
	}

	valid, reason := gen.Validate(req.ID)
	response.Success(c, validateResponse{Kind: kind, ID: req.ID, Valid: valid, Reason: reason})
}

// Parse decomposes an ID into the fields its kind can recover.
func (h *Handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	kind := c.Param("kind")

	gen, ok := h.registry.Get(kind)
	if !ok {
		response.NotFound(c, fmt.Sprintf("unknown kind %q", kind))
		return
	}

	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid parse request")
		response.BadRequest(c, err.Error())
		return
	}

	result, err := gen.Parse(req.ID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, parseResponse{Kind: kind, ID: req.ID, Parsed: result})
}
