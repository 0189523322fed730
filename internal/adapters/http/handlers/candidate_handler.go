package handlers

import (
	"fmt"
	"strconv"
	"time"

	"evote-backend/internal/adapters/http/middleware"
	"evote-backend/internal/core/domain"
	"evote-backend/internal/core/services"
	"evote-backend/internal/pkg/cache"
	"evote-backend/internal/pkg/pagination"
	"evote-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	tallyCacheKey  = "candidates:tally"
	listCachePfx   = "candidates:list:"
	candidateCache = 30 * time.Second
)

// CandidateHandler handles candidate directory and tally endpoints
type CandidateHandler struct {
	candidateService *services.CandidateService
	rdb              *redis.Client
}

// NewCandidateHandler creates a new candidate handler. rdb may be nil, in which
// case list/tally responses are never cached.
func NewCandidateHandler(candidateService *services.CandidateService, rdb *redis.Client) *CandidateHandler {
	return &CandidateHandler{
		candidateService: candidateService,
		rdb:              rdb,
	}
}

// Create godoc
// @Summary Create a candidate
// @Description Adds a candidate to the directory (admin only)
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.CreateCandidateInput true "Candidate data"
// @Success 201 {object} response.Response{data=models.CandidateResponse}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /candidates [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var input services.CreateCandidateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	candidate, err := h.candidateService.Create(c.Context(), userID, &input)
	if err != nil {
		return response.DomainError(c, err, "Failed to create candidate")
	}

	h.invalidateCaches(c)

	return response.Created(c, "Candidate created successfully", candidate)
}

// Update godoc
// @Summary Update a candidate
// @Description Updates candidate fields (admin only)
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID"
// @Param request body services.UpdateCandidateInput true "Fields to update"
// @Success 200 {object} response.Response{data=models.CandidateResponse}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /candidates/{id} [put]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	candidateID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid candidate ID")
	}

	var input services.UpdateCandidateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	candidate, err := h.candidateService.Update(c.Context(), userID, candidateID, &input)
	if err != nil {
		return response.DomainError(c, err, "Failed to update candidate")
	}

	h.invalidateCaches(c)

	return response.Success(c, "Candidate updated successfully", candidate)
}

// Delete godoc
// @Summary Delete a candidate
// @Description Removes a candidate from the directory (admin only)
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	candidateID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid candidate ID")
	}

	if err := h.candidateService.Delete(c.Context(), userID, candidateID); err != nil {
		return response.DomainError(c, err, "Failed to delete candidate")
	}

	h.invalidateCaches(c)

	return response.Success(c, "Candidate deleted successfully", nil)
}

// List godoc
// @Summary List candidates
// @Description Returns the public candidate list (name and party only)
// @Tags candidates
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response{data=pagination.Response}
// @Router /candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	cacheKey := fmt.Sprintf("%s%d:%d", listCachePfx, params.Page, params.Limit)

	if h.rdb != nil {
		var cached pagination.Response
		if found, err := cache.Get(c.Context(), h.rdb, cacheKey, &cached); err == nil && found {
			return response.Success(c, "Candidates retrieved successfully", cached)
		}
	}

	summaries, total, err := h.candidateService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.DomainError(c, err, "Failed to list candidates")
	}

	result := pagination.NewResponse(summaries, params, total)

	if h.rdb != nil {
		if err := cache.Set(c.Context(), h.rdb, cacheKey, result, candidateCache); err != nil {
			logrus.Warnf("candidate list cache write failed: %v", err)
		}
	}

	return response.Success(c, "Candidates retrieved successfully", result)
}

// Tally godoc
// @Summary Vote tally
// @Description Returns per-party vote counts, highest first
// @Tags candidates
// @Produce json
// @Success 200 {object} response.Response{data=[]domain.TallyEntry}
// @Router /candidates/vote/count [get]
func (h *CandidateHandler) Tally(c *fiber.Ctx) error {
	if h.rdb != nil {
		var cached []*domain.TallyEntry
		if found, err := cache.Get(c.Context(), h.rdb, tallyCacheKey, &cached); err == nil && found {
			return response.Success(c, "Vote counts retrieved successfully", cached)
		}
	}

	entries, err := h.candidateService.Tally(c.Context())
	if err != nil {
		return response.DomainError(c, err, "Failed to retrieve vote counts")
	}

	if h.rdb != nil {
		if err := cache.Set(c.Context(), h.rdb, tallyCacheKey, entries, candidateCache); err != nil {
			logrus.Warnf("tally cache write failed: %v", err)
		}
	}

	return response.Success(c, "Vote counts retrieved successfully", entries)
}

// invalidateCaches drops the tally cache after a mutation. List caches expire
// on their own short TTL.
func (h *CandidateHandler) invalidateCaches(c *fiber.Ctx) {
	if h.rdb == nil {
		return
	}
	if err := cache.Delete(c.Context(), h.rdb, tallyCacheKey); err != nil {
		logrus.Warnf("tally cache invalidation failed: %v", err)
	}
}

// parseIDParam parses a positive uint path parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id parameter: %q", raw)
	}
	return uint(id), nil
}
