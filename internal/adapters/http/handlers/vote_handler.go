package handlers

import (
	"evote-backend/internal/adapters/http/middleware"
	"evote-backend/internal/core/services"
	"evote-backend/internal/pkg/cache"
	"evote-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// VoteHandler handles vote casting
type VoteHandler struct {
	votingService *services.VotingService
	rdb           *redis.Client
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(votingService *services.VotingService, rdb *redis.Client) *VoteHandler {
	return &VoteHandler{
		votingService: votingService,
		rdb:           rdb,
	}
}

// CastVote godoc
// @Summary Cast a vote
// @Description Records one vote for a candidate. Each voter may vote once; admins may not vote.
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /candidates/vote/{id} [post]
func (h *VoteHandler) CastVote(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	candidateID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid candidate ID")
	}

	if err := h.votingService.CastVote(c.Context(), userID, candidateID); err != nil {
		return response.DomainError(c, err, "Failed to record vote")
	}

	if h.rdb != nil {
		if err := cache.Delete(c.Context(), h.rdb, tallyCacheKey); err != nil {
			logrus.Warnf("tally cache invalidation failed: %v", err)
		}
	}

	return response.Success(c, "Vote recorded successfully", nil)
}
