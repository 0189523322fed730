package services

import (
	"context"
	"errors"
	"fmt"

	"evote-backend/internal/adapters/persistence/models"
	"evote-backend/internal/adapters/persistence/repositories"
	"evote-backend/internal/core/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Candidate service errors
var (
	ErrNotAdmin          = fmt.Errorf("%w: user does not have admin role", domain.ErrForbidden)
	ErrCandidateNotFound = fmt.Errorf("%w: candidate not found", domain.ErrNotFound)
	ErrNameRequired      = fmt.Errorf("%w: candidate name is required", domain.ErrValidation)
	ErrPartyRequired     = fmt.Errorf("%w: candidate party is required", domain.ErrValidation)
	ErrInvalidAge        = fmt.Errorf("%w: candidate age must be positive", domain.ErrValidation)
)

// CandidateService manages the candidate directory. All mutations are gated by
// the authorization policy; reads are public.
type CandidateService struct {
	candidateRepo repositories.CandidateRepository
	authz         *AuthorizationService
}

// NewCandidateService creates a new candidate service
func NewCandidateService(candidateRepo repositories.CandidateRepository, authz *AuthorizationService) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		authz:         authz,
	}
}

// CreateCandidateInput represents candidate creation input
type CreateCandidateInput struct {
	Name  string `json:"name"`
	Party string `json:"party"`
	Age   int    `json:"age"`
}

// UpdateCandidateInput represents a partial candidate update
type UpdateCandidateInput struct {
	Name  *string `json:"name"`
	Party *string `json:"party"`
	Age   *int    `json:"age"`
}

// Create persists a new candidate with zero votes. Admin only.
func (s *CandidateService) Create(ctx context.Context, requesterID uint, input *CreateCandidateInput) (*models.CandidateResponse, error) {
	if !s.authz.IsAdmin(ctx, requesterID) {
		return nil, ErrNotAdmin
	}

	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Party == "" {
		return nil, ErrPartyRequired
	}
	if input.Age <= 0 {
		return nil, ErrInvalidAge
	}

	candidate := &models.Candidate{
		Name:      input.Name,
		Party:     input.Party,
		Age:       input.Age,
		VoteCount: 0,
	}

	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"candidate_id": candidate.ID,
		"admin_id":     requesterID,
	}).Info("candidate created")

	return candidate.ToResponse(), nil
}

// Update applies validated field updates to an existing candidate. Admin only.
func (s *CandidateService) Update(ctx context.Context, requesterID, candidateID uint, input *UpdateCandidateInput) (*models.CandidateResponse, error) {
	if !s.authz.IsAdmin(ctx, requesterID) {
		return nil, ErrNotAdmin
	}

	candidate, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrNameRequired
		}
		candidate.Name = *input.Name
	}
	if input.Party != nil {
		if *input.Party == "" {
			return nil, ErrPartyRequired
		}
		candidate.Party = *input.Party
	}
	if input.Age != nil {
		if *input.Age <= 0 {
			return nil, ErrInvalidAge
		}
		candidate.Age = *input.Age
	}

	if err := s.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"candidate_id": candidate.ID,
		"admin_id":     requesterID,
	}).Info("candidate updated")

	return candidate.ToResponse(), nil
}

// Delete removes a candidate. Admin only.
func (s *CandidateService) Delete(ctx context.Context, requesterID, candidateID uint) error {
	if !s.authz.IsAdmin(ctx, requesterID) {
		return ErrNotAdmin
	}

	if _, err := s.candidateRepo.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCandidateNotFound
		}
		return err
	}

	if err := s.candidateRepo.Delete(ctx, candidateID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"candidate_id": candidateID,
		"admin_id":     requesterID,
	}).Info("candidate deleted")

	return nil
}

// List returns the public candidate projection: name and party only, no
// identifiers and no vote data.
func (s *CandidateService) List(ctx context.Context, offset, limit int) ([]*models.CandidateSummary, int64, error) {
	candidates, total, err := s.candidateRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]*models.CandidateSummary, len(candidates))
	for i, c := range candidates {
		summaries[i] = c.ToSummary()
	}
	return summaries, total, nil
}

// Tally returns {party, count} for every candidate, vote count descending.
// Ties keep the store's natural order.
func (s *CandidateService) Tally(ctx context.Context) ([]*domain.TallyEntry, error) {
	candidates, err := s.candidateRepo.ListByVoteCountDesc(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.TallyEntry, len(candidates))
	for i, c := range candidates {
		entries[i] = &domain.TallyEntry{
			Party: c.Party,
			Count: c.VoteCount,
		}
	}
	return entries, nil
}
