package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"evote-backend/internal/adapters/persistence/models"
	"evote-backend/internal/adapters/persistence/repositories"
	"evote-backend/internal/core/domain"

	"gorm.io/gorm"
)

// In-memory repository fakes used across the service tests.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.AadharCardNumber == user.AadharCardNumber {
			return gorm.ErrDuplicatedKey
		}
		if user.AdminGuard != nil && u.AdminGuard != nil && *u.AdminGuard == *user.AdminGuard {
			return gorm.ErrDuplicatedKey
		}
	}

	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByAadhar(_ context.Context, aadhar string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.AadharCardNumber == aadhar {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ExistsByAadhar(_ context.Context, aadhar string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.AadharCardNumber == aadhar {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uint, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = passwordHash
	return nil
}

func (f *fakeUserRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

type fakeCandidateRepo struct {
	mu         sync.Mutex
	nextID     uint
	candidates map[uint]*models.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[uint]*models.Candidate)}
}

func (f *fakeCandidateRepo) Create(_ context.Context, candidate *models.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	candidate.ID = f.nextID
	cp := *candidate
	f.candidates[candidate.ID] = &cp
	return nil
}

func (f *fakeCandidateRepo) GetByID(_ context.Context, id uint) (*models.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.candidates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCandidateRepo) Update(_ context.Context, candidate *models.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.candidates[candidate.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *candidate
	f.candidates[candidate.ID] = &cp
	return nil
}

func (f *fakeCandidateRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.candidates[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.candidates, id)
	return nil
}

func (f *fakeCandidateRepo) List(_ context.Context, offset, limit int) ([]*models.Candidate, int64, error) {
	all := f.sortedByID()

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeCandidateRepo) ListByVoteCountDesc(_ context.Context) ([]*models.Candidate, error) {
	all := f.sortedByID()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].VoteCount > all[j].VoteCount
	})
	return all, nil
}

func (f *fakeCandidateRepo) sortedByID() []*models.Candidate {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*models.Candidate, 0, len(f.candidates))
	for _, c := range f.candidates {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// fakeVoteRepo mirrors the real repository's transaction: flip is_voted only if
// it is still false, then bump the candidate count and append the vote row,
// all under one lock.
type fakeVoteRepo struct {
	mu         sync.Mutex
	users      *fakeUserRepo
	candidates *fakeCandidateRepo
	votes      map[uint]uint // userID -> candidateID
}

func newFakeVoteRepo(users *fakeUserRepo, candidates *fakeCandidateRepo) *fakeVoteRepo {
	return &fakeVoteRepo{
		users:      users,
		candidates: candidates,
		votes:      make(map[uint]uint),
	}
}

func (f *fakeVoteRepo) Record(_ context.Context, userID, candidateID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.candidates.mu.Lock()
	candidate, ok := f.candidates.candidates[candidateID]
	f.candidates.mu.Unlock()
	if !ok {
		return gorm.ErrRecordNotFound
	}

	f.users.mu.Lock()
	user, ok := f.users.users[userID]
	if !ok {
		f.users.mu.Unlock()
		return gorm.ErrRecordNotFound
	}
	if user.IsVoted {
		f.users.mu.Unlock()
		return repositories.ErrAlreadyVoted
	}
	user.IsVoted = true
	f.users.mu.Unlock()

	f.candidates.mu.Lock()
	candidate.VoteCount++
	f.candidates.mu.Unlock()

	f.votes[userID] = candidateID
	return nil
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	nextID uint
	tokens map[uint]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[uint]*models.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	token.ID = f.nextID
	cp := *token
	f.tokens[token.ID] = &cp
	return nil
}

func (f *fakeRefreshTokenRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range f.tokens {
		if t.TokenHash == tokenHash {
			cp := *t
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRefreshTokenRepo) Revoke(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.tokens[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	t.RevokedAt = &now
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeByTokenHash(_ context.Context, tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range f.tokens {
		if t.TokenHash == tokenHash && t.RevokedAt == nil {
			now := time.Now()
			t.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeAllByUserID(_ context.Context, userID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range f.tokens {
		if t.UserID == userID && t.RevokedAt == nil {
			now := time.Now()
			t.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for id, t := range f.tokens {
		if t.IsExpired() {
			delete(f.tokens, id)
			n++
		}
	}
	return n, nil
}
