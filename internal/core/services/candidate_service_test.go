package services

import (
	"context"
	"errors"
	"testing"

	"evote-backend/internal/adapters/persistence/models"
	"evote-backend/internal/core/domain"
)

func newCandidateFixture(t *testing.T) (*CandidateService, *fakeUserRepo, *fakeCandidateRepo, uint, uint) {
	t.Helper()
	userRepo := newFakeUserRepo()
	candidateRepo := newFakeCandidateRepo()
	svc := NewCandidateService(candidateRepo, NewAuthorizationService(userRepo))

	admin := &models.User{
		Name:             "Admin",
		Age:              40,
		Address:          "HQ",
		AadharCardNumber: "111111111111",
		Password:         "hashed",
		Role:             domain.RoleAdmin,
		AdminGuard:       models.GuardForRole(domain.RoleAdmin),
	}
	if err := userRepo.Create(context.Background(), admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}
	voterID := addVoter(t, userRepo, "222222222222")

	return svc, userRepo, candidateRepo, admin.ID, voterID
}

func TestCreateCandidateRequiresAdmin(t *testing.T) {
	svc, _, candidateRepo, _, voterID := newCandidateFixture(t)

	input := &CreateCandidateInput{Name: "Alice", Party: "Red", Age: 45}
	_, err := svc.Create(context.Background(), voterID, input)
	if !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected not admin, got %v", err)
	}
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected forbidden kind, got %v", err)
	}
	if len(candidateRepo.candidates) != 0 {
		t.Error("nothing must be persisted for a non-admin")
	}

	// Unknown requesters are rejected the same way.
	_, err = svc.Create(context.Background(), 999, input)
	if !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected not admin for unknown requester, got %v", err)
	}
}

func TestCreateCandidateValidation(t *testing.T) {
	svc, _, _, adminID, _ := newCandidateFixture(t)

	cases := []struct {
		input *CreateCandidateInput
		want  error
	}{
		{&CreateCandidateInput{Party: "Red", Age: 45}, ErrNameRequired},
		{&CreateCandidateInput{Name: "Alice", Age: 45}, ErrPartyRequired},
		{&CreateCandidateInput{Name: "Alice", Party: "Red"}, ErrInvalidAge},
	}
	for _, tc := range cases {
		_, err := svc.Create(context.Background(), adminID, tc.input)
		if !errors.Is(err, tc.want) {
			t.Errorf("input %+v: expected %v, got %v", tc.input, tc.want, err)
		}
	}
}

func TestCreateCandidateSuccess(t *testing.T) {
	svc, _, _, adminID, _ := newCandidateFixture(t)

	result, err := svc.Create(context.Background(), adminID, &CreateCandidateInput{Name: "Alice", Party: "Red", Age: 45})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if result.ID == 0 {
		t.Error("expected assigned ID")
	}
	if result.VoteCount != 0 {
		t.Errorf("new candidate must start at zero votes, got %d", result.VoteCount)
	}
}

func TestUpdateCandidate(t *testing.T) {
	svc, _, candidateRepo, adminID, voterID := newCandidateFixture(t)
	id := addCandidate(t, candidateRepo, "Alice", "Red")

	newParty := "Green"
	result, err := svc.Update(context.Background(), adminID, id, &UpdateCandidateInput{Party: &newParty})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if result.Party != "Green" || result.Name != "Alice" {
		t.Errorf("expected partial update, got name=%q party=%q", result.Name, result.Party)
	}

	if _, err := svc.Update(context.Background(), voterID, id, &UpdateCandidateInput{Party: &newParty}); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected not admin, got %v", err)
	}

	if _, err := svc.Update(context.Background(), adminID, 999, &UpdateCandidateInput{Party: &newParty}); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected candidate not found, got %v", err)
	}

	empty := ""
	if _, err := svc.Update(context.Background(), adminID, id, &UpdateCandidateInput{Name: &empty}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected name required, got %v", err)
	}
}

func TestDeleteCandidate(t *testing.T) {
	svc, _, candidateRepo, adminID, voterID := newCandidateFixture(t)
	id := addCandidate(t, candidateRepo, "Alice", "Red")

	if err := svc.Delete(context.Background(), voterID, id); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected not admin, got %v", err)
	}

	if err := svc.Delete(context.Background(), adminID, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if err := svc.Delete(context.Background(), adminID, id); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected candidate not found after delete, got %v", err)
	}
}

func TestListIsPublicProjection(t *testing.T) {
	svc, _, candidateRepo, _, _ := newCandidateFixture(t)
	addCandidate(t, candidateRepo, "Alice", "Red")
	addCandidate(t, candidateRepo, "Bob", "Blue")

	summaries, total, err := svc.List(context.Background(), 0, 20)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(summaries) != 2 {
		t.Fatalf("expected 2 candidates, got total=%d len=%d", total, len(summaries))
	}
	if summaries[0].Name != "Alice" || summaries[0].Party != "Red" {
		t.Errorf("unexpected first summary: %+v", summaries[0])
	}
}

func TestTallySortedByCountDesc(t *testing.T) {
	svc, _, candidateRepo, _, _ := newCandidateFixture(t)

	for _, c := range []struct {
		name, party string
		votes       int64
	}{
		{"Alice", "Red", 2},
		{"Bob", "Blue", 5},
		{"Carol", "Green", 0},
	} {
		id := addCandidate(t, candidateRepo, c.name, c.party)
		candidateRepo.mu.Lock()
		candidateRepo.candidates[id].VoteCount = c.votes
		candidateRepo.mu.Unlock()
	}

	entries, err := svc.Tally(context.Background())
	if err != nil {
		t.Fatalf("Tally: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	var sum int64
	for i, e := range entries {
		sum += e.Count
		if i > 0 && entries[i-1].Count < e.Count {
			t.Errorf("tally not sorted descending at index %d: %+v", i, entries)
		}
	}
	if sum != 7 {
		t.Errorf("expected total of 7 votes, got %d", sum)
	}
	if entries[0].Party != "Blue" || entries[0].Count != 5 {
		t.Errorf("unexpected leader: %+v", entries[0])
	}
}
