package domain

import "time"

// Role represents user role in the system
type Role string

const (
	RoleAdmin Role = "admin"
	RoleVoter Role = "voter"
)

// Valid reports whether the role is a known member of the enum
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleVoter
}

// IsAdmin reports whether the role carries admin privileges
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents a registered voter or the election admin in the domain layer
type User struct {
	ID               uint
	Name             string
	Age              int
	Email            string
	Mobile           string
	Address          string
	AadharCardNumber string
	Password         string // Hashed
	Role             Role
	IsVoted          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Candidate represents an election candidate
type Candidate struct {
	ID        uint
	Name      string
	Party     string
	Age       int
	VoteCount int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VoteRecord represents one user's vote against one candidate. Immutable once created.
type VoteRecord struct {
	ID          uint
	CandidateID uint
	UserID      uint
	VotedAt     time.Time
}

// TallyEntry represents aggregated votes for one candidate's party
type TallyEntry struct {
	Party string `json:"party"`
	Count int64  `json:"count"`
}

// RefreshToken represents a refresh token in the domain
type RefreshToken struct {
	ID        uint
	UserID    uint
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
