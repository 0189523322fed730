package models

import (
	"time"

	"evote-backend/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Auth & Voter Tables
// ============================================================

// User represents users table
type User struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"size:100;not null" json:"name"`
	Age              int            `gorm:"not null" json:"age"`
	Email            string         `gorm:"size:100" json:"email,omitempty"`
	Mobile           string         `gorm:"size:20" json:"mobile,omitempty"`
	Address          string         `gorm:"size:255;not null" json:"address"`
	AadharCardNumber string         `gorm:"uniqueIndex;size:12;not null" json:"aadhar_card_number"`
	Password         string         `gorm:"size:255;not null" json:"-"`
	Role             domain.Role    `gorm:"size:20;not null;default:'voter'" json:"role"`
	IsVoted          bool           `gorm:"not null;default:false" json:"is_voted"`
	AdminGuard       *string        `gorm:"uniqueIndex;size:10" json:"-"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// adminGuardValue is the value stored in the unique admin_guard column for admin
// rows. Voter rows keep NULL, which MySQL's unique index ignores, so the index
// admits at most one admin system-wide.
const adminGuardValue = "admin"

// GuardForRole returns the admin_guard column value for a role
func GuardForRole(role domain.Role) *string {
	if role.IsAdmin() {
		v := adminGuardValue
		return &v
	}
	return nil
}

// UserResponse DTO
type UserResponse struct {
	ID               uint        `json:"id"`
	Name             string      `json:"name"`
	Age              int         `json:"age"`
	Email            string      `json:"email,omitempty"`
	Mobile           string      `json:"mobile,omitempty"`
	Address          string      `json:"address"`
	AadharCardNumber string      `json:"aadhar_card_number"`
	Role             domain.Role `json:"role"`
	IsVoted          bool        `json:"is_voted"`
	CreatedAt        time.Time   `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Age:              u.Age,
		Email:            u.Email,
		Mobile:           u.Mobile,
		Address:          u.Address,
		AadharCardNumber: u.AadharCardNumber,
		Role:             u.Role,
		IsVoted:          u.IsVoted,
		CreatedAt:        u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Election Tables
// ============================================================

// Candidate represents candidates table. vote_count always equals the number of
// vote rows referencing the candidate; both are written in one transaction.
type Candidate struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Party     string         `gorm:"size:100;not null" json:"party"`
	Age       int            `json:"age"`
	VoteCount int64          `gorm:"not null;default:0" json:"vote_count"`
	Votes     []Vote         `gorm:"foreignKey:CandidateID" json:"votes,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// CandidateResponse DTO (admin view)
type CandidateResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Party     string    `json:"party"`
	Age       int       `json:"age"`
	VoteCount int64     `json:"vote_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Candidate) ToResponse() *CandidateResponse {
	return &CandidateResponse{
		ID:        c.ID,
		Name:      c.Name,
		Party:     c.Party,
		Age:       c.Age,
		VoteCount: c.VoteCount,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CandidateSummary DTO (public view: name and party only, no IDs or vote data)
type CandidateSummary struct {
	Name  string `json:"name"`
	Party string `json:"party"`
}

func (c *Candidate) ToSummary() *CandidateSummary {
	return &CandidateSummary{
		Name:  c.Name,
		Party: c.Party,
	}
}

// Vote represents votes table. One row per cast vote, immutable. The unique
// index on user_id backs the one-vote-per-user invariant at the storage level.
type Vote struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CandidateID uint      `gorm:"index;not null" json:"candidate_id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	VotedAt     time.Time `gorm:"autoCreateTime" json:"voted_at"`
}

func (Vote) TableName() string {
	return "votes"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Candidate{},
		&Vote{},
	)
}
