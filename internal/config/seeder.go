package config

import (
	"evote-backend/internal/adapters/persistence/models"
	"evote-backend/internal/core/domain"
	"evote-backend/internal/pkg/password"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	if !s.cfg.Seed.Enabled {
		return nil
	}

	logrus.Info("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		logrus.Warnf("⚠️ Admin seeder skipped: %v", err)
	}

	return nil
}

// seedAdminUser seeds the election admin for development setups. Skipped when
// an admin already exists, which keeps the single-admin invariant intact.
func (s *Seeder) seedAdminUser() error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("role = ?", domain.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Admin already exists
	}

	if len(s.cfg.Seed.AdminAadhar) != 12 || s.cfg.Seed.AdminPassword == "" {
		logrus.Warn("⚠️ Skipping admin seed: SEED_ADMIN_AADHAR/SEED_ADMIN_PASSWORD not set")
		return nil
	}

	hashedPassword, err := password.Hash(s.cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:             "Election Admin",
		Age:              30,
		Address:          "Election Commission",
		AadharCardNumber: s.cfg.Seed.AdminAadhar,
		Password:         hashedPassword,
		Role:             domain.RoleAdmin,
		AdminGuard:       models.GuardForRole(domain.RoleAdmin),
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	logrus.Infof("✅ Admin user seeded (id: %d)", admin.ID)
	return nil
}
