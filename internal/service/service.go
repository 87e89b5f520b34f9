package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dan9191/finance-ledger/internal/config"
	"github.com/Dan9191/finance-ledger/internal/models"
	"github.com/Dan9191/finance-ledger/internal/repository"
)

// ProfileStore persists profiles
type ProfileStore interface {
	CreateProfile(ctx context.Context, p *models.Profile) error
	FindProfileByUsername(ctx context.Context, username string) (*models.Profile, error)
}

// LedgerStore persists income and outgoing records
type LedgerStore interface {
	AddTransaction(ctx context.Context, kind models.Kind, tx models.NewTransaction) error
	ListTransactions(ctx context.Context, kind models.Kind, profileID int64) ([]models.Transaction, error)
	DeleteTransaction(ctx context.Context, kind models.Kind, id, ownerID int64) error
}

// Store is everything the service needs from persistence
type Store interface {
	ProfileStore
	LedgerStore
}

// Service handles business logic
type Service struct {
	store    Store
	log      *logrus.Logger
	hashCost int

	// compared against on unknown usernames so they cost a full bcrypt run
	dummyHash []byte
}

// fallbackDummyHash is a cost-10 bcrypt hash used when one cannot be
// generated at the configured cost.
const fallbackDummyHash = "$2a$10$Q7kZ3mT1vX9pL2sR8wN4eOwmG0a/GYrM1Tc7kX6292bzv9wov6HH6"

// NewService initializes a new service
func NewService(store Store, log *logrus.Logger, cfg *config.Config) *Service {
	s := &Service{store: store, log: log, hashCost: cfg.BcryptCost}
	h, err := bcrypt.GenerateFromPassword([]byte("ledger-dummy-password"), s.hashCost)
	if err != nil {
		log.WithError(err).Warn("Failed to prepare dummy hash, using fallback")
		h = []byte(fallbackDummyHash)
	}
	s.dummyHash = h
	return s
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Register creates a new profile with a hashed password and returns its ID
func (s *Service) Register(ctx context.Context, name, username, password string) (int64, error) {
	if blank(name) || blank(username) || blank(password) {
		return 0, fmt.Errorf("%w: name, username and password are required", ErrInvalidInput)
	}

	// Hash before touching the store; the insert is the only durable step.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return 0, fmt.Errorf("%w: password must be at most 72 bytes", ErrInvalidInput)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &models.Profile{
		Name:         name,
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			s.log.WithField("username", username).Info("Registration rejected: username taken")
			return 0, ErrDuplicateLogin
		}
		s.log.WithError(err).Error("Registration failed")
		return 0, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	s.log.WithFields(logrus.Fields{"profile_id": profile.ID, "username": username}).Info("Profile registered")
	return profile.ID, nil
}

// Login verifies credentials and returns the profile identity.
// Unknown usernames and wrong passwords fail identically.
func (s *Service) Login(ctx context.Context, username, password string) (*models.Profile, error) {
	if blank(username) || blank(password) {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	profile, err := s.store.FindProfileByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		// Burn the same bcrypt time as a real comparison.
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrAuthenticationFailed
	}
	if err != nil {
		s.log.WithError(err).Error("Login lookup failed")
		return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, ErrAuthenticationFailed
	}

	s.log.WithField("profile_id", profile.ID).Info("Profile logged in")
	return &models.Profile{ID: profile.ID, Name: profile.Name, Username: profile.Username}, nil
}
