package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-ledger/internal/models"
	"github.com/Dan9191/finance-ledger/internal/repository"
)

// Amounts must be below MaxAmount and carry at most MaxAmountScale
// decimal places.
var MaxAmount = decimal.New(1, 18)

const MaxAmountScale = 8

func validateTransaction(tx models.NewTransaction) error {
	if tx.ProfileID <= 0 || blank(tx.Description) || blank(tx.Date) {
		return fmt.Errorf("%w: profile_id, description, amount and date are required", ErrInvalidInput)
	}
	if !tx.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	if tx.Amount.GreaterThanOrEqual(MaxAmount) {
		return fmt.Errorf("%w: amount must be less than %s", ErrInvalidInput, MaxAmount)
	}
	if !tx.Amount.Equal(tx.Amount.Truncate(MaxAmountScale)) {
		return fmt.Errorf("%w: amount must have at most %d decimal places", ErrInvalidInput, MaxAmountScale)
	}
	if _, err := time.Parse(models.DateLayout, tx.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}

// AddTransaction records an income or outgoing for a profile
func (s *Service) AddTransaction(ctx context.Context, kind models.Kind, tx models.NewTransaction) error {
	if err := validateTransaction(tx); err != nil {
		return err
	}

	if err := s.store.AddTransaction(ctx, kind, tx); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return fmt.Errorf("%w: unknown profile %d", ErrInvalidInput, tx.ProfileID)
		}
		s.log.WithError(err).WithField("kind", kind).Error("Failed to add transaction")
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	s.log.WithFields(logrus.Fields{
		"kind":       kind,
		"profile_id": tx.ProfileID,
		"amount":     tx.Amount.String(),
		"date":       tx.Date,
	}).Info("Transaction added")
	return nil
}

// ListTransactions returns a profile's records of one kind, newest first
func (s *Service) ListTransactions(ctx context.Context, kind models.Kind, profileID int64) ([]models.Transaction, error) {
	transactions, err := s.store.ListTransactions(ctx, kind, profileID)
	if err != nil {
		s.log.WithError(err).WithField("kind", kind).Error("Failed to list transactions")
		return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	return transactions, nil
}

// DeleteTransaction removes a record by id. When ownerID is set, records
// of other profiles are reported as not found.
func (s *Service) DeleteTransaction(ctx context.Context, kind models.Kind, id, ownerID int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	err := s.store.DeleteTransaction(ctx, kind, id, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		s.log.WithError(err).WithField("kind", kind).Error("Failed to delete transaction")
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	s.log.WithFields(logrus.Fields{"kind": kind, "id": id}).Info("Transaction deleted")
	return nil
}
