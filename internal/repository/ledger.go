package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/finance-ledger/internal/models"
)

// table returns the ledger table for a kind. Only the fixed names below
// ever reach a query string.
func table(kind models.Kind) (string, error) {
	switch kind {
	case models.KindIncome:
		return "incomes", nil
	case models.KindOutgoing:
		return "outgoings", nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", kind)
}

// AddTransaction inserts a ledger row for the given kind
func (r *Repository) AddTransaction(ctx context.Context, kind models.Kind, tx models.NewTransaction) error {
	tbl, err := table(kind)
	if err != nil {
		return err
	}
	query := r.dialect.rebind(fmt.Sprintf(`
		INSERT INTO %s (profile_id, description, amount, date)
		VALUES (?, ?, ?, ?)`, tbl))
	if _, err := r.db.ExecContext(ctx, query, tx.ProfileID, tx.Description, tx.Amount, tx.Date); err != nil {
		return fmt.Errorf("failed to add %s: %w", kind, classify(err))
	}
	return nil
}

// ListTransactions returns a profile's rows newest date first, equal
// dates in insertion order
func (r *Repository) ListTransactions(ctx context.Context, kind models.Kind, profileID int64) ([]models.Transaction, error) {
	tbl, err := table(kind)
	if err != nil {
		return nil, err
	}
	query := r.dialect.rebind(fmt.Sprintf(`
		SELECT id, profile_id, description, amount, date
		FROM %s
		WHERE profile_id = ?
		ORDER BY date DESC, id ASC`, tbl))
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.ProfileID, &t.Description, &t.Amount, &t.Date); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	return transactions, nil
}

// DeleteTransaction removes a row by id. A non-zero ownerID restricts the
// delete to rows owned by that profile. Returns ErrNotFound when nothing
// was deleted.
func (r *Repository) DeleteTransaction(ctx context.Context, kind models.Kind, id, ownerID int64) error {
	tbl, err := table(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, tbl)
	args := []any{id}
	if ownerID != 0 {
		query += ` AND profile_id = ?`
		args = append(args, ownerID)
	}
	res, err := r.db.ExecContext(ctx, r.dialect.rebind(query), args...)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
