package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/commission"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, store_id, customer_id, customer_name, code,
// amount, commission, balance_used, date
func scanTransaction(s scanner) (*commission.Transaction, error) {
	var tx commission.Transaction

	var customer sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.StoreID, &tx.CustomerID, &customer, &tx.Code,
		&tx.OriginalAmount, &tx.Commission, &tx.BalanceUsed, &tx.Date,
	); err != nil {
		return nil, err
	}

	tx.Customer = customer.String

	return &tx, nil
}

// ListPendingTransactions selects the requested pending transactions
// owned by the store, each joined with the sum of loyalty-ledger "usage"
// movements linked to it. Ids that are absent, foreign, or not pending
// are simply not returned; the service layer decides what that means.
func (s *Store) ListPendingTransactions(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]*commission.Transaction, error) {
	query := `
		SELECT t.id, t.store_id, t.customer_id, c.name, t.code,
			t.amount, t.commission,
			COALESCE(SUM(m.amount), 0) AS balance_used, t.date
		FROM transactions t
		JOIN customers c ON c.id = t.customer_id
		LEFT JOIN balance_movements m
			ON m.usage_transaction_id = t.id AND m.type = 'usage'
		WHERE t.store_id = $1 AND t.status = 'pending' AND t.id = ANY($2)
		GROUP BY t.id, c.name
		ORDER BY t.date ASC
	`

	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}

	rows, err := s.db.QueryContext(ctx, query, storeID, idStrs)
	if err != nil {
		return nil, fmt.Errorf("listing pending transactions: %w", err)
	}
	defer rows.Close()

	var txs []*commission.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

// CreateSubmission inserts the submission and its transaction links in
// one database transaction.
func (s *Store) CreateSubmission(ctx context.Context, sub *commission.Submission) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO payment_submissions (store_id, amount, method, reference, proof_ref, note, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		sub.StoreID,
		sub.Amount,
		sub.Method,
		sub.Reference,
		sub.ProofRef,
		sub.Note,
		sub.Status,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating submission: %w", err)
	}

	linkQuery := `
		INSERT INTO payment_submission_transactions (submission_id, transaction_id)
		VALUES ($1, $2)
	`

	for _, txID := range sub.TransactionIDs {
		if _, err := dbTx.ExecContext(ctx, linkQuery, sub.ID, txID); err != nil {
			return fmt.Errorf("linking transaction %s: %w", txID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing submission: %w", err)
	}

	return nil
}
