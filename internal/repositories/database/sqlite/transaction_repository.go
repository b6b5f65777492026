package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	"github.com/SscSPs/fin_assist/internal/models"
	"github.com/SscSPs/fin_assist/internal/utils/mapping"
)

const transactionColumns = `transaction_id, kind, amount, occurred_on, category, note, created_at, last_updated_at`

// TransactionRepository is the SQLite ledger.
type TransactionRepository struct {
	baseRepository
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var (
		m                               models.Transaction
		occurredOn, created, lastUpdate string
		note                            sql.NullString
	)
	if err := row.Scan(&m.TransactionID, &m.Kind, &m.Amount, &occurredOn, &m.Category, &note, &created, &lastUpdate); err != nil {
		return m, err
	}
	var err error
	if m.OccurredOn, err = parseDate(occurredOn); err != nil {
		return m, err
	}
	if note.Valid {
		m.Note = &note.String
	}
	audit, err := parseAudit(created, lastUpdate)
	if err != nil {
		return m, err
	}
	m.AuditFields = mapping.ToModelAuditFields(audit)
	return m, nil
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.NewTransaction) (*domain.Transaction, error) {
	now := r.timestamp()
	var note sql.NullString
	if txn.Note != nil {
		note = sql.NullString{String: *txn.Note, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO transactions (kind, amount, occurred_on, category, note, created_at, last_updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+transactionColumns,
		string(txn.Kind), txn.Amount.StringFixed(2), formatDate(txn.OccurredOn), txn.Category, note, now, now,
	)
	m, err := scanTransaction(row)
	if err != nil {
		return nil, apperrors.NewStorageError("insert transaction", err)
	}
	saved := mapping.ToDomainTransaction(m)
	return &saved, nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = ?`, transactionID); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("delete transaction %d", transactionID), err)
	}
	return nil
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Kind != nil {
		conds = append(conds, "kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.Category != nil {
		conds = append(conds, "category = ?")
		args = append(args, *filter.Category)
	}
	if filter.DateFrom != nil {
		conds = append(conds, "occurred_on >= ?")
		args = append(args, formatDate(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		conds = append(conds, "occurred_on <= ?")
		args = append(args, formatDate(*filter.DateTo))
	}
	if filter.After != nil {
		date := formatDate(filter.After.OccurredOn)
		conds = append(conds, "(occurred_on < ? OR (occurred_on = ? AND transaction_id < ?))")
		args = append(args, date, date, filter.After.TransactionID)
	}

	query := "SELECT " + transactionColumns + " FROM transactions"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY occurred_on DESC, transaction_id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("query transactions", err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("scan transaction row", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("iterate transaction rows", err)
	}
	return txns, nil
}
