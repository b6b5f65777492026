package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	"github.com/SscSPs/fin_assist/internal/models"
	"github.com/SscSPs/fin_assist/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const FULL_TRANSACTION_SELECT_QUERY = `
SELECT
	t.transaction_id, t.kind, t.amount, t.occurred_on, t.category, t.note,
	t.created_at, t.last_updated_at
FROM transactions t
`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the ledger.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction appends a ledger row; the id comes from the sequence.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.NewTransaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (kind, amount, occurred_on, category, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING transaction_id, kind, amount, occurred_on, category, note, created_at, last_updated_at;
	`
	rows, err := r.Pool.Query(ctx, query,
		string(txn.Kind),
		txn.Amount,
		txn.OccurredOn,
		txn.Category,
		txn.Note,
	)
	if err != nil {
		return nil, apperrors.NewStorageError("insert transaction", err)
	}
	modelTxn, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, apperrors.NewStorageError("insert transaction", err)
	}

	saved := mapping.ToDomainTransaction(modelTxn)
	return &saved, nil
}

// DeleteTransaction removes a ledger row. Missing ids are ignored.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("delete transaction %d", transactionID), err)
	}
	return nil
}

// ListTransactions returns the filtered ledger newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	filterQuery, args := buildTransactionFilter(filter)
	rows, err := r.Pool.Query(ctx, FULL_TRANSACTION_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("query transactions", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, apperrors.NewStorageError("collect transaction rows", err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// buildTransactionFilter renders the WHERE, ORDER BY and LIMIT clauses for
// filter with positional arguments.
func buildTransactionFilter(filter domain.TransactionFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Kind != nil {
		conds = append(conds, "t.kind = "+arg(string(*filter.Kind)))
	}
	if filter.Category != nil {
		conds = append(conds, "t.category = "+arg(*filter.Category))
	}
	if filter.DateFrom != nil {
		conds = append(conds, "t.occurred_on >= "+arg(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		conds = append(conds, "t.occurred_on <= "+arg(*filter.DateTo))
	}
	if filter.After != nil {
		conds = append(conds, fmt.Sprintf("(t.occurred_on, t.transaction_id) < (%s, %s)",
			arg(filter.After.OccurredOn), arg(filter.After.TransactionID)))
	}

	var sb strings.Builder
	if len(conds) > 0 {
		sb.WriteString("WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
		sb.WriteString("\n")
	}
	sb.WriteString("ORDER BY t.occurred_on DESC, t.transaction_id DESC")
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT " + arg(filter.Limit))
	}
	return sb.String(), args
}
