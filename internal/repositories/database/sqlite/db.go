package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// timestampLayout keeps audit timestamps sortable as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Open creates the database file if needed and returns a handle limited to a
// single connection, which serializes writers the way SQLite expects.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// baseRepository provides the handle and transaction helpers shared by the
// SQLite repositories.
type baseRepository struct {
	db  *sql.DB
	now func() time.Time
}

func (r *baseRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return apperrors.NewStorageError("ping", err)
	}
	return nil
}

func (r *baseRepository) begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewStorageError("begin transaction", err)
	}
	return tx, nil
}

func (r *baseRepository) rollback(tx *sql.Tx) {
	_ = tx.Rollback() // no-op after commit
}

func (r *baseRepository) timestamp() string {
	return r.now().UTC().Format(timestampLayout)
}

// NewRepositoryProvider exposes db through the repository ports.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	base := baseRepository{db: db, now: time.Now}
	return portsrepo.RepositoryProvider{
		TransactionRepo: &TransactionRepository{baseRepository: base},
		CategoryRepo:    &CategoryRepository{baseRepository: base},
		BudgetRepo:      &BudgetRepository{baseRepository: base},
		GoalRepo:        &GoalRepository{baseRepository: base},
		Health:          &base,
	}
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlitedrv.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

func parseAudit(createdAt, lastUpdatedAt string) (domain.AuditFields, error) {
	created, err := parseTimestamp(createdAt)
	if err != nil {
		return domain.AuditFields{}, err
	}
	updated, err := parseTimestamp(lastUpdatedAt)
	if err != nil {
		return domain.AuditFields{}, err
	}
	return domain.AuditFields{CreatedAt: created, LastUpdatedAt: updated}, nil
}
