// Package history persists analysis results to a local SQLite database
// so past reports can be listed and retrieved by the HTTP API.
package history

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ludo-technologies/phishscan/domain"
	"github.com/ludo-technologies/phishscan/internal/logging"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrReportNotFound is returned when no report matches the requested id.
var ErrReportNotFound = errors.New("report not found")

// Report is a stored analysis result.
type Report struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Status    string    `json:"status"`
	Score     int       `json:"score"`
	Reasons   []string  `json:"reasons"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists URL check results in SQLite.
type Store struct {
	db     *sql.DB
	logger logging.Logger
}

// NewStore opens (or creates) the report database under dir.
func NewStore(dir string, logger logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NopLogger{}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	dbPath := filepath.Join(dir, "phishscan.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info("report store opened", logging.Field{Key: "path", Value: dbPath})

	return &Store{db: db, logger: logger}, nil
}

// applySchema sets pragmas and creates tables.
func applySchema(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveResult stores a single check result and returns its report id.
func (s *Store) SaveResult(ctx context.Context, result domain.URLCheckResult) (string, error) {
	ids, err := s.SaveResults(ctx, []domain.URLCheckResult{result})
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// SaveResults stores a batch of check results in one transaction and
// returns the report ids in input order.
func (s *Store) SaveResults(ctx context.Context, results []domain.URLCheckResult) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO reports (id, url, status, score, reasons, created_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	ids := make([]string, 0, len(results))
	for _, result := range results {
		reasons, err := json.Marshal(result.Reasons)
		if err != nil {
			return nil, fmt.Errorf("marshal reasons: %w", err)
		}

		id := uuid.NewString()
		if _, err := stmt.ExecContext(ctx, id, result.URL, string(result.Status), result.Score, string(reasons), now); err != nil {
			return nil, fmt.Errorf("insert report: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.logger.Debug("reports saved", logging.Field{Key: "count", Value: len(ids)})
	return ids, nil
}

// GetReport retrieves a single report by id.
func (s *Store) GetReport(ctx context.Context, id string) (*Report, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, url, status, score, reasons, created_at FROM reports WHERE id = ?`, id)

	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ListReports returns stored reports, newest first. An empty status
// matches all statuses; limit <= 0 applies a default of 100.
func (s *Store) ListReports(ctx context.Context, status string, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT id, url, status, score, reasons, created_at FROM reports`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, rows.Err()
}

// Count returns the number of stored reports.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*Report, error) {
	var (
		report     Report
		reasonsRaw string
		createdRaw string
	)
	if err := row.Scan(&report.ID, &report.URL, &report.Status, &report.Score, &reasonsRaw, &createdRaw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(reasonsRaw), &report.Reasons); err != nil {
		return nil, fmt.Errorf("unmarshal reasons: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdRaw)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	report.CreatedAt = createdAt
	return &report, nil
}
