package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"netflix-analysis/models"
	"netflix-analysis/utils"

	_ "github.com/lib/pq"
)

// PostgresWriter stores the report's count tables in PostgreSQL
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter creates a new PostgresWriter and pings the DB
func NewPostgresWriter(connStr string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return NewPostgresWriterWithDB(db, logger), nil
}

// NewPostgresWriterWithDB wraps an already opened database
func NewPostgresWriterWithDB(db *sql.DB, logger *utils.Logger) *PostgresWriter {
	return &PostgresWriter{db: db, logger: logger}
}

// CreateTable creates the title_insights table if it doesn't exist, with indexes
func (w *PostgresWriter) CreateTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS title_insights (
		id         SERIAL PRIMARY KEY,
		run_id     UUID        NOT NULL,
		dimension  VARCHAR(50) NOT NULL,
		value      TEXT        NOT NULL,
		count      INTEGER     NOT NULL,
		rank       INTEGER     NOT NULL,
		created_at TIMESTAMP   NOT NULL DEFAULT NOW(),
		UNIQUE (run_id, dimension, value)
	);

	CREATE INDEX IF NOT EXISTS idx_title_insights_run       ON title_insights (run_id);
	CREATE INDEX IF NOT EXISTS idx_title_insights_dimension ON title_insights (dimension);
	`
	if _, err := w.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	w.logger.Info("Table 'title_insights' is ready")
	return nil
}

// WriteReport inserts every count table of the report in a single transaction
func (w *PostgresWriter) WriteReport(runID string, report *models.InsightReport) (err error) {
	rows := countRows(report)
	if len(rows) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO title_insights (run_id, dimension, value, count, rank)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (run_id, dimension, value) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err = stmt.Exec(runID, r.dimension, r.value, r.count, r.rank); err != nil {
			return fmt.Errorf("failed to insert %s=%q: %w", r.dimension, r.value, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.logger.Info("Inserted %d insight rows for run %s into PostgreSQL", len(rows), runID)
	return nil
}

// Close closes the database connection
func (w *PostgresWriter) Close() {
	if w.db != nil {
		_ = w.db.Close()
	}
}

type countRow struct {
	dimension string
	value     string
	count     int
	rank      int
}

// countRows flattens the value-count and year tables; the title and share
// tables are not stored
func countRows(report *models.InsightReport) []countRow {
	var rows []countRow
	add := func(dimension string, counts []models.ValueCount) {
		for i, c := range counts {
			rows = append(rows, countRow{dimension, c.Value, c.Count, i + 1})
		}
	}
	add("type", report.TypeCounts)
	add("listed_in", report.TopGenres)
	add("country", report.TopCountries)
	add("rating", report.RatingCounts)
	add("director", report.TopDirectors)
	add("duration", report.TopDurations)
	for i, y := range report.TitlesByYear {
		rows = append(rows, countRow{"year", strconv.Itoa(y.Year), y.Count, i + 1})
	}
	return rows
}
