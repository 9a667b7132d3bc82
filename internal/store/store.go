// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/orsprogress/internal/model"
	"github.com/verte-zerg/orsprogress/internal/ratings"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Fixed-width timestamps keep created_at sortable as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when a rater or rating does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps SQLite access for raters and their ratings.
type Store struct {
	db *sql.DB
}

// RaterRecord is a stored rater.
type RaterRecord struct {
	ID        string
	Label     string
	Rater     model.Rater
	CreatedAt time.Time
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS raters (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			age_group INTEGER NOT NULL,
			exclude_from_stats INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS ratings (
			id INTEGER PRIMARY KEY,
			rater_id TEXT NOT NULL REFERENCES raters(id),
			date_completed TEXT,
			score REAL NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_ratings_rater_id ON ratings(rater_id, id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// CreateRater stores a rater and returns its generated id.
func (s *Store) CreateRater(ctx context.Context, label string, rater model.Rater) (string, error) {
	if !rater.AgeGroup.Valid() {
		return "", model.Invalidf("unknown age group %d", int(rater.AgeGroup))
	}
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO raters (id, label, age_group, exclude_from_stats, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, label, int(rater.AgeGroup), boolToInt(rater.ExcludeFromStats), time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetRater loads one rater by id.
func (s *Store) GetRater(ctx context.Context, id string) (RaterRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, label, age_group, exclude_from_stats, created_at FROM raters WHERE id = ?`, id)
	rec, err := scanRater(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RaterRecord{}, fmt.Errorf("rater %s: %w", id, ErrNotFound)
	}
	return rec, err
}

// ListRaters returns every rater ordered by creation time.
func (s *Store) ListRaters(ctx context.Context) ([]RaterRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, age_group, exclude_from_stats, created_at FROM raters ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []RaterRecord
	for rows.Next() {
		rec, err := scanRater(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SetExcludeFromStats updates the user exclusion flag for a rater.
func (s *Store) SetExcludeFromStats(ctx context.Context, id string, exclude bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE raters SET exclude_from_stats = ? WHERE id = ?`, boolToInt(exclude), id)
	if err != nil {
		return err
	}
	return expectOneRow(res, "rater "+id)
}

// AddRating stores one rating for raterID and returns its id.
func (s *Store) AddRating(ctx context.Context, raterID string, dateCompleted *string, score float64) (int64, error) {
	ids, err := s.AddRatings(ctx, raterID, []model.Rating{{DateCompleted: dateCompleted, Score: score}})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// AddRatings stores items in order within a single transaction and returns
// their ids. Either every rating is stored or none is. IDs on items are
// ignored.
func (s *Store) AddRatings(ctx context.Context, raterID string, items []model.Rating) ([]int64, error) {
	for i, item := range items {
		if err := model.ValidateScore(item.Score); err != nil {
			return nil, fmt.Errorf("rating %d: %w", i+1, err)
		}
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM raters WHERE id = ?`, raterID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		err = fmt.Errorf("rater %s: %w", raterID, ErrNotFound)
		return nil, err
	}

	createdAt := time.Now().UTC().Format(timeLayout)
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		var date sql.NullString
		if item.DateCompleted != nil {
			date = sql.NullString{String: *item.DateCompleted, Valid: true}
		}
		var res sql.Result
		res, err = tx.ExecContext(ctx,
			`INSERT INTO ratings (rater_id, date_completed, score, created_at) VALUES (?, ?, ?, ?)`,
			raterID, date, item.Score, createdAt,
		)
		if err != nil {
			return nil, err
		}
		var id int64
		id, err = res.LastInsertId()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ListRatings returns a rater's ratings in insertion order.
func (s *Store) ListRatings(ctx context.Context, raterID string) ([]model.Rating, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date_completed, score FROM ratings WHERE rater_id = ? ORDER BY id ASC`, raterID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Rating
	for rows.Next() {
		var (
			id    int64
			date  sql.NullString
			score float64
		)
		if err := rows.Scan(&id, &date, &score); err != nil {
			return nil, err
		}
		r := model.Rating{ID: &id, Score: score}
		if date.Valid {
			d := date.String
			r.DateCompleted = &d
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteRating removes one rating belonging to a rater.
func (s *Store) DeleteRating(ctx context.Context, raterID string, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ratings WHERE rater_id = ? AND id = ?`, raterID, id)
	if err != nil {
		return err
	}
	return expectOneRow(res, fmt.Sprintf("rating %d", id))
}

// LoadSeries returns the rater and a locked series of its ratings.
func (s *Store) LoadSeries(ctx context.Context, raterID string) (RaterRecord, *ratings.Series, error) {
	rec, err := s.GetRater(ctx, raterID)
	if err != nil {
		return RaterRecord{}, nil, err
	}
	items, err := s.ListRatings(ctx, raterID)
	if err != nil {
		return RaterRecord{}, nil, err
	}
	series, err := ratings.FromRatings(items)
	if err != nil {
		return RaterRecord{}, nil, fmt.Errorf("rater %s: %w", raterID, err)
	}
	series.Lock()
	return rec, series, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRater(row rowScanner) (RaterRecord, error) {
	var (
		rec       RaterRecord
		age       int
		exclude   int
		createdAt string
	)
	if err := row.Scan(&rec.ID, &rec.Label, &age, &exclude, &createdAt); err != nil {
		return RaterRecord{}, err
	}
	parsed, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return RaterRecord{}, err
	}
	rec.Rater = model.Rater{AgeGroup: model.AgeGroup(age), ExcludeFromStats: exclude != 0}
	rec.CreatedAt = parsed
	return rec, nil
}

func expectOneRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
