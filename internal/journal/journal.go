// Package journal records printed answers in a SQLite database.
package journal

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/aoc2023/internal/model"
)

// RecordParams holds one run's answers for a unit.
type RecordParams struct {
	RunID   string
	Unit    string
	Input   string
	Sample  bool
	Answers []model.Answer
}

// ListParams filters journal entries.
type ListParams struct {
	Unit  string
	RunID string
	Limit int
}

// Journal is a SQLite-backed answer log.
type Journal struct {
	db      *sql.DB
	entropy io.Reader
}

// Open opens or creates a journal database at the given path.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return j, nil
}

// NewRunID returns a fresh run identifier. IDs from one journal sort in
// creation order.
func (j *Journal) NewRunID() string {
	return j.newID()
}

func (j *Journal) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), j.entropy).String()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS answers (
		id           TEXT PRIMARY KEY,
		run_id       TEXT NOT NULL,
		unit         TEXT NOT NULL,
		part         INTEGER NOT NULL,
		label        TEXT NOT NULL,
		value        TEXT NOT NULL,
		input_digest TEXT,
		sample       INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_answers_unit ON answers(unit, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_answers_run ON answers(run_id);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Digest is the hex sha256 of an input, used to tell runs on different
// inputs apart.
func Digest(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Record stores every answer of one unit run in a single transaction.
func (j *Journal) Record(ctx context.Context, p RecordParams) ([]model.Entry, error) {
	if p.RunID == "" {
		return nil, fmt.Errorf("record %s: run id is required", p.Unit)
	}
	now := time.Now().UTC()
	digest := Digest(p.Input)

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	entries := make([]model.Entry, 0, len(p.Answers))
	for _, a := range p.Answers {
		e := model.Entry{
			ID:          j.newID(),
			RunID:       p.RunID,
			Unit:        p.Unit,
			Part:        a.Part,
			Label:       a.Label,
			Value:       a.Value,
			InputDigest: digest,
			Sample:      p.Sample,
			CreatedAt:   now,
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO answers (id, run_id, unit, part, label, value, input_digest, sample, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.RunID, e.Unit, e.Part, e.Label, strconv.FormatUint(e.Value, 10),
			e.InputDigest, e.Sample, now.Format(time.RFC3339Nano))
		if err != nil {
			return nil, fmt.Errorf("insert answer: %w", err)
		}
		entries = append(entries, e)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return entries, nil
}

// List returns entries newest first.
func (j *Journal) List(ctx context.Context, p ListParams) ([]model.Entry, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, run_id, unit, part, label, value, input_digest, sample, created_at
	          FROM answers WHERE 1 = 1`
	var args []interface{}
	if p.Unit != "" {
		query += ` AND unit = ?`
		args = append(args, p.Unit)
	}
	if p.RunID != "" {
		query += ` AND run_id = ?`
		args = append(args, p.RunID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the journal.
func (j *Journal) Close() error {
	return j.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (model.Entry, error) {
	var e model.Entry
	var value, createdAt string
	var digest sql.NullString

	err := row.Scan(&e.ID, &e.RunID, &e.Unit, &e.Part, &e.Label, &value, &digest, &e.Sample, &createdAt)
	if err != nil {
		return e, err
	}

	e.Value, err = strconv.ParseUint(value, 10, 64)
	if err != nil {
		return e, fmt.Errorf("entry %s: value %q: %w", e.ID, value, err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if digest.Valid {
		e.InputDigest = digest.String
	}
	return e, nil
}
