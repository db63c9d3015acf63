// Package records keeps a SQLite history of annotation runs and the
// numbered word records each run produced.
package records

import (
	"context"
	"database/sql"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/adorner/core/adorn"
	aerrors "github.com/FocuswithJustin/adorner/core/errors"
	"github.com/FocuswithJustin/adorner/core/sentences"
	"github.com/FocuswithJustin/adorner/core/sqlite"
	"github.com/FocuswithJustin/adorner/internal/records/migrations"
)

// ErrRunNotFound is returned when a run ID is not in the store.
var ErrRunNotFound = errors.New("run not found")

// Run describes one annotation pass over one document.
type Run struct {
	ID         string    `json:"id"`
	Document   string    `json:"document"`
	Digest     string    `json:"digest"`
	Scheme     string    `json:"scheme"`
	Words      int       `json:"words"`
	Sentences  int       `json:"sentences"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.New().String()
}

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DigestReader returns the hex BLAKE3-256 digest of everything read from r.
func DigestReader(r io.Reader) (string, error) {
	h := blake3.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hashing document: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Store is a SQLite-backed run history.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the store at path and applies pending migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sqlite.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" is version 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}

// SaveRun stores a run and its numbered words in one transaction. The run's
// word and sentence totals are taken from words.
func (s *Store) SaveRun(ctx context.Context, run Run, words []sentences.Numbered) error {
	if run.ID == "" {
		return aerrors.NewValidation("run.id", "must not be empty")
	}
	run.Sentences, run.Words = sentences.Summary(words)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, document, digest, scheme, words, sentences, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Document, run.Digest, run.Scheme, run.Words, run.Sentences,
		run.StartedAt.UTC(), run.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO words (run_id, seq, word_id, ordinal, part, eos, sentence, word)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing word insert: %w", err)
	}
	defer stmt.Close()

	for i, w := range words {
		eos := 0
		if w.EOS {
			eos = 1
		}
		if _, err := stmt.ExecContext(ctx, run.ID, i, w.ID, w.Ordinal, string(w.Part), eos, w.Sentence, w.Word); err != nil {
			return fmt.Errorf("saving word %s: %w", w.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, document, digest, scheme, words, sentences, started_at, finished_at
		FROM runs WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, err
}

// RunsForDigest lists the runs over documents with the given digest,
// newest first.
func (s *Store) RunsForDigest(ctx context.Context, digest string) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document, digest, scheme, words, sentences, started_at, finished_at
		FROM runs WHERE digest = ? ORDER BY started_at DESC
	`, digest)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Words returns the numbered words of a run in emission order.
func (s *Store) Words(ctx context.Context, runID string) ([]sentences.Numbered, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT word_id, ordinal, part, eos, sentence, word
		FROM words WHERE run_id = ? ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing words: %w", err)
	}
	defer rows.Close()

	var out []sentences.Numbered
	for rows.Next() {
		var (
			n    sentences.Numbered
			part string
			eos  int
		)
		if err := rows.Scan(&n.ID, &n.Ordinal, &part, &eos, &n.Sentence, &n.Word); err != nil {
			return nil, fmt.Errorf("scanning word: %w", err)
		}
		n.Part = adorn.PartCode(part)
		n.EOS = eos != 0
		out = append(out, n)
	}
	return out, rows.Err()
}

// DeleteRun removes a run and its words.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	err := row.Scan(&run.ID, &run.Document, &run.Digest, &run.Scheme, &run.Words, &run.Sentences,
		&run.StartedAt, &run.FinishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	return &run, nil
}
