package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/birthchart/internal/domain"
	"github.com/doeshing/birthchart/internal/ports"
)

// SQLiteStore persists invocation records in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path. On open or schema
// failure it degrades to a JSONL FileStore next to the requested path.
func NewSQLiteStore(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS invocations (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		dob TEXT,
		birth_time TEXT,
		lat REAL,
		lng REAL,
		tz REAL,
		language TEXT,
		status TEXT,
		message TEXT,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.InvocationRecord) error {
	if s.db == nil {
		return s.fallback().Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO invocations
		(id, timestamp, dob, birth_time, lat, lng, tz, language, status, message, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(time.RFC3339),
		record.Dob,
		record.Time,
		record.Lat,
		record.Lng,
		record.Tz,
		record.Language,
		record.Status,
		record.Message,
		record.DurationMS,
	)
	return err
}

// Records returns invocation entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.InvocationRecord, error) {
	if s.db == nil {
		return s.fallback().Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString(`SELECT id, timestamp, dob, birth_time, lat, lng, tz, language, status, message, duration_ms FROM invocations`)
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE dob LIKE ? OR status LIKE ? OR message LIKE ?")
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.InvocationRecord
	for rows.Next() {
		var rec domain.InvocationRecord
		var ts string
		if err := rows.Scan(&rec.ID, &ts, &rec.Dob, &rec.Time, &rec.Lat, &rec.Lng, &rec.Tz,
			&rec.Language, &rec.Status, &rec.Message, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all invocation entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	_, err := s.db.Exec("DELETE FROM invocations")
	return err
}

// ExportJSON writes the invocation table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	return writeJSONL(dest, records)
}

// PruneOlderThan removes entries older than the given number of days.
func (s *SQLiteStore) PruneOlderThan(days int) error {
	if s.db == nil {
		return s.fallback().PruneOlderThan(days)
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
	_, err := s.db.Exec("DELETE FROM invocations WHERE datetime(timestamp) < datetime(?)", cutoff)
	return err
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) fallback() *FileStore {
	return &FileStore{path: s.path + ".jsonl"}
}

var _ ports.InvocationStore = (*SQLiteStore)(nil)
