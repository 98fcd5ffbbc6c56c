// Package storage records completed simulation runs in SQLite: one row of
// run metadata plus a final body snapshot per run.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/san-kum/unisim/internal/universe"
)

// Store wraps a SQLite connection for run persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates the run database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	st := &Store{conn: conn}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return st, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		seed INTEGER NOT NULL,
		size INTEGER NOT NULL,
		tick_size REAL NOT NULL,
		ticks INTEGER NOT NULL,
		bodies_start INTEGER NOT NULL,
		bodies_end INTEGER NOT NULL,
		sim_time REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS bodies (
		run_id TEXT NOT NULL REFERENCES runs(id),
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		mass REAL NOT NULL,
		pos_x REAL NOT NULL,
		pos_y REAL NOT NULL,
		vel_x REAL NOT NULL,
		vel_y REAL NOT NULL,
		size REAL NOT NULL,
		PRIMARY KEY (run_id, name)
	);

	CREATE INDEX IF NOT EXISTS idx_bodies_run ON bodies(run_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Run is stored metadata for one completed simulation.
type Run struct {
	ID          string    `db:"id"`
	CreatedAt   time.Time `db:"created_at"`
	Seed        int64     `db:"seed"`
	Size        int       `db:"size"`
	TickSize    float64   `db:"tick_size"`
	Ticks       int       `db:"ticks"`
	BodiesStart int       `db:"bodies_start"`
	BodiesEnd   int       `db:"bodies_end"`
	SimTime     float64   `db:"sim_time"`
}

// BodyRow is one body of a run's final snapshot.
type BodyRow struct {
	RunID string  `db:"run_id"`
	Name  string  `db:"name"`
	Kind  string  `db:"kind"`
	Mass  float64 `db:"mass"`
	PosX  float64 `db:"pos_x"`
	PosY  float64 `db:"pos_y"`
	VelX  float64 `db:"vel_x"`
	VelY  float64 `db:"vel_y"`
	Size  float64 `db:"size"`
}

// SaveRun records metadata and the world's final body snapshot, returning
// the generated run id.
func (s *Store) SaveRun(w *universe.World, seed int64, size, ticks, bodiesStart int) (string, error) {
	runID := uuid.NewString()

	tx, err := s.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	run := Run{
		ID:          runID,
		CreatedAt:   time.Now().UTC(),
		Seed:        seed,
		Size:        size,
		TickSize:    w.TickSize(),
		Ticks:       ticks,
		BodiesStart: bodiesStart,
		BodiesEnd:   w.Len(),
		SimTime:     w.Time(),
	}

	if _, err := tx.NamedExec(`INSERT INTO runs
		(id, created_at, seed, size, tick_size, ticks, bodies_start, bodies_end, sim_time)
		VALUES (:id, :created_at, :seed, :size, :tick_size, :ticks, :bodies_start, :bodies_end, :sim_time)`,
		run); err != nil {
		return "", err
	}

	stmt, err := tx.Preparex(`INSERT INTO bodies
		(run_id, name, kind, mass, pos_x, pos_y, vel_x, vel_y, size)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, b := range w.Bodies() {
		if _, err := stmt.Exec(runID, b.Name, b.Kind.String(), b.Mass,
			b.Position.X(), b.Position.Y(), b.Velocity.X(), b.Velocity.Y(), b.Size); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// ListRuns returns all stored runs, newest first.
func (s *Store) ListRuns() ([]Run, error) {
	var runs []Run
	err := s.conn.Select(&runs, `SELECT * FROM runs ORDER BY created_at DESC`)
	return runs, err
}

// LoadRun returns one run's metadata.
func (s *Store) LoadRun(runID string) (*Run, error) {
	var run Run
	if err := s.conn.Get(&run, `SELECT * FROM runs WHERE id = ?`, runID); err != nil {
		return nil, err
	}
	return &run, nil
}

// LoadBodies returns a run's final body snapshot in stored order.
func (s *Store) LoadBodies(runID string) ([]BodyRow, error) {
	var rows []BodyRow
	err := s.conn.Select(&rows, `SELECT * FROM bodies WHERE run_id = ? ORDER BY name`, runID)
	return rows, err
}
