package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cubepilot/cubepilot/internal/scan"
)

// Cycle is one persisted solve cycle.
type Cycle struct {
	CycleID    string
	StartedAt  time.Time
	Method     string
	CubeStatus string
	Solution   string
	RobotMoves string
	MovesCount int
	WarmupMs   int64
	DetectMs   int64
	SolveMs    int64
	RobotMs    int64
	TotalMs    int64
}

// CycleRepository provides CRUD operations for cycles.
type CycleRepository struct {
	db *DB
}

// NewCycleRepository creates a new cycle repository.
func NewCycleRepository(db *DB) *CycleRepository {
	return &CycleRepository{db: db}
}

// Create persists a completed cycle result and returns its ID.
func (r *CycleRepository) Create(res *scan.CycleResult) (string, error) {
	id := uuid.New().String()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO cycles (
				cycle_id, started_at, method, cube_status, solution,
				robot_moves, moves_count, warmup_ms, detect_ms, solve_ms,
				robot_ms, total_ms
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, res.StartedAt.UTC().Format(time.RFC3339), res.Method.String(),
			res.Status, res.Solution, res.Moves, res.MovesCount,
			res.WarmupTime.Milliseconds(), res.DetectTime.Milliseconds(),
			res.SolveTime.Milliseconds(), res.RobotTime.Milliseconds(),
			res.TotalTime.Milliseconds())
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to create cycle: %w", err)
	}

	return id, nil
}

// Get retrieves a cycle by ID.
func (r *CycleRepository) Get(cycleID string) (*Cycle, error) {
	var c Cycle
	var startedAt string
	err := r.db.QueryRow(`
		SELECT cycle_id, started_at, method, cube_status, solution,
		       robot_moves, moves_count, warmup_ms, detect_ms, solve_ms,
		       robot_ms, total_ms
		FROM cycles WHERE cycle_id = ?
	`, cycleID).Scan(&c.CycleID, &startedAt, &c.Method, &c.CubeStatus,
		&c.Solution, &c.RobotMoves, &c.MovesCount, &c.WarmupMs,
		&c.DetectMs, &c.SolveMs, &c.RobotMs, &c.TotalMs)
	if err != nil {
		return nil, fmt.Errorf("failed to get cycle: %w", err)
	}

	c.StartedAt, err = time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cycle timestamp: %w", err)
	}
	return &c, nil
}

// List retrieves the most recent cycles, newest first.
func (r *CycleRepository) List(limit int) ([]Cycle, error) {
	rows, err := r.db.Query(`
		SELECT cycle_id, started_at, method, cube_status, solution,
		       robot_moves, moves_count, warmup_ms, detect_ms, solve_ms,
		       robot_ms, total_ms
		FROM cycles
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycles: %w", err)
	}
	defer rows.Close()

	var cycles []Cycle
	for rows.Next() {
		var c Cycle
		var startedAt string
		if err := rows.Scan(&c.CycleID, &startedAt, &c.Method,
			&c.CubeStatus, &c.Solution, &c.RobotMoves, &c.MovesCount,
			&c.WarmupMs, &c.DetectMs, &c.SolveMs, &c.RobotMs,
			&c.TotalMs); err != nil {
			return nil, fmt.Errorf("failed to scan cycle: %w", err)
		}
		c.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cycle timestamp: %w", err)
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}
