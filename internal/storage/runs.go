package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/vovakirdan/trench-runner/internal/runner"
	"github.com/vovakirdan/trench-runner/internal/tier"
)

// RunEntry is one finished run on the leaderboard.
type RunEntry struct {
	ID        string // ULID, shared with the replay
	Player    string
	Tier      tier.Tier
	Breakdown runner.Breakdown
	Seed      int64
	Preset    string
	CreatedAt time.Time
}

const runColumns = `id, player, tier, score, distance, tokens, multiplier,
	distance_score, coin_score, whale_score, max_combo, boosts_used, whale_tokens,
	seed, preset, created_at`

// SaveRun records a finished run and, when data is not nil, its encoded replay.
// Both rows are written in one transaction.
func (s *Store) SaveRun(run RunEntry, replayData []byte) error {
	if _, err := ulid.ParseStrict(run.ID); err != nil {
		return fmt.Errorf("storage: invalid run id %q: %w", run.ID, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	b := run.Breakdown
	_, err = tx.Exec(
		`INSERT INTO runs (id, player, tier, score, distance, tokens, multiplier,
		   distance_score, coin_score, whale_score, max_combo, boosts_used, whale_tokens,
		   seed, preset)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Player, run.Tier.String(), b.Score, b.Distance, b.Tokens, b.Multiplier,
		b.DistanceScore, b.CoinScore, b.WhaleScore, b.MaxCombo, b.BoostsUsed, b.WhaleTokens,
		run.Seed, run.Preset,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}

	if replayData != nil {
		if _, err := tx.Exec(
			"INSERT INTO replays (run_id, data) VALUES (?, ?)",
			run.ID, replayData,
		); err != nil {
			return fmt.Errorf("storage: cannot save replay: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return nil
}

// TopRuns retrieves the best runs, highest score first.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return collectRuns(rows)
}

// PlayerRuns retrieves one player's best runs.
func (s *Store) PlayerRuns(player string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE player = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player runs: %w", err)
	}
	return collectRuns(rows)
}

// RunByID returns a single run.
func (s *Store) RunByID(id string) (RunEntry, error) {
	if _, err := ulid.ParseStrict(id); err != nil {
		return RunEntry{}, fmt.Errorf("storage: invalid run id %q: %w", id, err)
	}
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunEntry{}, fmt.Errorf("%w: run %s", ErrNotFound, id)
	}
	if err != nil {
		return RunEntry{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// BestScore returns the highest stored score, or 0 if there are no runs.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// PlayerBest returns a player's highest score, or 0 if they have no runs.
func (s *Store) PlayerBest(player string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE player = ?",
		player,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query player best: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Qualifies reports whether a score would enter the top LeaderboardSize runs.
func (s *Store) Qualifies(score int) (bool, error) {
	if score <= 0 {
		return false, nil
	}
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return false, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	if count < LeaderboardSize {
		return true, nil
	}

	var cutoff int
	err := s.db.QueryRow(
		"SELECT score FROM runs ORDER BY score DESC LIMIT 1 OFFSET ?",
		LeaderboardSize-1,
	).Scan(&cutoff)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query cutoff: %w", err)
	}
	return score > cutoff, nil
}

// ClearRuns deletes every run and replay.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM replays"); err != nil {
		return fmt.Errorf("storage: cannot clear replays: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunEntry, error) {
	var run RunEntry
	var tierName string
	var createdAt any
	b := &run.Breakdown
	err := row.Scan(
		&run.ID, &run.Player, &tierName, &b.Score, &b.Distance, &b.Tokens, &b.Multiplier,
		&b.DistanceScore, &b.CoinScore, &b.WhaleScore, &b.MaxCombo, &b.BoostsUsed, &b.WhaleTokens,
		&run.Seed, &run.Preset, &createdAt,
	)
	if err != nil {
		return RunEntry{}, err
	}
	// Unknown names from older rows read as no tier.
	run.Tier, _ = tier.Parse(tierName)
	run.CreatedAt = parseTime(createdAt)
	return run, nil
}

func collectRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
