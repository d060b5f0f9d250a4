package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
)

// Replay returns the encoded replay stored with a run.
func (s *Store) Replay(runID string) ([]byte, error) {
	if _, err := ulid.ParseStrict(runID); err != nil {
		return nil, fmt.Errorf("storage: invalid run id %q: %w", runID, err)
	}
	var data []byte
	err := s.db.QueryRow("SELECT data FROM replays WHERE run_id = ?", runID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: replay %s", ErrNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	return data, nil
}
