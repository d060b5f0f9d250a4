package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/vovakirdan/trench-runner/internal/runner"
	"github.com/vovakirdan/trench-runner/internal/tier"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newRun(player string, score int) RunEntry {
	return RunEntry{
		ID:     ulid.Make().String(),
		Player: player,
		Tier:   tier.Silver,
		Breakdown: runner.Breakdown{
			Score:         score,
			Distance:      score / 10,
			Tokens:        3,
			Multiplier:    1.5,
			DistanceScore: score / 2,
			CoinScore:     score / 2,
			MaxCombo:      4,
			BoostsUsed:    1,
		},
		Seed:   42,
		Preset: "normal",
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunEntry{newRun("ana", 100), newRun("bo", 300), newRun("ana", 200)} {
		if err := store.SaveRun(r, nil); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("TopRuns(2) returned %d runs", len(runs))
	}
	if runs[0].Breakdown.Score != 300 || runs[1].Breakdown.Score != 200 {
		t.Errorf("TopRuns order = %d, %d, expected 300, 200", runs[0].Breakdown.Score, runs[1].Breakdown.Score)
	}

	got := runs[0]
	if got.Player != "bo" || got.Tier != tier.Silver || got.Seed != 42 || got.Preset != "normal" {
		t.Errorf("stored run fields = %+v", got)
	}
	if got.Breakdown.Multiplier != 1.5 || got.Breakdown.MaxCombo != 4 {
		t.Errorf("stored breakdown = %+v", got.Breakdown)
	}
}

func TestBestScores(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() on empty store = %d, expected 0", best)
	}

	store.SaveRun(newRun("ana", 120), nil)
	store.SaveRun(newRun("bo", 80), nil)

	if best, _ := store.BestScore(); best != 120 {
		t.Errorf("BestScore() = %d, expected 120", best)
	}
	if best, _ := store.PlayerBest("bo"); best != 80 {
		t.Errorf("PlayerBest(bo) = %d, expected 80", best)
	}
	if best, _ := store.PlayerBest("nobody"); best != 0 {
		t.Errorf("PlayerBest(nobody) = %d, expected 0", best)
	}

	runs, err := store.PlayerRuns("ana", 5)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Player != "ana" {
		t.Errorf("PlayerRuns(ana) = %+v", runs)
	}
}

func TestQualifies(t *testing.T) {
	store := openTestStore(t)

	if ok, _ := store.Qualifies(0); ok {
		t.Error("zero score should never qualify")
	}
	if ok, _ := store.Qualifies(1); !ok {
		t.Error("any positive score should qualify on an empty board")
	}

	for i := 1; i <= LeaderboardSize; i++ {
		if err := store.SaveRun(newRun("p", i*10), nil); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Board is full; the 100th place holds 10.
	tests := []struct {
		score int
		want  bool
	}{
		{5, false},
		{10, false},
		{11, true},
		{5000, true},
	}
	for _, tt := range tests {
		got, err := store.Qualifies(tt.score)
		if err != nil {
			t.Fatalf("Qualifies(%d) failed: %v", tt.score, err)
		}
		if got != tt.want {
			t.Errorf("Qualifies(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}
}

func TestRunByIDAndReplay(t *testing.T) {
	store := openTestStore(t)

	run := newRun("ana", 777)
	data := []byte{0x93, 0x01, 0x02, 0x03}
	if err := store.SaveRun(run, data); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(run.ID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Breakdown.Score != 777 {
		t.Errorf("RunByID score = %d, expected 777", got.Breakdown.Score)
	}

	blob, err := store.Replay(run.ID)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if !bytes.Equal(blob, data) {
		t.Errorf("Replay() = %x, expected %x", blob, data)
	}

	missing := ulid.Make().String()
	if _, err := store.RunByID(missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID(missing) error = %v, expected ErrNotFound", err)
	}
	if _, err := store.Replay(missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("Replay(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestInvalidRunID(t *testing.T) {
	store := openTestStore(t)

	run := newRun("ana", 10)
	run.ID = "not-a-ulid"
	if err := store.SaveRun(run, nil); err == nil {
		t.Error("SaveRun() accepted an invalid id")
	}
	if _, err := store.RunByID("not-a-ulid"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID(invalid) error = %v, expected a validation error", err)
	}
}

func TestDuplicateRunRollsBack(t *testing.T) {
	store := openTestStore(t)

	run := newRun("ana", 50)
	if err := store.SaveRun(run, []byte{1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.SaveRun(run, []byte{2}); err == nil {
		t.Fatal("SaveRun() accepted a duplicate id")
	}

	blob, err := store.Replay(run.ID)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if !bytes.Equal(blob, []byte{1}) {
		t.Errorf("replay overwritten by failed save: %x", blob)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	run := newRun("ana", 10)
	store.SaveRun(run, []byte{1})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("ClearRuns() left %d runs", len(runs))
	}
	if _, err := store.Replay(run.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("replay survived ClearRuns: %v", err)
	}
}
