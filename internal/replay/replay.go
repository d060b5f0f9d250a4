// Package replay records runs as a seed plus the intents applied before each
// tick, and re-simulates them. A run is fully determined by its seed, its
// config and its intent stream, so a recording is enough to verify a score.
package replay

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/trench-runner/internal/config"
	"github.com/vovakirdan/trench-runner/internal/runner"
)

// FormatVersion is bumped whenever the encoding or the simulation changes
// in a way that breaks old recordings.
const FormatVersion = 1

// ErrMismatch is returned when a re-simulation does not reproduce the recording.
var ErrMismatch = errors.New("replay: mismatch")

// Frame holds the intents applied before one tick. Ticks without input are omitted.
type Frame struct {
	Tick    uint32          `msgpack:"t"`
	Intents []runner.Intent `msgpack:"i"`
}

// Recording is one replayable run.
type Recording struct {
	Version  int     `msgpack:"v"`
	RunID    string  `msgpack:"id"`
	Player   string  `msgpack:"p"`
	Seed     int64   `msgpack:"s"`
	TickRate int     `msgpack:"r"`
	Preset   string  `msgpack:"d"`
	Digest   string  `msgpack:"c"`
	Ticks    uint32  `msgpack:"n"`
	Score    int     `msgpack:"sc"`
	Frames   []Frame `msgpack:"f"`
}

// NewRunID returns a sortable unique run identifier.
func NewRunID() string {
	return ulid.Make().String()
}

// Digest fingerprints a config so a replay is only verified against the
// constants it was recorded with.
func Digest(cfg config.RunnerConfig) string {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// Encode serializes a recording.
func Encode(rec Recording) ([]byte, error) {
	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("replay: encode: %w", err)
	}
	return data, nil
}

// Decode parses a recording and checks its format version.
func Decode(data []byte) (Recording, error) {
	var rec Recording
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("replay: decode: %w", err)
	}
	if rec.Version != FormatVersion {
		return Recording{}, fmt.Errorf("replay: unsupported format version %d", rec.Version)
	}
	return rec, nil
}

// Recorder accumulates frames while a run is played.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a run.
func NewRecorder(runID, player string, seed int64, tickRate int, cfg config.RunnerConfig) *Recorder {
	return &Recorder{rec: Recording{
		Version:  FormatVersion,
		RunID:    runID,
		Player:   player,
		Seed:     seed,
		TickRate: tickRate,
		Preset:   cfg.Difficulty.Preset,
		Digest:   Digest(cfg),
	}}
}

// Record stores the intents applied before the next tick. Call it once per tick.
func (r *Recorder) Record(intents []runner.Intent) {
	if len(intents) > 0 {
		r.rec.Frames = append(r.rec.Frames, Frame{
			Tick:    r.rec.Ticks,
			Intents: append([]runner.Intent(nil), intents...),
		})
	}
	r.rec.Ticks++
}

// Ticks returns how many ticks have been recorded.
func (r *Recorder) Ticks() uint32 {
	return r.rec.Ticks
}

// Finish stamps the final score and returns the recording.
func (r *Recorder) Finish(score int) Recording {
	r.rec.Score = score
	return r.rec
}

// Step plays one tick the way the game does: apply intents, scroll the track by
// the current speed, then tick the simulation.
func Step(sim *runner.Sim, intents []runner.Intent, dt float64) []runner.Event {
	for _, in := range intents {
		sim.Apply(in)
	}
	sim.Arena().Scroll(sim.Run().Speed * dt)
	return sim.Tick(dt)
}

// Run re-simulates a recording and returns the resulting breakdown.
func Run(rec Recording, cfg config.RunnerConfig, opts ...runner.Option) (runner.Breakdown, error) {
	if rec.TickRate <= 0 {
		return runner.Breakdown{}, fmt.Errorf("replay: invalid tick rate %d", rec.TickRate)
	}
	dt := 1.0 / float64(rec.TickRate)

	sim := runner.New(cfg, append(opts, runner.WithSeed(rec.Seed))...)
	sim.Start()

	next := 0
	for tick := uint32(0); tick < rec.Ticks && sim.Run().Active; tick++ {
		var intents []runner.Intent
		if next < len(rec.Frames) && rec.Frames[next].Tick == tick {
			intents = rec.Frames[next].Intents
			next++
		}
		Step(sim, intents, dt)
	}
	if sim.Run().Active {
		return sim.Breakdown(), nil
	}
	return sim.Final(), nil
}

// Verify re-simulates a recording and checks that it reproduces the stored score.
func Verify(rec Recording, cfg config.RunnerConfig, opts ...runner.Option) (runner.Breakdown, error) {
	if got := Digest(cfg); got != rec.Digest {
		return runner.Breakdown{}, fmt.Errorf("%w: config digest %s, recorded %s", ErrMismatch, got, rec.Digest)
	}
	b, err := Run(rec, cfg, opts...)
	if err != nil {
		return b, err
	}
	if b.Score != rec.Score {
		return b, fmt.Errorf("%w: score %d, recorded %d", ErrMismatch, b.Score, rec.Score)
	}
	return b, nil
}
