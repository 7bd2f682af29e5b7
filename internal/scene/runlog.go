package scene

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type stats struct {
	spawned        map[string]int
	killed         map[string]int
	drops          map[string]int
	finishingBlows int
	damageTaken    int
	strikesLanded  int
	pickups        int
	songs          int
}

func newStats() stats {
	return stats{
		spawned: make(map[string]int),
		killed:  make(map[string]int),
		drops:   make(map[string]int),
	}
}

// RunLog records statistics for one scenario run.
type RunLog struct {
	RunID          string         `json:"run_id"`
	Timestamp      time.Time      `json:"timestamp"`
	Scenario       string         `json:"scenario,omitempty"`
	Seed           uint64         `json:"seed"`
	Ticks          uint64         `json:"ticks"`
	Spawned        map[string]int `json:"spawned"`
	Killed         map[string]int `json:"killed"`
	Cues           map[string]int `json:"cues"`
	Drops          map[string]int `json:"drops"`
	FinishingBlows int            `json:"finishing_blows"`
	StrikesLanded  int            `json:"strikes_landed"`
	DamageTaken    int            `json:"damage_taken"`
	Pickups        int            `json:"pickups"`
	SongsPlayed    int            `json:"songs_played"`
	TargetHealth   int            `json:"target_health"`
}

// RunLog summarises the scene so far.
func (s *Scene) RunLog(scenario string) RunLog {
	cues := make(map[string]int, len(s.cues))
	for c, n := range s.cues {
		cues[c.String()] = n
	}
	return RunLog{
		RunID:          s.RunID.String(),
		Timestamp:      time.Now().UTC(),
		Scenario:       scenario,
		Seed:           s.Seed,
		Ticks:          s.frame.Tick,
		Spawned:        s.stats.spawned,
		Killed:         s.stats.killed,
		Cues:           cues,
		Drops:          s.stats.drops,
		FinishingBlows: s.stats.finishingBlows,
		StrikesLanded:  s.stats.strikesLanded,
		DamageTaken:    s.stats.damageTaken,
		Pickups:        s.stats.pickups,
		SongsPlayed:    s.stats.songs,
		TargetHealth:   s.Target.Health.Current,
	}
}

// SaveRunLog appends rl as a single JSON line to runs.jsonl.
// Errors are logged but never stop the caller.
func SaveRunLog(rl RunLog, logger *slog.Logger) {
	dir, err := runLogDir()
	if err != nil {
		logger.Warn("run log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	f.Write(data)         //nolint:errcheck
	f.Write([]byte("\n")) //nolint:errcheck
}

// runLogDir follows the XDG base directory layout:
// $XDG_DATA_HOME/hmactors, defaulting to ~/.local/share/hmactors.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "hmactors"), nil
}
