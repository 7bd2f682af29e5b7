package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hmactors/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScenario(t *testing.T, args ...string) (scene.RunLog, string) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), args, &stdout, &stderr), stderr.String())
	var rl scene.RunLog
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rl))
	return rl, stderr.String()
}

func TestDuelScenario(t *testing.T) {
	rl, logs := runScenario(t, "-config", filepath.Join("testdata", "duel.toml"), "-runlog=false")

	assert.Equal(t, "duel", rl.Scenario)
	assert.Equal(t, uint64(5), rl.Seed)
	assert.Equal(t, uint64(60), rl.Ticks)
	assert.Equal(t, map[string]int{"caster": 1}, rl.Killed)
	assert.Equal(t, 1, rl.FinishingBlows)
	assert.Equal(t, 3, rl.StrikesLanded)
	assert.Equal(t, map[string]int{"recovery_heart": 1}, rl.Drops)
	assert.Contains(t, logs, "scenario finished")
}

func TestFlagsOverrideConfig(t *testing.T) {
	rl, logs := runScenario(t,
		"-config", filepath.Join("testdata", "duel.toml"),
		"-seed", "99", "-ticks", "3", "-log-format", "json", "-runlog=false")

	assert.Equal(t, uint64(99), rl.Seed)
	assert.Equal(t, uint64(3), rl.Ticks)
	assert.Empty(t, rl.Killed)
	assert.True(t, strings.HasPrefix(logs, "{"), "json handler")
}

func TestDefaultSandboxRuns(t *testing.T) {
	rl, _ := runScenario(t, "-ticks", "10", "-log-level", "error")
	assert.Equal(t, "sandbox", rl.Scenario)
	assert.Equal(t, uint64(10), rl.Ticks)
	assert.Equal(t, 48, rl.TargetHealth)
	assert.NotEmpty(t, rl.RunID)
}

func TestRunLogIsAppended(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-ticks", "2"}, &stdout, &stderr))

	data, err := os.ReadFile(filepath.Join(tmp, "hmactors", "runs.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestSampleScenariosRun(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "scenarios", "*.toml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, p := range paths {
		t.Run(filepath.Base(p), func(t *testing.T) {
			rl, _ := runScenario(t, "-config", p, "-ticks", "200", "-log-level", "error", "-runlog=false")
			assert.Positive(t, rl.Ticks)
			assert.NotEmpty(t, rl.Spawned)
		})
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing config", []string{"-config", "testdata/nope.toml"}, "nope.toml"},
		{"bad level", []string{"-log-level", "loud"}, "log_level"},
		{"bad format", []string{"-log-format", "xml"}, "log_format"},
		{"negative ticks", []string{"-ticks", "-5"}, "ticks"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tc.args, &stdout, &stderr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			assert.Zero(t, stdout.Len())
		})
	}
}

func TestHelpFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-h"}, &stdout, &stderr)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr.String(), "-config")
}

func TestCancelledContextStopsEarly(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"-runlog=false"}, &stdout, &stderr)
	assert.ErrorIs(t, err, context.Canceled)

	var rl scene.RunLog
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rl))
	assert.Zero(t, rl.Ticks)
}
