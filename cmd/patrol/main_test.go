package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"patrol/internal/config"
	"patrol/internal/grid"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func writeGrid(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func setup(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
}

func TestRunSolve(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "sample",
			content:  sample,
			expected: "41\n6\n",
		},
		{
			name:     "single cell",
			content:  "^...\n.#..\n....\n...#\n",
			expected: "1\n0\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup(t)
			var out bytes.Buffer
			require.NoError(t, runSolve(context.Background(), &out, writeGrid(t, tc.content)))
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestRunSolveMalformed(t *testing.T) {
	setup(t)
	var out bytes.Buffer
	err := runSolve(context.Background(), &out, writeGrid(t, "...\n.#.\n"))
	var merr *grid.MalformedGridError
	require.True(t, errors.As(err, &merr), "expected MalformedGridError, got %v", err)
	assert.Empty(t, out.String())

	err = runSolve(context.Background(), &out, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestRunTrace(t *testing.T) {
	setup(t)
	var out bytes.Buffer
	require.NoError(t, runTrace(&out, writeGrid(t, ".#..\n....\n.^..\n")))

	expected := strings.Join([]string{
		".#..",
		".XXX",
		".^..",
		"visited: 4, steps: 4",
	}, "\n") + "\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestRootCommand(t *testing.T) {
	path := writeGrid(t, sample)
	cfgPath := filepath.Join(t.TempDir(), "patrol.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sequential: true\nlog_level: error\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"solve", "--config", cfgPath, path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Equal(t, "41\n6\n", out.String())
	assert.Equal(t, 1, cfg.EffectiveWorkers())
}

func TestWorkersFlagOverridesConfig(t *testing.T) {
	path := writeGrid(t, sample)
	cfgPath := filepath.Join(t.TempDir(), "patrol.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sequential: true\nworkers: 2\nlog_level: error\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"solve", "--config", cfgPath, "--workers", "8", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		workers = 0
		rootCmd.PersistentFlags().Lookup("workers").Changed = false
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Equal(t, "41\n6\n", out.String())
	assert.False(t, cfg.Sequential)
	assert.Equal(t, 8, cfg.EffectiveWorkers())
}
