package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polar3/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.FormatAuto, cfg.Log.Format)
	assert.Equal(t, "zstd", cfg.Files.Compression)
	assert.Equal(t, uint64(0x1234), cfg.Gen.Seed)
	assert.Equal(t, uint64(0x5678), cfg.Gen.Stream)
	assert.Len(t, cfg.BatchOptions(), 2)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
log:
  level: debug
solve:
  workers: 4
files:
  compression: lz4
check:
  tolerance: 0.01
`))
	require.NoError(t, err)

	want := config.Default()
	want.Log.Level = "debug"
	want.Solve.Workers = 4
	want.Files.Compression = "lz4"
	want.Check.Tolerance = 0.01
	assert.Equal(t, want, cfg)
}

func TestParse_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
	}{
		{"level", "log: {level: loud}"},
		{"format", "log: {format: xml}"},
		{"workers", "solve: {workers: -1}"},
		{"min blocks", "solve: {min_blocks_per_worker: 0}"},
		{"compression", "files: {compression: gzip}"},
		{"blocks", "gen: {blocks: -3}"},
		{"tolerance", "check: {tolerance: 0}"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := config.Parse([]byte("solve: {threads: 2}"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polar3.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gen:\n  blocks: 10\n  seed: 7\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Gen.Blocks)
	assert.Equal(t, uint64(7), cfg.Gen.Seed)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
