package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polar3/batchfile"
	"github.com/katalvlaran/polar3/pcg"
	"github.com/katalvlaran/polar3/smallmat"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestGenSolveCheck(t *testing.T) {
	dir := t.TempDir()
	u1 := filepath.Join(dir, "u1.p3b")
	u2 := filepath.Join(dir, "u2.p3b")
	truth := filepath.Join(dir, "truth.p3b")
	result := filepath.Join(dir, "result.p3b")

	_, stderr, err := run(t, "gen", "--blocks", "64", "--u1", u1, "--u2", u2, "--truth", truth, "--compression", "lz4")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"run_id"`)
	assert.Contains(t, stderr, `"message":"batch generated"`)

	_, stderr, err = run(t, "solve", "--u1", u1, "--u2", u2, "--out", result, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"polar3_blocks_total":64`)
	assert.Contains(t, stderr, `"polar3_batches_total":1`)

	stdout, _, err := run(t, "check", "--u1", u1, "--u2", u2, "--result", result)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "blocks=64 "), stdout)
	assert.Contains(t, stdout, "above_tol=0 not_rotation=0")

	// The solved rotations match the generating ones.
	want, _, err := batchfile.ReadFile(truth)
	require.NoError(t, err)
	got, h, err := batchfile.ReadFile(result)
	require.NoError(t, err)
	assert.Equal(t, batchfile.Zstd, h.Compression, "solve uses the configured default")
	for k := 0; k < 64; k++ {
		assert.True(t, blockAt(got, k).CloseTo(blockAt(want, k), 1e-3), "block %d", k)
	}
}

// TestCheck_DetectsWrongResult swaps u2 for u1 as the result.
func TestCheck_DetectsWrongResult(t *testing.T) {
	dir := t.TempDir()
	u1 := filepath.Join(dir, "u1.p3b")
	u2 := filepath.Join(dir, "u2.p3b")

	_, _, err := run(t, "gen", "--blocks", "8", "--u1", u1, "--u2", u2)
	require.NoError(t, err)

	_, _, err = run(t, "check", "--u1", u1, "--u2", u2, "--result", u1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceed tolerance")
}

func TestSolve_MismatchedBatches(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.p3b")
	large := filepath.Join(dir, "large.p3b")
	require.NoError(t, batchfile.WriteFile(small, make([]float32, 9), batchfile.None))
	require.NoError(t, batchfile.WriteFile(large, make([]float32, 18), batchfile.None))

	_, _, err := run(t, "solve", "--u1", small, "--u2", large, "--out", filepath.Join(dir, "out.p3b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffer lengths differ")
}

// TestSolve_NegativeWorkers reports a bad --workers value as an error.
func TestSolve_NegativeWorkers(t *testing.T) {
	dir := t.TempDir()
	u := filepath.Join(dir, "u.p3b")
	require.NoError(t, batchfile.WriteFile(u, make([]float32, 9), batchfile.None))

	var err error
	require.NotPanics(t, func() {
		_, _, err = run(t, "solve", "--u1", u, "--u2", u, "--out", filepath.Join(dir, "out.p3b"), "--workers", "-1")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--workers must be >= 0, got -1")
	assert.NoFileExists(t, filepath.Join(dir, "out.p3b"))
}

func TestSVD(t *testing.T) {
	stdout, _, err := run(t, "svd", "1", "0", "0", "0", "1", "0", "0", "0", "-1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "D = [1.00000, 1.00000, 1.00000]")
	assert.Contains(t, stdout, "flipped = true, jacobi steps = 0")

	_, _, err = run(t, "svd", "1", "2")
	require.Error(t, err)

	_, _, err = run(t, "svd", "1", "0", "0", "0", "1", "0", "0", "0", "x")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "polar3.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: debug\n  format: json\ngen:\n  blocks: 3\nfiles:\n  compression: none\n"), 0o600))

	u1 := filepath.Join(dir, "u1.p3b")
	_, stderr, err := run(t, "--config", cfgPath, "gen", "--u1", u1, "--u2", filepath.Join(dir, "u2.p3b"))
	require.NoError(t, err)
	assert.Contains(t, stderr, `"level":"debug"`)

	data, h, err := batchfile.ReadFile(u1)
	require.NoError(t, err)
	assert.Len(t, data, 27)
	assert.Equal(t, batchfile.None, h.Compression)

	_, _, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "gen")
	require.Error(t, err)

	_, _, err = run(t, "--log-format", "xml", "gen", "--u1", u1, "--u2", u1)
	require.Error(t, err)
}

func TestGenerate_Deterministic(t *testing.T) {
	a1, b1, r1 := generate(pcg.New(1, 2), 5)
	a2, b2, r2 := generate(pcg.New(1, 2), 5)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, r1, r2)

	for k := 0; k < 5; k++ {
		rt := blockAt(r1, k)
		assert.True(t, rt.IsRotation(smallmat.DefaultTolerance), "block %d", k)
		assert.Equal(t, rt.Mul(blockAt(a1, k)), blockAt(b1, k))
	}
}
