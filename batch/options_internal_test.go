package batch

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkersFor(t *testing.T) {
	for _, tc := range []struct {
		name      string
		workers   int
		minBlocks int
		blocks    int
		want      int
	}{
		{"empty", 4, 1, 0, 1},
		{"inline", 1, 1, 1000, 1},
		{"capped by share", 8, 64, 200, 3},
		{"enough blocks", 4, 64, 10000, 4},
		{"below one share", 4, 64, 63, 1},
		{"min one", 4, 1, 2, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			o := gatherOptions(WithWorkers(tc.workers), WithMinBlocksPerWorker(tc.minBlocks))
			assert.Equal(t, tc.want, o.workersFor(tc.blocks))
		})
	}

	o := gatherOptions(WithMinBlocksPerWorker(1))
	assert.Equal(t, min(runtime.GOMAXPROCS(0), 1<<20), o.workersFor(1<<20))
}

func TestGatherOptions_Defaults(t *testing.T) {
	o := gatherOptions()
	assert.Equal(t, DefaultWorkers, o.workers)
	assert.Equal(t, DefaultMinBlocksPerWorker, o.minBlocks)
	assert.Nil(t, o.metrics)
}

func TestBlockRanges(t *testing.T) {
	for _, tc := range []struct {
		blocks, workers int
		want            []blockRange
	}{
		{4, 2, []blockRange{{0, 2}, {2, 4}}},
		{5, 2, []blockRange{{0, 3}, {3, 5}}},
		{5, 4, []blockRange{{0, 2}, {2, 4}, {4, 5}}},
		{3, 3, []blockRange{{0, 1}, {1, 2}, {2, 3}}},
		{1001, 16, nil},
	} {
		got := blockRanges(tc.blocks, tc.workers)
		if tc.want != nil {
			assert.Equal(t, tc.want, got, "blocks=%d workers=%d", tc.blocks, tc.workers)
		}

		assert.LessOrEqual(t, len(got), tc.workers)
		next := 0
		for _, r := range got {
			assert.Equal(t, next, r.lo, "ranges must be contiguous")
			assert.Less(t, r.lo, r.hi, "ranges must be non-empty")
			next = r.hi
		}
		assert.Equal(t, tc.blocks, next)
	}
}
