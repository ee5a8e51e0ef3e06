// SPDX-License-Identifier: MIT

package memory_test

import (
	"encoding/json"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/seqmem/alphabet"
	"github.com/katalvlaran/seqmem/harmonic"
	"github.com/katalvlaran/seqmem/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opts(checkpoints ...int) memory.Options {
	o := memory.DefaultOptions()
	if len(checkpoints) > 0 {
		o.Checkpoints = checkpoints
	}

	return o
}

func TestDefaultOptions(t *testing.T) {
	o := memory.DefaultOptions()
	assert.Equal(t, harmonic.DefaultAnchor, o.Anchor)
	assert.Equal(t, harmonic.Phi, o.Growth)
	assert.Equal(t, memory.DefaultLayers, o.Layers)
	assert.Equal(t, memory.DefaultStackingScale, o.StackingScale)
	assert.Equal(t, memory.DefaultStep, o.Step)
	assert.Equal(t, harmonic.DefaultCheckpoints(), o.Checkpoints)
	require.NoError(t, o.Validate())
}

func TestRun_Deterministic(t *testing.T) {
	seq := alphabet.Parse("GATTACAGATTACACCGGTTAACG")

	a, err := memory.Run(seq, opts())
	require.NoError(t, err)
	b, err := memory.Run(seq, opts())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestRun_Concurrent: independent runs share no state.
func TestRun_Concurrent(t *testing.T) {
	seq := alphabet.Parse("ACGTTGCAAGCTAGCTAGGATCCA")
	want, err := memory.Run(seq, opts())
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]memory.Report, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = memory.Run(seq, opts())
		}(i)
	}
	wg.Wait()

	for i := range got {
		assert.Equal(t, want, got[i], "run %d", i)
	}
}

// TestRun_SkipsOversizedCheckpoints: W > len is dropped from the report.
func TestRun_SkipsOversizedCheckpoints(t *testing.T) {
	seq := alphabet.Parse("ACGTTGCAAG")

	rep, err := memory.Run(seq, opts(1, 2, 3, 1000))
	require.NoError(t, err)
	require.Len(t, rep.Checkpoints, 3)

	for i, w := range []int{1, 2, 3} {
		assert.Equal(t, w, rep.Checkpoints[i].WindowLength)
		assert.Equal(t, len(seq)-w+1, rep.Checkpoints[i].RowCount)
	}
	assert.Equal(t, 10, rep.SequenceLength)
}

// TestRun_Degenerate: the empty sequence holds one zero entry; a short
// non-empty sequence skips every oversized checkpoint.
func TestRun_Degenerate(t *testing.T) {
	rep, err := memory.Run(alphabet.Parse(""), opts(1))
	require.NoError(t, err)
	assert.Equal(t, []memory.CheckpointResult{{WindowLength: 1, RowCount: 0, Score: 0}}, rep.Checkpoints)
	_, ok := rep.Best()
	assert.False(t, ok)

	rep, err = memory.Run(alphabet.Parse(""), opts(8, 5))
	require.NoError(t, err)
	assert.Equal(t, []memory.CheckpointResult{{WindowLength: 5}}, rep.Checkpoints)

	rep, err = memory.Run(alphabet.Parse("ACG"), opts(8, 5))
	require.NoError(t, err)
	require.NotNil(t, rep.Checkpoints)
	assert.Empty(t, rep.Checkpoints)
	assert.Equal(t, 3, rep.SequenceLength)
	_, ok = rep.Best()
	assert.False(t, ok)

	data, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"checkpoints":[]`)
}

func TestRun_CheckpointsSortedAndDistinct(t *testing.T) {
	cps := []int{3, 1, 3, 2}

	rep, err := memory.Run(alphabet.Parse("ACGTACGT"), opts(cps...))
	require.NoError(t, err)

	var ws []int
	for _, cp := range rep.Checkpoints {
		ws = append(ws, cp.WindowLength)
	}
	assert.Equal(t, []int{1, 2, 3}, ws)
	assert.Equal(t, []int{3, 1, 3, 2}, cps, "caller slice untouched")
}

func TestRun_Step(t *testing.T) {
	o := opts(3)
	o.Step = 2

	rep, err := memory.Run(alphabet.Parse("ACGTACGTAC"), o)
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Checkpoints[0].RowCount)
}

func TestRun_MaxStep(t *testing.T) {
	o := opts(1, 2)
	o.Step = math.MaxInt

	rep, err := memory.Run(alphabet.Parse("ACGT"), o)
	require.NoError(t, err)
	require.Len(t, rep.Checkpoints, 2)
	for _, cp := range rep.Checkpoints {
		assert.Equal(t, 1, cp.RowCount, "W=%d", cp.WindowLength)
	}
}

func TestRun_ReportFields(t *testing.T) {
	o := opts(2)
	o.Anchor = "verdi"
	o.Layers = 7

	rep, err := memory.Run(alphabet.Parse("ACGT"), o)
	require.NoError(t, err)
	assert.Equal(t, "verdi", rep.Anchor)
	assert.Equal(t, 432.0, rep.AnchorFrequency)
	require.Len(t, rep.PrototypeLayers, 7)
	assert.Equal(t, 432.0, rep.PrototypeLayers[0])
	assert.InDelta(t, 432*harmonic.Phi, rep.PrototypeLayers[1], 1e-9)
}

func TestRun_AnchorResolution(t *testing.T) {
	cases := []struct {
		id   string
		want float64
		name string
	}{
		{"", 528, "solfeggio"},
		{"Concert", 440, "Concert"},
		{"540", 540, "540"},
		{"G", 550, "G"},
		{"a", 545.6, "a"},
	}
	for _, tc := range cases {
		o := opts(1)
		o.Anchor = tc.id

		rep, err := memory.Run(alphabet.Parse("ACGT"), o)
		require.NoError(t, err, tc.id)
		assert.Equal(t, tc.want, rep.AnchorFrequency, tc.id)
		assert.Equal(t, tc.name, rep.Anchor, tc.id)
	}
}

func TestRun_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*memory.Options)
		want   error
		param  string
	}{
		{"growth one", func(o *memory.Options) { o.Growth = 1 }, memory.ErrBadGrowth, "growth"},
		{"growth below one", func(o *memory.Options) { o.Growth = 0.5 }, memory.ErrBadGrowth, "growth"},
		{"growth NaN", func(o *memory.Options) { o.Growth = math.NaN() }, memory.ErrBadGrowth, "growth"},
		{"layers zero", func(o *memory.Options) { o.Layers = 0 }, memory.ErrBadLayers, "n_layers"},
		{"layers overflow float", func(o *memory.Options) { o.Layers = 2000 }, memory.ErrBadLayers, "n_layers=2000"},
		{"layers max int", func(o *memory.Options) { o.Layers = math.MaxInt }, memory.ErrBadLayers, "n_layers"},
		{"layers beyond cap", func(o *memory.Options) { o.Growth, o.Layers = 1.0000001, harmonic.MaxCount + 1 }, memory.ErrBadLayers, "n_layers"},
		{"scale zero", func(o *memory.Options) { o.StackingScale = 0 }, memory.ErrBadScale, "stacking_scale"},
		{"scale negative", func(o *memory.Options) { o.StackingScale = -1 }, memory.ErrBadScale, "stacking_scale"},
		{"no checkpoints", func(o *memory.Options) { o.Checkpoints = nil }, memory.ErrNoCheckpoints, "checkpoints"},
		{"zero checkpoint", func(o *memory.Options) { o.Checkpoints = []int{4, 0} }, memory.ErrBadCheckpoint, "checkpoint"},
		{"step zero", func(o *memory.Options) { o.Step = 0 }, memory.ErrBadStep, "step"},
		{"epsilon zero", func(o *memory.Options) { o.Epsilon = 0 }, memory.ErrBadEpsilon, "epsilon"},
		{"unknown anchor", func(o *memory.Options) { o.Anchor = "nowhere" }, memory.ErrUnknownAnchor, "anchor"},
		{"symbol outside table", func(o *memory.Options) { o.Anchor = "Z" }, memory.ErrUnknownAnchor, "anchor"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := memory.DefaultOptions()
			tc.mutate(&o)

			require.ErrorIs(t, o.Validate(), tc.want)
			_, err := memory.Run(alphabet.Parse("ACGT"), o)
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.param)
		})
	}
}

// TestRun_LayerCapacity: the layer bound follows the anchor and the
// message blames the count, not the anchor.
func TestRun_LayerCapacity(t *testing.T) {
	limit := harmonic.MaxLayers(528, harmonic.Phi)

	o := opts(2)
	o.Layers = limit
	rep, err := memory.Run(alphabet.Parse("ACGTAC"), o)
	require.NoError(t, err)
	require.Len(t, rep.PrototypeLayers, limit)
	assert.False(t, math.IsInf(rep.PrototypeLayers[limit-1], 0))

	o.Layers = limit + 1
	_, err = memory.Run(alphabet.Parse("ACGTAC"), o)
	require.ErrorIs(t, err, memory.ErrBadLayers)
	assert.NotErrorIs(t, err, harmonic.ErrBadAnchor)
	assert.Contains(t, err.Error(), "n_layers")

	// A lower anchor leaves room for more layers.
	o.Anchor = "1"
	require.NoError(t, o.Validate())
}

// TestRun_ParameterSubstitution: other growth constants and scales keep
// every score finite and bounded and leave row counts untouched.
func TestRun_ParameterSubstitution(t *testing.T) {
	seq := alphabet.Parse("GATTACAGATTACACCGGTTAACGTTAGC")
	ref, err := memory.Run(seq, opts())
	require.NoError(t, err)

	for _, growth := range []float64{1.01, 1.5, harmonic.Phi, 2, 3} {
		for _, scale := range []float64{1e-3, 1, 10, 1e6} {
			o := opts()
			o.Growth, o.StackingScale = growth, scale

			rep, err := memory.Run(seq, o)
			require.NoError(t, err, "growth=%v scale=%v", growth, scale)
			require.Len(t, rep.Checkpoints, len(ref.Checkpoints))
			for i, cp := range rep.Checkpoints {
				assert.Equal(t, ref.Checkpoints[i].RowCount, cp.RowCount)
				assert.False(t, math.IsNaN(cp.Score) || math.IsInf(cp.Score, 0))
				assert.GreaterOrEqual(t, cp.Score, -1.0)
				assert.LessOrEqual(t, cp.Score, 1.0)
			}
		}
	}
}

func TestRun_CustomTable(t *testing.T) {
	tbl, err := alphabet.NewTable(
		map[alphabet.Symbol]float64{'H': 100, 'P': 140},
		map[alphabet.Pair]float64{{A: 'H', B: 'H'}: -2, {A: 'H', B: 'P'}: -0.5},
	)
	require.NoError(t, err)

	o := opts(2, 4)
	o.Table = tbl
	o.Anchor = "H"

	rep, err := memory.Run(alphabet.Parse("HPHHPPHH"), o)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rep.AnchorFrequency)
	require.Len(t, rep.Checkpoints, 2)
	assert.Equal(t, 7, rep.Checkpoints[0].RowCount)
	assert.Equal(t, 5, rep.Checkpoints[1].RowCount)
}

func TestReport_Best(t *testing.T) {
	rep := memory.Report{Checkpoints: []memory.CheckpointResult{
		{WindowLength: 1, RowCount: 4, Score: 0.2},
		{WindowLength: 2, RowCount: 3, Score: 0.7},
		{WindowLength: 3, RowCount: 2, Score: 0.7},
		{WindowLength: 9, RowCount: 0, Score: 0.9},
	}}

	best, ok := rep.Best()
	require.True(t, ok)
	assert.Equal(t, 2, best.WindowLength)
}
