package dtw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dtwalign/dtw"
)

// TestDTW_EmptyInput verifies that DTW returns ErrEmptyInput
// when either input sequence is empty.
func TestDTW_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, _, err := dtw.DTW([]float64{}, []float64{1, 2, 3}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first sequence should error")

	_, _, err = dtw.DTW([]float64{1, 2, 3}, []float64{}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second sequence should error")
}

// TestDTW_BadMemoryMode ensures an unknown mode triggers ErrBadInput.
func TestDTW_BadMemoryMode(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.MemoryMode(7)

	_, _, err := dtw.DTW([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput, "unknown MemoryMode must error ErrBadInput")
}

// TestDTW_PathNeedsMatrix ensures ReturnPath=true with TwoRows errors.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.TwoRows

	_, _, err := dtw.DTW([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix, "ReturnPath without FullMatrix must error ErrPathNeedsMatrix")
}

// TestDTW_BasicDistance verifies that identical sequences have zero distance
// and no path is returned by default.
func TestDTW_BasicDistance(t *testing.T) {
	a := []float64{0, 1, 2}
	opts := dtw.DefaultOptions()

	dist, path, err := dtw.DTW(a, a, &opts)
	assert.NoError(t, err, "identical sequences should not error")
	assert.Equal(t, 0.0, dist, "identical sequences must have zero distance")
	assert.Nil(t, path, "default ReturnPath=false should yield nil path")
}

// TestDTW_NilOptions behaves like DefaultOptions.
func TestDTW_NilOptions(t *testing.T) {
	dist, path, err := dtw.DTW([]float64{1, 2, 3, 4}, []float64{1, 3, 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist)
	assert.Nil(t, path)
}

// TestDTW_PathMatchesAlign checks that FullMatrix+ReturnPath reproduces Align.
func TestDTW_PathMatchesAlign(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW(scenarioTemplate, scenarioInput, &opts)
	require.NoError(t, err)

	_, wantPath, wantCost, err := dtw.Align(scenarioTemplate, scenarioInput)
	require.NoError(t, err)
	assert.Equal(t, wantCost, dist)
	assert.Equal(t, wantPath, path)
}

// TestDTW_TwoRowsDistanceOnly confirms TwoRows matches FullMatrix distance
// and does not return a path.
func TestDTW_TwoRowsDistanceOnly(t *testing.T) {
	cases := [][2][]float64{
		{{0, 1, 2, 3}, {0, 1, 1, 2, 3}},
		{{5, 6, 7}, {5, 7}},
		{{4}, {1, 2, 3}},
		{{1, 2, 3}, {4}},
		{scenarioTemplate, scenarioInput},
	}
	for _, c := range cases {
		refOpts := dtw.DefaultOptions()
		refDist, _, err := dtw.DTW(c[0], c[1], &refOpts)
		require.NoError(t, err)

		opts := dtw.DefaultOptions()
		opts.MemoryMode = dtw.TwoRows
		dist, path, err := dtw.DTW(c[0], c[1], &opts)
		assert.NoError(t, err)
		assert.Equal(t, refDist, dist, "TwoRows must match FullMatrix distance")
		assert.Nil(t, path, "TwoRows should not return a path")

		short, err := dtw.Distance(c[0], c[1])
		assert.NoError(t, err)
		assert.Equal(t, refDist, short)
	}
}

// TestReferenceDistance_Agrees cross-checks the classic formulation.
func TestReferenceDistance_Agrees(t *testing.T) {
	ref, err := dtw.ReferenceDistance(scenarioTemplate, scenarioInput)
	require.NoError(t, err)
	assert.Equal(t, 19.0, ref)

	_, err = dtw.ReferenceDistance(nil, []float64{1})
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)
}

// TestMemoryMode_String covers the log-friendly names.
func TestMemoryMode_String(t *testing.T) {
	assert.Equal(t, "FullMatrix", dtw.FullMatrix.String())
	assert.Equal(t, "TwoRows", dtw.TwoRows.String())
	assert.Equal(t, "MemoryMode(?)", dtw.MemoryMode(9).String())
}
