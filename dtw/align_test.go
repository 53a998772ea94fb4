package dtw_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dtwalign/dtw"
)

var (
	scenarioTemplate = []float64{9, 7, 6, 5, 4, 1, 8, 11, 6, 3, 3, 1, 2}
	scenarioInput    = []float64{7, 7, 2, 9, 1, 1}
)

// TestAlign_EmptyInput verifies ErrEmptyInput for either empty sequence.
func TestAlign_EmptyInput(t *testing.T) {
	_, _, _, err := dtw.Align(nil, []float64{1, 2})
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty template should error")

	_, _, _, err = dtw.Align([]float64{1, 2}, []float64{})
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty input should error")
}

// TestAlign_SingleElement checks the 1×1 degenerate case.
func TestAlign_SingleElement(t *testing.T) {
	table, path, cost, err := dtw.Align([]float64{5}, []float64{3})
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{2}}, table.Values())
	assert.Equal(t, []dtw.Coord{{I: 0, J: 0}}, path)
	assert.Equal(t, 2.0, cost)
}

// TestAlign_Scenario checks the full table, path and cost of the reference scenario.
func TestAlign_Scenario(t *testing.T) {
	table, path, cost, err := dtw.Align(scenarioTemplate, scenarioInput)
	require.NoError(t, err)
	require.Equal(t, 6, table.Rows(), "rows follow the input length")
	require.Equal(t, 13, table.Cols(), "columns follow the template length")

	want := [][]float64{
		{2, 2, 3, 5, 8, 14, 15, 19, 20, 24, 28, 34, 39},
		{4, 2, 3, 5, 8, 14, 15, 19, 20, 24, 28, 34, 39},
		{11, 7, 6, 6, 7, 8, 14, 23, 23, 21, 22, 23, 23},
		{11, 9, 9, 10, 11, 15, 9, 11, 14, 20, 26, 30, 30},
		{19, 15, 14, 13, 13, 11, 16, 19, 16, 16, 18, 18, 19},
		{27, 21, 19, 17, 16, 11, 18, 26, 21, 18, 18, 18, 19},
	}
	if diff := cmp.Diff(want, table.Values()); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}

	wantPath := []dtw.Coord{
		{0, 0}, {0, 1}, {0, 2}, {1, 3}, {2, 4}, {2, 5}, {3, 6},
		{3, 7}, {3, 8}, {4, 9}, {4, 10}, {4, 11}, {5, 12},
	}
	if diff := cmp.Diff(wantPath, path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}

	last, err := table.At(5, 12)
	require.NoError(t, err)
	assert.Equal(t, last, cost, "cost must equal the bottom-right cell")
	assert.Equal(t, 19.0, cost)

	first, _ := table.At(0, 0)
	assert.Equal(t, 2.0, first, "table[0,0] = |7-9|")
	col0, _ := table.At(5, 0)
	assert.Equal(t, 2.0+2+7+0+8+8, col0, "column 0 is cumulative")

	assert.GreaterOrEqual(t, len(path), 13, "path is at least max(M,N) long")
	assert.LessOrEqual(t, len(path), 18, "path is at most M+N-1 long")
}

// TestAlign_IdenticalSequences expects zero cost and the main diagonal.
func TestAlign_IdenticalSequences(t *testing.T) {
	seq := []float64{3, -1, 4, 1, -5, 9, 2.5}
	_, path, cost, err := dtw.Align(seq, seq)
	require.NoError(t, err)

	assert.Equal(t, 0.0, cost)
	want := make([]dtw.Coord, len(seq))
	for k := range want {
		want[k] = dtw.Coord{I: k, J: k}
	}
	assert.Equal(t, want, path)
}

// TestAlign_TieBreak pins the diagonal > up > left preference.
func TestAlign_TieBreak(t *testing.T) {
	tests := []struct {
		name     string
		template []float64
		input    []float64
		wantPath []dtw.Coord
		wantCost float64
	}{
		{
			// every neighbour ties at zero: diagonal must win
			name:     "all equal prefers diagonal",
			template: []float64{1, 1, 1},
			input:    []float64{1, 1},
			wantPath: []dtw.Coord{{0, 0}, {0, 1}, {1, 2}},
			wantCost: 0,
		},
		{
			// at (2,2) up == left == 1 < diagonal == 2: up must win
			name:     "up beats left",
			template: []float64{0, 1, 0},
			input:    []float64{1, 0, 1},
			wantPath: []dtw.Coord{{0, 0}, {0, 1}, {1, 2}, {2, 2}},
			wantCost: 2,
		},
		{
			name:     "repeated sample stretches input",
			template: []float64{1, 2, 3},
			input:    []float64{1, 2, 2, 3},
			wantPath: []dtw.Coord{{0, 0}, {1, 1}, {2, 1}, {3, 2}},
			wantCost: 0,
		},
		{
			name:     "dropped sample stretches template",
			template: []float64{1, 2, 3, 4},
			input:    []float64{1, 3, 4},
			wantPath: []dtw.Coord{{0, 0}, {0, 1}, {1, 2}, {2, 3}},
			wantCost: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, path, cost, err := dtw.Align(tc.template, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPath, path)
			assert.Equal(t, tc.wantCost, cost)
		})
	}
}

// randomSeq returns n samples in [-10,10) from rng.
func randomSeq(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*20 - 10
	}
	return out
}

// TestAlign_Properties checks determinism, borders, path shape and cost
// agreement on random inputs.
func TestAlign_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		template := randomSeq(rng, 1+rng.Intn(20))
		input := randomSeq(rng, 1+rng.Intn(20))
		m, n := len(input), len(template)

		table, path, cost, err := dtw.Align(template, input)
		require.NoError(t, err)

		// determinism
		table2, path2, cost2, err := dtw.Align(template, input)
		require.NoError(t, err)
		assert.Equal(t, table.Values(), table2.Values())
		assert.Equal(t, path, path2)
		assert.Equal(t, cost, cost2)

		// borders
		v := table.Values()
		assert.Equal(t, math.Abs(input[0]-template[0]), v[0][0])
		for j := 1; j < n; j++ {
			assert.GreaterOrEqual(t, v[0][j], v[0][j-1], "row 0 non-decreasing")
		}
		for i := 1; i < m; i++ {
			assert.GreaterOrEqual(t, v[i][0], v[i-1][0], "column 0 non-decreasing")
		}

		// interior recurrence
		for i := 1; i < m; i++ {
			for j := 1; j < n; j++ {
				want := math.Abs(input[i]-template[j]) + math.Min(v[i-1][j], math.Min(v[i][j-1], v[i-1][j-1]))
				assert.Equal(t, want, v[i][j])
			}
		}

		// path shape
		require.NoError(t, dtw.ValidatePath(path, m, n))
		assert.GreaterOrEqual(t, len(path), max(m, n))
		assert.LessOrEqual(t, len(path), m+n-1)

		// cost agreement
		assert.Equal(t, v[m-1][n-1], cost)
		walked, err := dtw.PathCost(template, input, path)
		require.NoError(t, err)
		assert.InDelta(t, cost, walked, 1e-9)

		ref, err := dtw.ReferenceDistance(template, input)
		require.NoError(t, err)
		assert.InDelta(t, cost, ref, 1e-9, "classic formulation must agree")
	}
}
