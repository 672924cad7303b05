package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMCABCBlendsNormalizedScores(t *testing.T) {
	rows := []Row{
		{Key: "A", Attrs: map[string]float64{"x": 10, "y": 0}},
		{Key: "B", Attrs: map[string]float64{"x": 5, "y": 5}},
	}
	criteria := []Criterion{
		{Name: "x", Select: Attr("x"), Weight: 1},
		{Name: "y", Select: Attr("y"), Weight: 1},
	}

	out, err := ClassifyMCABC(rows, criteria, Attr("x"), 60, 20)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Scores: A = 0.5*(10/10) + 0.5*(0/5) = 0.5, B = 0.5*0.5 + 0.5*1 = 0.75.
	// B outranks A despite the lower raw x.
	assert.Equal(t, "B", out[0].Key)
	assert.InDelta(t, 0.75, out[0].Value, 1e-9)
	assert.Equal(t, ClassA, out[0].Class)
	assert.Equal(t, "A", out[1].Key)
	assert.InDelta(t, 0.5, out[1].Value, 1e-9)
	assert.Equal(t, ClassC, out[1].Class)
}

func TestClassifyMCABCRenormalizesWeights(t *testing.T) {
	rows := []Row{
		{Key: "A", Attrs: map[string]float64{"x": 10, "y": 1}},
		{Key: "B", Attrs: map[string]float64{"x": 4, "y": 8}},
		{Key: "C", Attrs: map[string]float64{"x": 2, "y": 2}},
	}
	scaled := []Criterion{
		{Name: "x", Select: Attr("x"), Weight: 6},
		{Name: "y", Select: Attr("y"), Weight: 2},
	}
	unit := []Criterion{
		{Name: "x", Select: Attr("x"), Weight: 0.75},
		{Name: "y", Select: Attr("y"), Weight: 0.25},
	}

	got, err := ClassifyMCABC(rows, scaled, Attr("x"), 70, 20)
	require.NoError(t, err)
	want, err := ClassifyMCABC(rows, unit, Attr("x"), 70, 20)
	require.NoError(t, err)

	// Only weight ratios matter.
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Key, got[i].Key)
		assert.InDelta(t, want[i].Value, got[i].Value, 1e-12)
		assert.Equal(t, want[i].Class, got[i].Class)
	}
}

func TestClassifyMCABCSkipsUnusableCriteria(t *testing.T) {
	rows := []Row{
		{Key: "A", Attrs: map[string]float64{"dead": 0, "y": 8}},
		{Key: "B", Attrs: map[string]float64{"dead": 0, "y": 2}},
	}
	criteria := []Criterion{
		{Name: "dead", Select: Attr("dead"), Weight: 0.5},   // max is zero
		{Name: "ignored", Select: Attr("y"), Weight: 0},     // weight is zero
		{Name: "y", Select: Attr("y"), Weight: 0.5},
	}

	out, err := ClassifyMCABC(rows, criteria, Attr("y"), 70, 20)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Only "y" qualifies, so its weight renormalizes to 1 and scores are
	// plain y/max(y).
	assert.Equal(t, "A", out[0].Key)
	assert.InDelta(t, 1.0, out[0].Value, 1e-9)
	assert.Equal(t, "B", out[1].Key)
	assert.InDelta(t, 0.25, out[1].Value, 1e-9)
}

func TestClassifyMCABCFallsBackWhenNoCriterionQualifies(t *testing.T) {
	rows := valueRows("big", 100.0, "small", 10.0)
	criteria := []Criterion{
		{Name: "value", Select: Attr("value"), Weight: 0},
	}

	out, err := ClassifyMCABC(rows, criteria, Attr("value"), 70, 20)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// The fallback scores rows on their raw value.
	assert.Equal(t, "big", out[0].Key)
	assert.InDelta(t, 100, out[0].Value, 1e-9)
	assert.Equal(t, "small", out[1].Key)
	assert.InDelta(t, 10, out[1].Value, 1e-9)
}

func TestClassifyMCABCPropagatesCutoffError(t *testing.T) {
	out, err := ClassifyMCABC(valueRows("a", 1.0), nil, Attr("value"), 0, 20)
	assert.Nil(t, out)

	var cutoffErr *InvalidCutoffError
	require.ErrorAs(t, err, &cutoffErr)
}
