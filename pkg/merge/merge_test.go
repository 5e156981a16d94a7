package merge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/initstate/pkg/errors"
	"github.com/matzehuels/initstate/pkg/io"
	"github.com/matzehuels/initstate/pkg/panel"
	"github.com/matzehuels/initstate/pkg/report"
)

func seqA() panel.Sequence {
	return panel.Sequence{
		{ID: "ReducedDimensionPlot1", Type: "ReducedDimensionPlot", Width: 6},
		{ID: "FeatureAssayPlot1", Type: "FeatureAssayPlot", Width: 6, SelectionSource: "ReducedDimensionPlot1"},
	}
}

func seqB() panel.Sequence {
	return panel.Sequence{
		{ID: "ColumnDataTable1", Type: "ColumnDataTable", Width: 12},
		{ID: "ReducedDimensionPlot1", Type: "ReducedDimensionPlot", Width: 6},
	}
}

func ids(seq panel.Sequence) []string { return seq.IDs() }

func TestMerge_OrderPreserved(t *testing.T) {
	opts := DefaultOptions()
	opts.Deduplicate = false

	got, err := Merge([]panel.Sequence{seqA(), seqB()}, opts)
	require.NoError(t, err)

	want := append(seqA(), seqB()...)
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, panel.Equal(got[i], want[i]), "panel %d = %+v, want %+v", i, got[i], want[i])
	}
}

func TestMerge_Dedup(t *testing.T) {
	var rep report.Collector
	opts := DefaultOptions()
	opts.Reporter = &rep

	got, err := Merge([]panel.Sequence{seqA(), seqB()}, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"ReducedDimensionPlot1", "FeatureAssayPlot1", "ColumnDataTable1"}, ids(got))

	var messages []string
	for _, d := range rep.Diagnostics() {
		messages = append(messages, d.Message)
	}
	assert.Contains(t, messages, "input 1: 2 panels")
	assert.Contains(t, messages, "input 2: 2 panels")
	assert.Contains(t, messages, "removed 1 duplicate panels")
	assert.Contains(t, messages, "merged 2 inputs into 3 panels")
}

func TestMerge_Idempotent(t *testing.T) {
	a := seqA()
	got, err := Merge([]panel.Sequence{a, a}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, got, len(a))
	for i := range a {
		assert.True(t, panel.Equal(got[i], a[i]))
	}
}

func TestMerge_DuplicateIDsKept(t *testing.T) {
	var rep report.Collector
	opts := DefaultOptions()
	opts.Reporter = &rep

	a := panel.Sequence{{ID: "plot", Type: "ReducedDimensionPlot", Width: 6}}
	b := panel.Sequence{{ID: "plot", Type: "ReducedDimensionPlot", Width: 4}}

	got, err := Merge([]panel.Sequence{a, b}, opts)
	require.NoError(t, err)
	assert.Len(t, got, 2, "panels sharing only an id must both be kept")

	warns := rep.WithCode(errors.ErrCodeDuplicateID)
	require.Len(t, warns, 1)
	assert.Equal(t, "plot", warns[0].Panel)
}

func TestMerge_UnrecognizedType(t *testing.T) {
	bad := panel.Sequence{
		{ID: "x", Type: "NotARealPanel", Width: 4},
		{Type: "AlsoNotReal", Width: 4},
	}

	got, err := Merge([]panel.Sequence{seqA(), bad}, DefaultOptions())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, errors.ErrCodeUnrecognizedType))

	var pe *errors.PanelError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, []string{"x", "AlsoNotReal"}, pe.Panels)
	assert.Contains(t, pe.Detail, "NotARealPanel")
}

func TestMerge_ExtraTypes(t *testing.T) {
	opts := DefaultOptions()
	opts.ExtraTypes = []string{"NotARealPanel"}

	got, err := Merge([]panel.Sequence{{{ID: "x", Type: "NotARealPanel", Width: 4}}}, opts)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMerge_CustomRegistry(t *testing.T) {
	opts := DefaultOptions()
	opts.Registry = panel.DefaultRegistry().With(map[string]string{"MyPlot": "#abcdef"})

	_, err := Merge([]panel.Sequence{{{Type: "MyPlot", Width: 4}}}, opts)
	assert.NoError(t, err)
}

func TestMerge_InvalidInput(t *testing.T) {
	got, err := Merge([]panel.Sequence{seqA(), nil}, DefaultOptions())
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "err = %v", err)
}

func TestMerge_EmptyInputs(t *testing.T) {
	got, err := Merge(nil, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Merge([]panel.Sequence{{}, seqA()}, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	a := panel.Sequence{{ID: "a", Type: "RowDataTable", Width: 4, Params: map[string]any{"k": "v"}}}
	got, err := Merge([]panel.Sequence{a}, DefaultOptions())
	require.NoError(t, err)

	got[0].Params["k"] = "changed"
	got[0].ID = "changed"
	assert.Equal(t, "v", a[0].Params["k"])
	assert.Equal(t, "a", a[0].ID)
}

func TestMerge_UnnamedDuplicates(t *testing.T) {
	a := panel.Sequence{{Type: "ReducedDimensionPlot", Width: 4}}
	got, err := Merge([]panel.Sequence{a, a}, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, got, 1, "identical unnamed panels are duplicates")
}

func TestDeduplicate(t *testing.T) {
	seq := panel.Sequence{
		{ID: "a", Type: "T", Width: 1},
		{ID: "a", Type: "T", Width: 1},
		{ID: "b", Type: "T", Width: 1},
		{ID: "a", Type: "T", Width: 1, SelectionSource: "b"},
		{ID: "b", Type: "T", Width: 1},
	}
	out, removed := Deduplicate(seq)
	assert.Equal(t, 2, removed)
	require.Len(t, out, 3)
	assert.Equal(t, "b", out[2].SelectionSource)
}

func TestMerge_DedupAcrossFormats(t *testing.T) {
	fromJSON, err := io.ReadJSON(strings.NewReader(
		`[{"id": "p1", "type": "ReducedDimensionPlot", "width": 6, "params": {"point_size": 1}}]`))
	require.NoError(t, err)
	fromYAML, err := io.ReadYAML(strings.NewReader(
		"- id: p1\n  type: ReducedDimensionPlot\n  width: 6\n  params:\n    point_size: 1\n"))
	require.NoError(t, err)

	got, err := Merge([]panel.Sequence{fromJSON, fromYAML}, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, got, 1, "the same panel read from JSON and YAML is a duplicate")
}
