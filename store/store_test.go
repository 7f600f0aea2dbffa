package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmrgraph/analysis"
	"github.com/katalvlaran/dmrgraph/builder"
	"github.com/katalvlaran/dmrgraph/export"
	"github.com/katalvlaran/dmrgraph/idmap"
	"github.com/katalvlaran/dmrgraph/registry"
	"github.com/katalvlaran/dmrgraph/store"
)

func exportRows(t *testing.T) []*export.Rows {
	t.Helper()
	recs := []builder.Record{
		{DMRRawID: 1, ClosestGene: "G1", AdditionalGenes: []string{"G2/e1"}},
		{DMRRawID: 2, ClosestGene: "G2", AdditionalGenes: []string{"G1"}},
		{DMRRawID: 3, ClosestGene: "G3"},
	}
	inputs := []analysis.Input{
		{Timepoint: analysis.Timepoint{Name: "P21", Offset: idmap.OffsetFor(0, 0)}, Records: recs},
		{Timepoint: analysis.Timepoint{Name: "P28", Offset: idmap.OffsetFor(1, 0)}, Records: recs},
	}
	results, err := analysis.RunAll(context.Background(), registry.New(), inputs, analysis.WithWorkers(2))
	require.NoError(t, err)

	out := make([]*export.Rows, len(results))
	for i, res := range results {
		out[i], err = export.BuildRows(res)
		require.NoError(t, err)
	}

	return out
}

func TestStore_SaveRun(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	runID, err := s.SaveRun(ctx, exportRows(t)...)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, runID)

	counts, err := s.Counts(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["timepoints"])
	assert.Equal(t, 6, counts["dmrs"])
	assert.Equal(t, 3, counts["genes"])
	assert.Equal(t, 6, counts["gene_flags"])
	assert.Equal(t, 4, counts["bicliques"])
	assert.Equal(t, 4, counts["dominating_set"])

	dom, err := s.DominatingSet(ctx, runID, "P28")
	require.NoError(t, err)
	assert.Equal(t, []int{10002, 10004}, dom)

	// A second run of the same rows gets its own ID and does not collide.
	second, err := s.SaveRun(ctx, exportRows(t)...)
	require.NoError(t, err)
	assert.NotEqual(t, runID, second)
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)

	_, err = s.SaveRun(ctx)
	assert.ErrorIs(t, err, store.ErrNoRows)

	require.NoError(t, s.Close())
	_, err = s.SaveRun(ctx, &export.Rows{})
	assert.ErrorIs(t, err, store.ErrClosed)
	assert.ErrorIs(t, s.Close(), store.ErrClosed)
}

func TestStore_DuplicateTimepointRollsBack(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	rows := exportRows(t)
	_, err = s.SaveRun(ctx, rows[0], rows[0])
	require.Error(t, err)

	// The failed transaction left nothing behind; the same timepoint saves cleanly.
	runID, err := s.SaveRun(ctx, rows[0])
	require.NoError(t, err)
	counts, err := s.Counts(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["timepoints"])
	assert.Equal(t, 3, counts["dmrs"])
}
