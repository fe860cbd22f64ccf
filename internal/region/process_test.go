package region

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/timber-cli/internal/config"
	"github.com/sells-group/timber-cli/internal/model"
	"github.com/sells-group/timber-cli/internal/store"
)

func demoConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Data: config.DataConfig{
			RawDir:       filepath.Join(t.TempDir(), "raw"),
			ProcessedDir: filepath.Join(t.TempDir(), "processed"),
		},
		Pipeline: config.PipelineConfig{DiscountRate: 0.05, MerchantableAge: 15},
	}
}

func TestProcessSouthDemo(t *testing.T) {
	res, err := ProcessSouth(context.Background(), Options{Config: demoConfig(t), Demo: true})
	require.NoError(t, err)

	assert.Equal(t, model.RegionSouth, res.Region)
	assert.NotEmpty(t, res.Rows)

	s := res.Summary
	assert.Equal(t, s.InputRows, len(res.Rows))
	assert.Equal(t, s.InputRows, s.Matched+s.Fallback+s.Unpriced)
	assert.Positive(t, s.Matched)

	data, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "loblolly pine")
}

func TestProcessGreatLakesDemo(t *testing.T) {
	res, err := ProcessGreatLakes(context.Background(), Options{Config: demoConfig(t), Demo: true})
	require.NoError(t, err)

	assert.Equal(t, model.RegionGreatLakes, res.Region)
	assert.NotEmpty(t, res.Rows)
	assert.Equal(t, res.Summary.InputRows, res.Summary.Matched+res.Summary.Fallback+res.Summary.Unpriced)

	// No pre-merchantable tier in the Great Lakes pipeline.
	for _, r := range res.Rows {
		assert.NotEqual(t, "", r.SizeClass)
	}
}

func TestProcessMissingSourceFatal(t *testing.T) {
	_, err := ProcessSouth(context.Background(), Options{Config: demoConfig(t)})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrSourceFileMissing)
}

func TestProcessDemoIdempotent(t *testing.T) {
	cfg := demoConfig(t)
	first, err := ProcessSouth(context.Background(), Options{Config: cfg, Demo: true})
	require.NoError(t, err)
	firstBytes, err := os.ReadFile(first.OutputPath)
	require.NoError(t, err)

	second, err := ProcessSouth(context.Background(), Options{Config: cfg, Demo: true})
	require.NoError(t, err)
	secondBytes, err := os.ReadFile(second.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, firstBytes, secondBytes)
	assert.Equal(t, first.Rows, second.Rows)
}

func TestProcessRecordsRun(t *testing.T) {
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.Migrate(context.Background()))

	res, err := ProcessSouth(context.Background(), Options{Config: demoConfig(t), Store: st, Demo: true})
	require.NoError(t, err)
	require.NotEmpty(t, res.RunID)

	runs, err := st.ListRuns(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, model.RunStatusCompleted, runs[0].Status)
	assert.Equal(t, res.Summary.InputRows, runs[0].InputRows)

	n, err := st.ValuationCount(context.Background(), model.RegionSouth)
	require.NoError(t, err)
	assert.Equal(t, len(res.Rows), n)
}

func TestProcessRecordsFailure(t *testing.T) {
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.Migrate(context.Background()))

	_, err = ProcessSouth(context.Background(), Options{Config: demoConfig(t), Store: st})
	require.Error(t, err)

	runs, lerr := st.ListRuns(context.Background(), 5)
	require.NoError(t, lerr)
	require.Len(t, runs, 1)
	assert.Equal(t, model.RunStatusFailed, runs[0].Status)
	assert.NotEmpty(t, runs[0].Error)
}
