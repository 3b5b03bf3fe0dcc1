package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(generatedRows.WithLabelValues("pins"))
	Generated("pins", 12)
	assert.Equal(t, before+12, testutil.ToFloat64(generatedRows.WithLabelValues("pins")))

	Loaded("users", ResultCreated)
	Loaded("users", ResultCreated)
	Loaded("users", ResultExisting)
	assert.GreaterOrEqual(t, testutil.ToFloat64(loadRows.WithLabelValues("users", ResultCreated)), 2.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(loadRows.WithLabelValues("users", ResultExisting)), 1.0)
}

func TestWriteTextfile(t *testing.T) {
	require.NoError(t, WriteTextfile(""))

	Generated("users", 1)
	path := filepath.Join(t.TempDir(), "pinseed.prom")
	require.NoError(t, WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `pinseed_generated_rows_total{entity="users"}`)
}
