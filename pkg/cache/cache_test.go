package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clnrm/clnrm/pkg/cache"
)

func TestShouldExecute_MissIsTrue(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	assert.True(t, store.ShouldExecute("abc123", false))
}

func TestShouldExecute_PassIsSkipped(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put("abc123", cache.Entry{Verdict: cache.VerdictPass}))
	assert.False(t, store.ShouldExecute("abc123", false))
}

func TestShouldExecute_FailIsRerun(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put("abc123", cache.Entry{Verdict: cache.VerdictFail}))
	assert.True(t, store.ShouldExecute("abc123", false))
}

func TestShouldExecute_ForceAlwaysRuns(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put("abc123", cache.Entry{Verdict: cache.VerdictPass}))
	assert.True(t, store.ShouldExecute("abc123", true))
}

func TestPut_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	store, err := cache.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Put("digest-1", cache.Entry{Verdict: cache.VerdictPass, ReportPath: "report.json"}))

	reopened, err := cache.Open(path)
	require.NoError(t, err)
	entry, ok := reopened.Get("digest-1")
	require.True(t, ok)
	assert.Equal(t, "report.json", entry.ReportPath)
}
