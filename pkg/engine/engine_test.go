package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clnrm/clnrm/pkg/backend/fake"
	"github.com/clnrm/clnrm/pkg/cache"
	"github.com/clnrm/clnrm/pkg/engine"
)

const sampleTemplate = `
[meta]
name = "smoke"

[service.app]
plugin = "generic_container"
image = "{{ image }}"

[[scenario]]
name = "boots"
service = "app"
command = ["/bin/true"]
`

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)
	e, err := engine.New(fake.New(), engine.WithCache(store))
	require.NoError(t, err)
	return e
}

func writeTemplate(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.tera")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRender_SubstitutesDefaultVariable(t *testing.T) {
	e := newEngine(t)
	path := writeTemplate(t, sampleTemplate)

	out, err := e.Render(path, nil)
	require.NoError(t, err)
	assert.Contains(t, out, `image = "registry/clnrm:latest"`)
}

func TestRender_AuthoringOverrideWins(t *testing.T) {
	e := newEngine(t)
	path := writeTemplate(t, sampleTemplate)

	out, err := e.Render(path, map[string]string{"image": "custom:tag"})
	require.NoError(t, err)
	assert.Contains(t, out, `image = "custom:tag"`)
}

func TestValidate_RendersAndLoadsWithoutExecuting(t *testing.T) {
	e := newEngine(t)
	path := writeTemplate(t, sampleTemplate)

	lr, err := e.Validate([]string{path})
	require.NoError(t, err)
	require.Len(t, lr.Configs, 1)
	assert.Equal(t, "smoke", lr.Configs[0].Meta.Name)
}

func TestRun_ExecutesScenarioAgainstFakeBackend(t *testing.T) {
	e := newEngine(t)
	path := writeTemplate(t, sampleTemplate)

	rr, err := e.Run(context.Background(), []string{path}, 1, true)
	require.NoError(t, err)
	require.Len(t, rr.Scenarios, 1)
	assert.Equal(t, "boots", rr.Scenarios[0].Name)
}

func TestDigest_StableAcrossRepeatedCalls(t *testing.T) {
	e := newEngine(t)
	path := writeTemplate(t, sampleTemplate)

	d1, err := e.Digest(path)
	require.NoError(t, err)
	d2, err := e.Digest(path)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)
}

func TestFmt_IdempotentAndAlphabeticalKeys(t *testing.T) {
	e := newEngine(t)
	path := filepath.Join(t.TempDir(), "rendered.toml")
	require.NoError(t, os.WriteFile(path, []byte("b = 1\na = 2\n"), 0o644))

	fr1, err := e.Fmt([]string{path}, false)
	require.NoError(t, err)
	assert.Contains(t, fr1.Changed, path)

	fr2, err := e.Fmt([]string{path}, false)
	require.NoError(t, err)
	assert.Empty(t, fr2.Changed, "second pass should be a no-op once canonicalized")
}

func TestFmt_CheckOnlyDoesNotWrite(t *testing.T) {
	e := newEngine(t)
	path := filepath.Join(t.TempDir(), "rendered.toml")
	original := []byte("b = 1\na = 2\n")
	require.NoError(t, os.WriteFile(path, original, 0o644))

	fr, err := e.Fmt([]string{path}, true)
	require.NoError(t, err)
	assert.Contains(t, fr.Changed, path)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, onDisk, "check-only must not rewrite the file")
}
