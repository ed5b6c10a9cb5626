package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clnrm/clnrm/pkg/clnrmerr"
	"github.com/clnrm/clnrm/pkg/model"
	"github.com/clnrm/clnrm/pkg/test"
	"github.com/clnrm/clnrm/pkg/testutil"
)

const validDoc = `
[meta]
name = "smoke"

[service.app]
plugin = "generic_container"
image = "alpine:latest"

[[scenario]]
name = "boots"
service = "app"
command = ["/bin/true"]
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := model.Load(validDoc, test.Logger(t, 0))
	require.NoError(t, err)
	assert.Equal(t, "smoke", cfg.Meta.Name)
	assert.True(t, cfg.Expect.Graph.Acyclic, "acyclic defaults true when unset")
	assert.Len(t, cfg.Scenario, 1)
}

func TestLoad_OrphanServiceReference(t *testing.T) {
	doc := `
[[scenario]]
name = "boots"
service = "missing"
command = ["/bin/true"]
`
	_, err := model.Load(doc, nil)
	require.Error(t, err)
	kind, ok := clnrmerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, clnrmerr.KindConfig, kind)
}

func TestLoad_AcyclicExplicitFalseIsHonored(t *testing.T) {
	doc := validDoc + "\n[expect.graph]\nacyclic = false\n"
	cfg, err := model.Load(doc, nil)
	require.NoError(t, err)
	assert.False(t, cfg.Expect.Graph.Acyclic)
}

func TestLoad_RejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{
			name: "unrecognized service plugin",
			doc: `
[service.app]
plugin = "not_a_real_kind"
image = "alpine:latest"
`,
		},
		{
			name: "syntax error",
			doc:  "this is not [valid toml",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := model.Load(tc.doc, nil)
			testutil.AssertErrorIf(t, true, err)
			testutil.AssertNilIf(t, true, cfg)
		})
	}
}

func TestLoad_LimitsQuantitiesParse(t *testing.T) {
	doc := validDoc + "\n[limits]\ncpu = \"500m\"\nmemory = \"256Mi\"\n"
	cfg, err := model.Load(doc, nil)
	require.NoError(t, err)
	require.NotNil(t, cfg.Limits)

	cpu, err := cfg.Limits.ParsedCPU()
	require.NoError(t, err)
	assert.Equal(t, int64(500), cpu.MilliValue())

	mem, err := cfg.Limits.ParsedMemory()
	require.NoError(t, err)
	assert.Equal(t, int64(256*1024*1024), mem.Value())
}

func TestLoad_LimitsMalformedQuantity(t *testing.T) {
	doc := validDoc + "\n[limits]\ncpu = \"not-a-quantity\"\n"
	_, err := model.Load(doc, nil)
	require.Error(t, err)
	kind, ok := clnrmerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, clnrmerr.KindConfig, kind)
}
