package vars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clnrm/clnrm/pkg/vars"
)

func TestResolve_DefaultsOnly(t *testing.T) {
	resolved := vars.Resolve(nil, nil, nil)
	assert.Equal(t, "clnrm", resolved["svc"])
	assert.Equal(t, "ci", resolved["env"])
	assert.Equal(t, "http://localhost:4318", resolved["endpoint"])
	assert.Equal(t, "otlp", resolved["exporter"])
	assert.Equal(t, "", resolved["token"])
}

func TestResolve_EnvOverridesDefault(t *testing.T) {
	env := vars.EnvSnapshot{"SERVICE_NAME": "from-env"}
	resolved := vars.Resolve(nil, env, nil)
	assert.Equal(t, "from-env", resolved["svc"])
}

func TestResolve_AuthoringOverridesEnv(t *testing.T) {
	env := vars.EnvSnapshot{"SERVICE_NAME": "from-env"}
	authoring := map[string]string{"svc": "from-authoring"}
	resolved := vars.Resolve(authoring, env, nil)
	assert.Equal(t, "from-authoring", resolved["svc"])
}

func TestResolve_PassesThroughUnrecognizedKeys(t *testing.T) {
	authoring := map[string]string{"custom_thing": "value"}
	resolved := vars.Resolve(authoring, nil, nil)
	assert.Equal(t, "value", resolved["custom_thing"])
}

func TestResolve_RenderComposition(t *testing.T) {
	// render("{{ k }}", resolve({k: v}, {}, {})) = v, for any canonical key.
	for _, key := range vars.Recognized() {
		authoring := map[string]string{string(key): "sentinel-value"}
		resolved := vars.Resolve(authoring, nil, nil)
		require.Equal(t, "sentinel-value", resolved[string(key)], "key %s", key)
	}
}

func TestEnvName_Table(t *testing.T) {
	name, ok := vars.EnvName(vars.Endpoint)
	require.True(t, ok)
	assert.Equal(t, "OTEL_ENDPOINT", name)

	_, ok = vars.EnvName(vars.Var("nonexistent"))
	assert.False(t, ok)
}
