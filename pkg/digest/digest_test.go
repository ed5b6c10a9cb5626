package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clnrm/clnrm/pkg/digest"
)

func TestCanonicalize_KeyOrderInsensitive(t *testing.T) {
	a, err := digest.Canonicalize("b = 2\na = 1\n")
	require.NoError(t, err)
	b, err := digest.Canonicalize("a = 1\nb = 2\n")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCanonicalize_NumericNormalization(t *testing.T) {
	a, err := digest.Canonicalize("x = 3\n")
	require.NoError(t, err)
	b, err := digest.Canonicalize("x = 3.0\n")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScenarioFingerprint_Deterministic(t *testing.T) {
	scenario := "name = \"boots\"\nservice = \"app\"\n"
	svc := "image = \"alpine\"\n"

	f1, err := digest.ScenarioFingerprint(scenario, svc)
	require.NoError(t, err)
	f2, err := digest.ScenarioFingerprint(scenario, svc)
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
	assert.Len(t, f1, 64)
}

func TestScenarioFingerprint_ChangesWithInput(t *testing.T) {
	f1, err := digest.ScenarioFingerprint(`name = "a"`)
	require.NoError(t, err)
	f2, err := digest.ScenarioFingerprint(`name = "b"`)
	require.NoError(t, err)
	assert.NotEqual(t, f1, f2)
}

func TestScenarioFingerprint_ServiceOrderInsensitive(t *testing.T) {
	f1, err := digest.ScenarioFingerprint(`name = "a"`, `x = 1`, `y = 2`)
	require.NoError(t, err)
	f2, err := digest.ScenarioFingerprint(`name = "a"`, `y = 2`, `x = 1`)
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}
