// Where: internal/domain/clientbuild/environment_test.go
// What: Tests for environment merging and application.
// Why: Precedence and logging of variables are user-visible.
package clientbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironmentCustomWins(t *testing.T) {
	provider := map[string]string{"API_URL": "https://provider", "STAGE": "dev"}
	custom := map[string]string{"API_URL": "https://custom", "PUBLIC_PATH": "/app"}

	env, verbose := ResolveEnvironment(provider, custom, false, false)

	assert.Equal(t, map[string]string{
		"API_URL":     "https://custom",
		"STAGE":       "dev",
		"PUBLIC_PATH": "/app",
	}, env)
	assert.False(t, verbose)
	assert.Equal(t, "https://provider", provider["API_URL"], "inputs must not be mutated")
}

func TestResolveEnvironmentVerbose(t *testing.T) {
	cases := []struct {
		name   string
		option bool
		config bool
		want   bool
	}{
		{"neither", false, false, false},
		{"option", true, false, true},
		{"config", false, true, true},
		{"both", true, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, verbose := ResolveEnvironment(nil, nil, tc.option, tc.config)
			assert.Equal(t, tc.want, verbose)
		})
	}
}

func TestResolveEnvironmentNilMaps(t *testing.T) {
	env, _ := ResolveEnvironment(nil, nil, false, false)
	assert.Empty(t, env)
}

func TestApplyEnvironmentSkipsEmpty(t *testing.T) {
	logger := &recordingLogger{}
	store := newMapStore()

	require.NoError(t, ApplyEnvironment(map[string]string{}, true, logger, store))

	assert.Equal(t, []string{MsgSettingEnvironment, MsgNoEnvironment}, logger.lines)
	assert.Empty(t, store.values)
}

func TestApplyEnvironmentVerboseLogsEachVariable(t *testing.T) {
	logger := &recordingLogger{}
	store := newMapStore()
	env := map[string]string{"HELLO_WORLD": "hello world", "FOO_BAR": "foo bar"}

	require.NoError(t, ApplyEnvironment(env, true, logger, store))

	assert.Equal(t, []string{
		MsgSettingEnvironment,
		"Setting FOO_BAR to foo bar",
		"Setting HELLO_WORLD to hello world",
	}, logger.lines)
	assert.Equal(t, env, store.values)
}

func TestApplyEnvironmentQuietStillWrites(t *testing.T) {
	logger := &recordingLogger{}
	store := newMapStore()

	require.NoError(t, ApplyEnvironment(map[string]string{"HELLO_WORLD": "hello world"}, false, logger, store))

	assert.Equal(t, []string{MsgSettingEnvironment}, logger.lines)
	assert.Equal(t, "hello world", store.values["HELLO_WORLD"])
}

func TestApplyEnvironmentStoreError(t *testing.T) {
	store := newMapStore()
	store.failKey = "B"

	err := ApplyEnvironment(map[string]string{"A": "1", "B": "2", "C": "3"}, false, &recordingLogger{}, store)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply environment B")
	assert.Equal(t, map[string]string{"A": "1"}, store.values)
}

func TestApplyEnvironmentNilStore(t *testing.T) {
	err := ApplyEnvironment(map[string]string{"A": "1"}, false, &recordingLogger{}, nil)
	require.ErrorIs(t, err, errEnvStoreNil)
}
