// Where: internal/infra/build/spawner_test.go
// What: Tests for the os/exec backed spawner.
// Why: Exercise real pipes, exit codes and working directories.
package build

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/poruru/build-client/internal/domain/clientbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecSpawnerStreamsAndFails(t *testing.T) {
	requireShell(t)
	logger := &recordingLogger{}
	spec := clientbuild.NewBuildSpec("sh", []string{"-c", "echo compiled; echo boom 1>&2; exit 3"}, "")

	err := NewRunner(ExecSpawner{}, logger, nil).Run(spec)

	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, 3, buildErr.ExitCode)
	assert.Equal(t, "boom", err.Error())
	assert.Contains(t, logger.Lines(), "compiled")
	assert.Contains(t, logger.Lines(), "boom")
}

func TestExecSpawnerSucceeds(t *testing.T) {
	requireShell(t)
	logger := &recordingLogger{}

	err := NewRunner(ExecSpawner{}, logger, nil).Run(clientbuild.NewBuildSpec("sh", []string{"-c", "echo done"}, ""))

	require.NoError(t, err)
	assert.Equal(t, []string{"done"}, logger.Lines())
}

func TestExecSpawnerUsesCwd(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	logger := &recordingLogger{}

	err := NewRunner(ExecSpawner{}, logger, nil).Run(clientbuild.NewBuildSpec("sh", []string{"-c", "pwd -P"}, dir))
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{want}, logger.Lines())
}

func TestExecSpawnerPassesEnv(t *testing.T) {
	requireShell(t)
	logger := &recordingLogger{}
	spawner := ExecSpawner{Env: []string{"BUILD_CLIENT_TEST=from-env"}}

	err := NewRunner(spawner, logger, nil).Run(clientbuild.NewBuildSpec("sh", []string{"-c", `echo "$BUILD_CLIENT_TEST"`}, ""))

	require.NoError(t, err)
	assert.Equal(t, []string{"from-env"}, logger.Lines())
}

func TestExecSpawnerMissingExecutable(t *testing.T) {
	logger := &recordingLogger{}

	err := NewRunner(ExecSpawner{}, logger, nil).
		Run(clientbuild.NewBuildSpec("build-client-missing-binary", []string{"build"}, ""))

	var spawnErr *SpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Empty(t, logger.Lines())
}
