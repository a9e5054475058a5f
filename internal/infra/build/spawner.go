// Where: internal/infra/build/spawner.go
// What: Process spawning for client builds.
// Why: The runner observes output streams and exit codes through an interface tests can fake.
package build

import (
	"errors"
	"io"
	"os/exec"

	"github.com/poruru/build-client/internal/domain/clientbuild"
)

// Process is a started build process. Both streams must be drained before
// Wait is called.
type Process interface {
	Stdout() io.Reader
	Stderr() io.Reader
	Wait() (exitCode int, err error)
}

// Spawner starts the process described by a BuildSpec.
type Spawner interface {
	Spawn(spec clientbuild.BuildSpec) (Process, error)
}

// ExecSpawner is a concrete implementation of Spawner using os/exec.
// A nil Env inherits the current process environment.
type ExecSpawner struct {
	Env []string
}

func (s ExecSpawner) Spawn(spec clientbuild.BuildSpec) (Process, error) {
	cmd := exec.Command(spec.Executable(), spec.Args()...)
	if cwd := spec.Cwd(); cwd != "" {
		cmd.Dir = cwd
	}
	cmd.Env = s.Env

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd, stdout: stdout, stderr: stderr}, nil
}

type execProcess struct {
	cmd    *exec.Cmd
	stdout io.Reader
	stderr io.Reader
}

func (p *execProcess) Stdout() io.Reader {
	return p.stdout
}

func (p *execProcess) Stderr() io.Reader {
	return p.stderr
}

func (p *execProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
