// Where: internal/infra/build/runner.go
// What: Runs one client build process and maps its termination to an outcome.
// Why: Stream build output into the host log and keep the last stderr chunk as the failure reason.
package build

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/poruru/build-client/internal/domain/clientbuild"
	"github.com/poruru/build-client/internal/ports"
	"golang.org/x/sync/errgroup"
)

const chunkSize = 32 * 1024

// Runner spawns build processes and forwards their output to a logger.
type Runner struct {
	spawner Spawner
	logger  ports.Logger
	errs    ports.ErrorFactory
}

// NewRunner returns a Runner. A nil errs uses clientbuild.NewError.
func NewRunner(spawner Spawner, logger ports.Logger, errs ports.ErrorFactory) *Runner {
	if errs == nil {
		errs = ports.ErrorFunc(clientbuild.NewError)
	}
	return &Runner{spawner: spawner, logger: logger, errs: errs}
}

// Run spawns spec once and waits for it to close. There is no timeout.
// It returns nil on exit code 0 and a *BuildError otherwise.
func (r *Runner) Run(spec clientbuild.BuildSpec) error {
	if r.spawner == nil {
		return errSpawnerNil
	}
	if r.logger == nil {
		return errLoggerNil
	}

	inv := &invocation{logger: r.logger, errs: r.errs, executable: spec.Executable()}

	proc, err := r.spawner.Spawn(spec)
	if err != nil {
		inv.fail(err)
		return inv.close(-1)
	}

	var group errgroup.Group
	group.Go(func() error { return pump(proc.Stdout(), inv.stdout) })
	group.Go(func() error { return pump(proc.Stderr(), inv.stderr) })
	if err := group.Wait(); err != nil {
		inv.fail(err)
	}

	code, err := proc.Wait()
	if err != nil {
		inv.fail(err)
	}
	return inv.close(code)
}

// invocation owns the state of a single Run call. lastErr is written by the
// stream and spawn handlers and read once by close.
type invocation struct {
	mu         sync.Mutex
	logger     ports.Logger
	errs       ports.ErrorFactory
	executable string
	lastErr    error
}

func (i *invocation) stdout(chunk string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.logger.Log(chunk)
}

func (i *invocation) stderr(chunk string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.logger.Log(chunk)
	i.lastErr = i.errs.Error(chunk)
}

func (i *invocation) fail(err error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.lastErr = &SpawnError{Executable: i.executable, Err: err}
}

func (i *invocation) close(code int) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if code == 0 {
		return nil
	}
	return &BuildError{ExitCode: code, Cause: i.lastErr}
}

// pump forwards each chunk read from r, trimmed, to emit until EOF. After a
// read error the rest of r is discarded so the child never blocks on a full
// pipe.
func pump(r io.Reader, emit func(string)) error {
	if r == nil {
		return nil
	}
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			emit(strings.TrimSpace(string(buf[:n])))
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			_, _ = io.Copy(io.Discard, r)
			return fmt.Errorf("read output: %w", err)
		}
	}
}
