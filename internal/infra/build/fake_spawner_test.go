package build

import (
	"io"
	"strings"
	"sync"

	"github.com/poruru/build-client/internal/domain/clientbuild"
)

type fakeProcess struct {
	stdout   io.Reader
	stderr   io.Reader
	exitCode int
	waitErr  error
}

func (p *fakeProcess) Stdout() io.Reader { return p.stdout }
func (p *fakeProcess) Stderr() io.Reader { return p.stderr }
func (p *fakeProcess) Wait() (int, error) {
	return p.exitCode, p.waitErr
}

type fakeSpawner struct {
	process  *fakeProcess
	spawnErr error
	calls    int
	spec     clientbuild.BuildSpec
}

func (s *fakeSpawner) Spawn(spec clientbuild.BuildSpec) (Process, error) {
	s.calls++
	s.spec = spec
	if s.spawnErr != nil {
		return nil, s.spawnErr
	}
	return s.process, nil
}

func newFakeProcess(stdout, stderr string, exitCode int) *fakeProcess {
	return &fakeProcess{
		stdout:   strings.NewReader(stdout),
		stderr:   strings.NewReader(stderr),
		exitCode: exitCode,
	}
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Log(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, message)
}

func (l *recordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// chunkReader returns one chunk per Read call.
type chunkReader struct {
	chunks []string
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

type failingReader struct {
	err error
}

func (r failingReader) Read(_ []byte) (int, error) {
	return 0, r.err
}

// flakyReader fails its first Read and then serves rest.
type flakyReader struct {
	err    error
	rest   *strings.Reader
	failed bool
}

func (r *flakyReader) Read(p []byte) (int, error) {
	if !r.failed {
		r.failed = true
		return 0, r.err
	}
	return r.rest.Read(p)
}
