// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep failure output consistent across commands.
package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/poruru/build-client/internal/infra/build"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	writeLine(out, fmt.Sprintf("✗ %s", describeError(err)))
	return 1
}

// describeError names the exit code of builds that failed without stderr output.
func describeError(err error) string {
	var buildErr *build.BuildError
	if errors.As(err, &buildErr) && buildErr.Error() == "" {
		return fmt.Sprintf("build exited with code %d", buildErr.ExitCode)
	}
	return err.Error()
}
