// Where: cmd/build-client/main.go
// What: CLI entrypoint.
// Why: Execute build-client commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/build-client/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
