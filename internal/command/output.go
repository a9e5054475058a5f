// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface usage and raw line output.
package command

import (
	"io"
	"strings"

	"github.com/poruru/build-client/internal/infra/ui"
)

func commandUI(out io.Writer, cli CLI) ui.UserInterface {
	return ui.NewUI(out, !cli.NoEmoji)
}

func writeLine(out io.Writer, line string) {
	if out == nil {
		return
	}
	if strings.HasSuffix(line, "\n") {
		_, _ = io.WriteString(out, line)
		return
	}
	_, _ = io.WriteString(out, line+"\n")
}
