// Where: internal/usecase/clientbuild/lifecycle.go
// What: Lifecycle hook names and the serial hook driver.
// Why: Hooks run before/during/after in a fixed order and stop at the first failure.
package clientbuild

// EventClientBuild is the lifecycle event of the "client build" command.
const EventClientBuild = "client:build"

// Hook handles one lifecycle stage.
type Hook func() error

// Command is command metadata consumed by the host CLI.
type Command struct {
	Usage           string
	LifecycleEvents []string
	Options         map[string]Option
	Commands        map[string]Command
}

// Option describes one command flag.
type Option struct {
	Usage    string
	Shortcut string
}

// BeforeHook returns the name of the hook run before event.
func BeforeHook(event string) string {
	return "before:" + event
}

// AfterHook returns the name of the hook run after event.
func AfterHook(event string) string {
	return "after:" + event
}

// RunLifecycle invokes the before, main and after hooks of event in order.
// Missing hooks are skipped. The first error is returned unchanged and later
// hooks do not run.
func RunLifecycle(hooks map[string]Hook, event string) error {
	for _, name := range []string{BeforeHook(event), event, AfterHook(event)} {
		hook, ok := hooks[name]
		if !ok || hook == nil {
			continue
		}
		if err := hook(); err != nil {
			return err
		}
	}
	return nil
}
