// Where: internal/ports/logs.go
// What: Logger port definition.
// Why: Let the resolver and runner write to the host log without knowing the console.
package ports

// Logger is the host logging sink. Each call carries one message.
type Logger interface {
	Log(message string)
}
