// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the binary name and log prefix in one place.
package meta

const (
	// Project Identity
	AppName     = "build-client"
	Description = "Build front end clients for serverless projects"
	LogPrefix   = "BuildClient"
)
