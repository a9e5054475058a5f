// Where: internal/infra/env/dotenv.go
// What: .env file loading.
// Why: Let local secrets reach the build without adding them to the project configuration.
package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when no explicit file is given and it exists.
const DefaultEnvFile = ".env"

// LoadFile loads path into the process environment, or DefaultEnvFile when
// path is empty. Variables already set are not overridden. It returns the
// file that was loaded, or "" when nothing was loaded.
func LoadFile(path string) (string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return "", nil
		}
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		return "", fmt.Errorf("load env file %s: %w", path, err)
	}
	return path, nil
}
