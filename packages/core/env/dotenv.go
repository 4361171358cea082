package env

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadDotEnv parses a .env file and returns its key-value pairs.
// Supports: KEY=value, KEY="quoted value", KEY='single quoted', export KEY=value,
// # comments and ${VAR} expansion inside double quotes.
// Nothing is exported to the OS environment; combine the result with OS()
// through Chain to make it visible to resolution.
func LoadDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read env file %s: %w", path, err)
	}
	return vars, nil
}
