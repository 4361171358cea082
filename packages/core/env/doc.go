// Package env provides the environment lookups quest values are resolved
// against.
//
// It provides functionality for:
//   - Reading .env files without touching the process environment
//   - Looking up variables in the process environment or in plain maps
//   - Layering several lookups so real environment variables win over
//     values from a .env file
package env
