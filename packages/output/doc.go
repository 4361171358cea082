// Package output renders quest files, resolved requests and responses on
// the terminal.
//
// ConsoleFormatter colors methods and status codes with fatih/color unless
// color is disabled. Response bodies are written exactly as received.
package output
