// Package cmd implements the quest CLI commands using Cobra.
//
// Available commands:
//   - go: Resolve a quest and send it
//   - ls: List the quests in a quest file
//   - validate: Check a quest file without sending anything
//   - init: Write an example quest file
//   - version: Show quest version information
//   - completion: Generate shell completion scripts
//
// Errors are mapped to process exit codes in exitcodes.go.
package cmd
