// Package config handles settings for the quest CLI itself.
//
// It provides functionality for:
//   - Loading settings from quest.config.json, quest.config.yaml or .questrc
//   - QUEST_* environment variables (QUEST_TIMEOUT, QUEST_NO_COLOR, ...)
//   - Default values and merging of command-line flags on top
//
// Quest definitions live in the quest file, not here; see package parser.
package config
