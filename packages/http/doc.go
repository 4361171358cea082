// Package http sends resolved quests.
//
// It wraps the standard library's http package with additional features:
//   - Configurable timeouts
//   - Redirect handling
//   - Query parameters merged into the quest URL
//   - JSON bodies with a default Content-Type
//   - Opt-in gzip, deflate and brotli response decoding
package http
