// Package quest resolves named, declaratively configured HTTP requests.
//
// A quest is resolved in layers:
//   - document-wide defaults (global vars, headers and params)
//   - the quest's own vars, headers and params
//   - runtime overrides supplied on the command line
//
// Later layers win by key. Values are either literals or references to
// environment variables, and the quest URL may contain ${name} placeholders
// that are substituted from the resolved vars.
//
// Resolution is a pure function of the document, the quest name, the
// overrides and the environment lookup; nothing here performs network I/O.
package quest
