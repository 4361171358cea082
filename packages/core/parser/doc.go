// Package parser loads quest files.
//
// A quest file is YAML with optional document-wide headers, vars and params
// and a list of quests:
//
//	headers:
//	  - key: x-secret-key
//	    valueFrom:
//	      env: SUPER_SECRET
//	quests:
//	  - name: get
//	    method: get
//	    url: https://httpbin.org/${path-param}
//	    vars:
//	      - key: path-param
//	        value: get
//
// The parser handles:
//   - YAML syntax errors, reported with file and line
//   - Structural validation against an embedded JSON schema
//   - Literal values and valueFrom environment references
//   - Raw string bodies and structured json bodies
//   - Duplicate quest names and unknown HTTP methods
package parser
