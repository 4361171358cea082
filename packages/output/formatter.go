package output

import (
	"fmt"
	"io"

	"github.com/abdul-hamid-achik/quest/packages/core/quest"
)

// Formatter renders quest listings, dry-run requests and errors.
type Formatter interface {
	FormatQuests(path string, doc *quest.Document)
	FormatRequest(req *quest.Request)
	FormatError(err error)
}

// Formats lists the names accepted by NewFormatter.
var Formats = []string{"console", "json"}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, w io.Writer, noColor bool) (Formatter, error) {
	switch name {
	case "", "console":
		return NewConsoleFormatter(WithWriter(w), WithNoColor(noColor)), nil
	case "json":
		return NewJSONFormatter(JSONWithWriter(w)), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected one of %v)", name, Formats)
	}
}
