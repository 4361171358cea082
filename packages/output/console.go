package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/abdul-hamid-achik/quest/packages/core/parser"
	"github.com/abdul-hamid-achik/quest/packages/core/quest"
	"github.com/abdul-hamid-achik/quest/packages/http"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
)

// methodColors matches the colors used by `quest ls`.
var methodColors = map[quest.Method]color.Attribute{
	quest.MethodGet:     color.FgGreen,
	quest.MethodPost:    color.FgBlue,
	quest.MethodPut:     color.FgYellow,
	quest.MethodPatch:   color.FgCyan,
	quest.MethodDelete:  color.FgRed,
	quest.MethodHead:    color.FgMagenta,
	quest.MethodOptions: color.FgWhite,
}

type ConsoleFormatter struct {
	writer  io.Writer
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) paint(attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if f.noColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// FormatQuests prints the quest file path followed by one row per quest:
// method, name and the merged var names the quest can use.
func (f *ConsoleFormatter) FormatQuests(path string, doc *quest.Document) {
	bold := f.paint(color.Bold)

	fmt.Fprintf(f.writer, "%s\n", bold(path))
	if doc == nil || len(doc.Quests) == 0 {
		fmt.Fprintf(f.writer, "  (no quests)\n")
		return
	}

	nameWidth := len("NAME")
	methodWidth := len("METHOD")
	for _, q := range doc.Quests {
		nameWidth = max(nameWidth, len(q.Name))
		methodWidth = max(methodWidth, len(q.Method))
	}

	// Pad before coloring so escape codes do not skew the columns.
	fmt.Fprintf(f.writer, "  %s  %s  %s\n",
		bold(pad("METHOD", methodWidth)), bold(pad("NAME", nameWidth)), bold("VARS"))
	for i := range doc.Quests {
		q := &doc.Quests[i]
		method := f.paint(methodColor(q.Method))(pad(q.Method.String(), methodWidth))
		vars := strings.Join(quest.VarNames(doc, q), ", ")
		line := fmt.Sprintf("  %s  %s  %s", method, pad(q.Name, nameWidth), vars)
		fmt.Fprintln(f.writer, strings.TrimRight(line, " "))
	}
}

// FormatRequest prints a resolved request without sending it.
func (f *ConsoleFormatter) FormatRequest(req *quest.Request) {
	bold := f.paint(color.Bold)
	cyan := f.paint(color.FgCyan)

	target, err := http.BuildURL(req.URL, req.Params)
	if err != nil {
		target = req.URL
	}

	fmt.Fprintf(f.writer, "%s %s\n", f.paint(methodColor(req.Method), color.Bold)(req.Method.String()), target)
	for _, name := range sortedKeys(req.Headers) {
		fmt.Fprintf(f.writer, "%s: %s\n", cyan(name), req.Headers[name])
	}
	if !req.HasBody() {
		return
	}

	label := "body"
	if req.JSON || gjson.Valid(*req.Body) {
		label = "body (json)"
	}
	fmt.Fprintf(f.writer, "\n%s\n%s", bold(label+":"), *req.Body)
	if !strings.HasSuffix(*req.Body, "\n") {
		fmt.Fprintln(f.writer)
	}
}

// FormatResponse prints the response body as received. With includeHeaders
// the status line and response headers come first.
func (f *ConsoleFormatter) FormatResponse(resp *http.Response, includeHeaders bool) {
	if includeHeaders {
		fmt.Fprintf(f.writer, "%s %s\n", resp.Proto, f.paint(statusColor(resp), color.Bold)(resp.Status))
		cyan := f.paint(color.FgCyan)
		for _, name := range resp.HeaderNames() {
			fmt.Fprintf(f.writer, "%s: %s\n", cyan(name), resp.Headers[name])
		}
		fmt.Fprintln(f.writer)
	}

	if len(resp.Body) == 0 {
		return
	}
	body := resp.BodyString()
	fmt.Fprint(f.writer, body)
	if !strings.HasSuffix(body, "\n") {
		fmt.Fprintln(f.writer)
	}
}

// FormatProblems prints the result of validating a quest file.
func (f *ConsoleFormatter) FormatProblems(path string, problems []parser.Problem) {
	if len(problems) == 0 {
		fmt.Fprintf(f.writer, "%s %s\n", f.paint(color.FgGreen)("Valid:"), path)
		return
	}

	red := f.paint(color.FgRed)
	fmt.Fprintf(f.writer, "%s %s\n", red("Invalid:"), path)
	for _, p := range problems {
		fmt.Fprintf(f.writer, "  %s %s\n", red("x"), p)
	}
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := f.paint(color.FgRed)
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func methodColor(m quest.Method) color.Attribute {
	if attr, ok := methodColors[m]; ok {
		return attr
	}
	return color.Reset
}

func statusColor(resp *http.Response) color.Attribute {
	switch {
	case resp.IsServerError():
		return color.FgRed
	case resp.IsClientError():
		return color.FgYellow
	case resp.IsSuccess():
		return color.FgGreen
	default:
		return color.FgCyan
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
