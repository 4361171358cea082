package quest

import (
	"fmt"
	"strings"
)

// Method is an HTTP request method.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Methods lists every supported method.
var Methods = []Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodPatch,
	MethodDelete,
	MethodHead,
	MethodOptions,
}

// ParseMethod parses a method name case-insensitively.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Methods {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unsupported HTTP method %q", s)
}

func (m Method) String() string {
	return string(m)
}

// Quest is a named HTTP request template.
type Quest struct {
	Name    string
	Method  Method
	URL     string
	Headers Layer
	Vars    Layer
	Params  Layer
	Body    *string
	// JSON is set when the body was declared as structured JSON.
	JSON bool
}

// Document is a loaded quest file. It is not modified after loading.
type Document struct {
	Headers Layer
	Vars    Layer
	Params  Layer
	Quests  []Quest
}

// Find returns the quest with exactly the given name.
func (d *Document) Find(name string) (*Quest, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Quests {
		if d.Quests[i].Name == name {
			return &d.Quests[i], true
		}
	}
	return nil, false
}

// Names returns the quest names in document order.
func (d *Document) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Quests))
	for _, q := range d.Quests {
		names = append(names, q.Name)
	}
	return names
}

// Overrides are values supplied for a single invocation. They take
// precedence over everything in the document.
type Overrides struct {
	Vars    Layer
	Headers Layer
	Params  Layer
}

// Request is a fully resolved quest, ready to be sent.
type Request struct {
	Quest   string
	Method  Method
	URL     string
	Headers map[string]string
	Params  map[string]string
	Body    *string
	JSON    bool
}

// HasBody reports whether the request carries a body.
func (r *Request) HasBody() bool {
	return r.Body != nil
}
