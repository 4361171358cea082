package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/abdul-hamid-achik/quest/packages/core/quest"
)

// JSONQuestList is the machine-readable form of `quest ls`.
type JSONQuestList struct {
	File   string      `json:"file"`
	Quests []JSONQuest `json:"quests"`
}

// JSONQuest describes one quest as declared, before resolution.
type JSONQuest struct {
	Name   string   `json:"name"`
	Method string   `json:"method"`
	URL    string   `json:"url"`
	Vars   []string `json:"vars"`
	Body   bool     `json:"body,omitempty"`
	JSON   bool     `json:"json,omitempty"`
}

// JSONRequest represents a resolved request
type JSONRequest struct {
	Quest   string            `json:"quest"`
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
	Body    *string           `json:"body,omitempty"`
	JSON    bool              `json:"json,omitempty"`
}

// JSONError represents a failure
type JSONError struct {
	Error string `json:"error"`
}

// JSONFormatter writes one JSON document per call
type JSONFormatter struct {
	writer io.Writer
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatQuests(path string, doc *quest.Document) {
	out := JSONQuestList{File: path, Quests: make([]JSONQuest, 0)}
	if doc != nil {
		for i := range doc.Quests {
			q := &doc.Quests[i]
			out.Quests = append(out.Quests, JSONQuest{
				Name:   q.Name,
				Method: q.Method.String(),
				URL:    q.URL,
				Vars:   quest.VarNames(doc, q),
				Body:   q.Body != nil,
				JSON:   q.JSON,
			})
		}
	}
	f.encode(out)
}

func (f *JSONFormatter) FormatRequest(req *quest.Request) {
	f.encode(JSONRequest{
		Quest:   req.Quest,
		Method:  req.Method.String(),
		URL:     req.URL,
		Headers: req.Headers,
		Params:  req.Params,
		Body:    req.Body,
		JSON:    req.JSON,
	})
}

func (f *JSONFormatter) FormatError(err error) {
	f.encode(JSONError{Error: err.Error()})
}

func (f *JSONFormatter) encode(v any) {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(v)
}
