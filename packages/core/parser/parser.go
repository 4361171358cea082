package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/abdul-hamid-achik/quest/packages/core/quest"
	"gopkg.in/yaml.v3"
)

type fileDocument struct {
	Headers []fileEntry `yaml:"headers"`
	Vars    []fileEntry `yaml:"vars"`
	Params  []fileEntry `yaml:"params"`
	Quests  []fileQuest `yaml:"quests"`
}

type fileQuest struct {
	Name    string      `yaml:"name"`
	Method  string      `yaml:"method"`
	URL     string      `yaml:"url"`
	Headers []fileEntry `yaml:"headers"`
	Vars    []fileEntry `yaml:"vars"`
	Params  []fileEntry `yaml:"params"`
	Body    *string     `yaml:"body"`
	JSON    any         `yaml:"json"`

	line   int
	column int
}

func (q *fileQuest) UnmarshalYAML(node *yaml.Node) error {
	type plain fileQuest
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*q = fileQuest(p)
	q.line, q.column = node.Line, node.Column
	return nil
}

type fileEntry struct {
	Key       string     `yaml:"key"`
	Value     *string    `yaml:"value"`
	ValueFrom *valueFrom `yaml:"valueFrom"`

	line   int
	column int
}

func (e *fileEntry) UnmarshalYAML(node *yaml.Node) error {
	type plain fileEntry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = fileEntry(p)
	e.line, e.column = node.Line, node.Column
	return nil
}

type valueFrom struct {
	Env string `yaml:"env"`
}

// ParseFile reads and parses the quest file at path.
func ParseFile(path string) (*quest.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		reason := err.Error()
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			reason = pathErr.Err.Error()
		}
		return nil, &ParseError{File: path, Message: "cannot read quest file: " + reason, Err: err}
	}
	return Parse(content, path)
}

// Parse parses quest file content. filename is only used in error messages.
func Parse(content []byte, filename string) (*quest.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, &ParseError{File: filename, Message: err.Error()}
	}
	if root.Kind == 0 || len(bytes.TrimSpace(content)) == 0 {
		return nil, &ParseError{File: filename, Message: "quest file is empty"}
	}

	var tree any
	if err := root.Decode(&tree); err != nil {
		return nil, &ParseError{File: filename, Message: err.Error()}
	}
	problems, err := validateSchema(tree)
	if err != nil {
		return nil, &ParseError{File: filename, Message: err.Error()}
	}
	if len(problems) > 0 {
		return nil, &ParseError{File: filename, Message: "quest file does not match the expected structure", Details: problems}
	}

	var raw fileDocument
	if err := root.Decode(&raw); err != nil {
		return nil, &ParseError{File: filename, Message: err.Error()}
	}
	return convert(&raw, filename)
}

func convert(raw *fileDocument, filename string) (*quest.Document, error) {
	doc := &quest.Document{}
	var err error

	if doc.Headers, err = convertLayer(raw.Headers, filename); err != nil {
		return nil, err
	}
	if doc.Vars, err = convertLayer(raw.Vars, filename); err != nil {
		return nil, err
	}
	if doc.Params, err = convertLayer(raw.Params, filename); err != nil {
		return nil, err
	}

	seen := make(map[string]int, len(raw.Quests))
	for _, fq := range raw.Quests {
		if first, dup := seen[fq.Name]; dup {
			return nil, &ParseError{
				File:    filename,
				Line:    fq.line,
				Column:  fq.column,
				Message: fmt.Sprintf("duplicate quest name %q (first defined on line %d)", fq.Name, first),
			}
		}
		seen[fq.Name] = fq.line

		q, err := convertQuest(&fq, filename)
		if err != nil {
			return nil, err
		}
		doc.Quests = append(doc.Quests, q)
	}

	return doc, nil
}

func convertQuest(fq *fileQuest, filename string) (quest.Quest, error) {
	fail := func(format string, args ...any) (quest.Quest, error) {
		return quest.Quest{}, &ParseError{
			File:    filename,
			Line:    fq.line,
			Column:  fq.column,
			Message: fmt.Sprintf("quest %q: ", fq.Name) + fmt.Sprintf(format, args...),
		}
	}

	method, err := quest.ParseMethod(fq.Method)
	if err != nil {
		return fail("%v", err)
	}
	if _, err := quest.Placeholders(fq.URL); err != nil {
		return fail("url: %v", err)
	}

	q := quest.Quest{
		Name:   fq.Name,
		Method: method,
		URL:    fq.URL,
		Body:   fq.Body,
	}

	if fq.JSON != nil {
		payload, err := json.Marshal(fq.JSON)
		if err != nil {
			return fail("json body cannot be encoded: %v", err)
		}
		body := string(payload)
		q.Body = &body
		q.JSON = true
	}

	if q.Headers, err = convertLayer(fq.Headers, filename); err != nil {
		return quest.Quest{}, err
	}
	if q.Vars, err = convertLayer(fq.Vars, filename); err != nil {
		return quest.Quest{}, err
	}
	if q.Params, err = convertLayer(fq.Params, filename); err != nil {
		return quest.Quest{}, err
	}

	return q, nil
}

func convertLayer(entries []fileEntry, filename string) (quest.Layer, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	layer := make(quest.Layer, 0, len(entries))
	for _, e := range entries {
		entry, err := convertEntry(e)
		if err != nil {
			return nil, &ParseError{File: filename, Line: e.line, Column: e.column, Message: err.Error()}
		}
		layer = append(layer, entry)
	}
	return layer, nil
}

// convertEntry enforces that exactly one of value and valueFrom is set.
func convertEntry(e fileEntry) (quest.Entry, error) {
	switch {
	case e.Key == "":
		return quest.Entry{}, fmt.Errorf("entry is missing a key")
	case e.Value != nil && e.ValueFrom != nil:
		return quest.Entry{}, fmt.Errorf("%s: set either value or valueFrom, not both", e.Key)
	case e.Value != nil:
		return quest.Entry{Name: e.Key, Source: quest.Literal(*e.Value)}, nil
	case e.ValueFrom != nil && e.ValueFrom.Env != "":
		return quest.Entry{Name: e.Key, Source: quest.EnvRef(e.ValueFrom.Env)}, nil
	default:
		return quest.Entry{}, fmt.Errorf("%s: %w", e.Key, quest.ErrEmptyValueSource)
	}
}
