package parser

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/quest/packages/core/quest"
	"github.com/tidwall/gjson"
)

// Problem is a semantic issue found in an otherwise well-formed document.
type Problem struct {
	Quest   string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Quest, p.Message)
}

// Check looks for authoring mistakes that only show up at resolution time:
// URL placeholders with no declared var, and bodies sent as JSON that are
// not valid JSON. Placeholders can still be satisfied by a runtime
// override, so callers decide how strict to be.
func Check(doc *quest.Document) []Problem {
	var problems []Problem
	for i := range doc.Quests {
		q := &doc.Quests[i]

		names, err := quest.Placeholders(q.URL)
		if err != nil {
			problems = append(problems, Problem{Quest: q.Name, Message: err.Error()})
		}
		declared := quest.Merge(doc.Vars, q.Vars)
		reported := make(map[string]bool)
		for _, name := range names {
			if _, ok := declared[name]; ok || reported[name] {
				continue
			}
			reported[name] = true
			problems = append(problems, Problem{
				Quest:   q.Name,
				Message: fmt.Sprintf("url placeholder ${%s} has no declared var", name),
			})
		}

		if q.Body != nil && declaresJSON(doc, q) && !gjson.Valid(*q.Body) {
			problems = append(problems, Problem{Quest: q.Name, Message: "body is sent as application/json but is not valid JSON"})
		}
	}
	return problems
}

// declaresJSON reports whether the quest's body will be sent as JSON, either
// through a json: body or through a literal Content-Type header.
func declaresJSON(doc *quest.Document, q *quest.Quest) bool {
	if q.JSON {
		return true
	}
	for name, src := range quest.Merge(doc.Headers, q.Headers) {
		lit, ok := src.(quest.Literal)
		if ok && strings.EqualFold(name, "content-type") && strings.Contains(strings.ToLower(string(lit)), "json") {
			return true
		}
	}
	return false
}
