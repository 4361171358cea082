package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/abdul-hamid-achik/quest/packages/core/quest"
	"github.com/stretchr/testify/assert"
)

func TestJSONFormatter_FormatQuests(t *testing.T) {
	var buf bytes.Buffer
	NewJSONFormatter(JSONWithWriter(&buf)).FormatQuests("./.quests", sampleDocument())

	assert.JSONEq(t, `{
		"file": "./.quests",
		"quests": [
			{"name": "get", "method": "GET", "url": "${base}/${path-param}", "vars": ["base", "path-param"]},
			{"name": "create-resource", "method": "POST", "url": "${base}/post", "vars": ["base"], "body": true, "json": true}
		]
	}`, buf.String())
}

func TestJSONFormatter_FormatRequest(t *testing.T) {
	var buf bytes.Buffer
	NewJSONFormatter(JSONWithWriter(&buf)).FormatRequest(&quest.Request{
		Quest:   "get",
		Method:  quest.MethodGet,
		URL:     "https://httpbin.org/get",
		Headers: map[string]string{"hello": "world"},
	})

	assert.JSONEq(t, `{
		"quest": "get",
		"method": "GET",
		"url": "https://httpbin.org/get",
		"headers": {"hello": "world"}
	}`, buf.String())
}

func TestJSONFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	NewJSONFormatter(JSONWithWriter(&buf)).FormatError(errors.New("boom"))

	assert.JSONEq(t, `{"error": "boom"}`, buf.String())
}
