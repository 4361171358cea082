package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	input := `vars:
  - key: host
    value: example.com
quests:
  - name: ok
    method: get
    url: https://${host}/${id}
    vars:
      - key: id
        value: "1"
  - name: missing
    method: get
    url: https://${host}/${undefined-var}/${undefined-var}
  - name: bad-json
    method: post
    url: https://${host}/items
    headers:
      - key: Content-Type
        value: application/json
    body: "{not json"
  - name: text
    method: post
    url: https://${host}/items
    body: "{not json either, but plain text"
`
	doc, err := Parse([]byte(input), "")
	require.NoError(t, err)

	problems := Check(doc)
	require.Len(t, problems, 2)
	assert.Equal(t, "missing", problems[0].Quest)
	assert.Contains(t, problems[0].Message, "${undefined-var}")
	assert.Equal(t, "bad-json", problems[1].Quest)
	assert.Contains(t, problems[1].String(), "not valid JSON")
}

func TestCheck_Readme(t *testing.T) {
	doc, err := Parse([]byte(readmeQuests), "")
	require.NoError(t, err)
	assert.Empty(t, Check(doc))
}
