package cmd

import (
	"testing"

	"github.com/abdul-hamid-achik/quest/packages/core/quest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyVal(t *testing.T) {
	tests := []struct {
		input   string
		want    quest.Entry
		wantErr string
	}{
		{input: "a=b", want: quest.Entry{Name: "a", Source: quest.Literal("b")}},
		{input: "a=b=c", want: quest.Entry{Name: "a", Source: quest.Literal("b=c")}},
		{input: "a=", want: quest.Entry{Name: "a", Source: quest.Literal("")}},
		{input: "content-type=application/json; charset=utf-8", want: quest.Entry{Name: "content-type", Source: quest.Literal("application/json; charset=utf-8")}},
		{input: "novalue", wantErr: "invalid key=value: no '=' found in 'novalue'"},
		{input: "=value", wantErr: "invalid key=value: empty key in '=value'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseKeyVal(tt.input)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOverrides(t *testing.T) {
	ov, err := parseOverrides(
		[]string{"path-param=anything"},
		[]string{"hello=there", "hello=again"},
		[]string{"new-param=value"},
	)
	require.NoError(t, err)

	assert.Equal(t, quest.Layer{{Name: "path-param", Source: quest.Literal("anything")}}, ov.Vars)
	assert.Equal(t, quest.Layer{
		{Name: "hello", Source: quest.Literal("there")},
		{Name: "hello", Source: quest.Literal("again")},
	}, ov.Headers)
	assert.Equal(t, quest.Literal("again"), quest.Merge(ov.Headers)["hello"])
	assert.Equal(t, quest.Layer{{Name: "new-param", Source: quest.Literal("value")}}, ov.Params)
}

func TestParseOverrides_UsageError(t *testing.T) {
	_, err := parseOverrides(nil, []string{"broken"}, nil)
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, ExitCode(err))
}
