package cmd

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/quest/packages/core/quest"
)

// parseKeyVal splits a key=value flag at the first '='.
func parseKeyVal(s string) (quest.Entry, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return quest.Entry{}, fmt.Errorf("invalid key=value: no '=' found in '%s'", s)
	}
	if key == "" {
		return quest.Entry{}, fmt.Errorf("invalid key=value: empty key in '%s'", s)
	}
	return quest.Entry{Name: key, Source: quest.Literal(value)}, nil
}

func parseLayer(values []string) (quest.Layer, error) {
	layer := make(quest.Layer, 0, len(values))
	for _, v := range values {
		e, err := parseKeyVal(v)
		if err != nil {
			return nil, err
		}
		layer = append(layer, e)
	}
	return layer, nil
}

// parseOverrides builds the runtime layer from repeated -v, -H and -p flags.
// Later flags win over earlier ones for the same key.
func parseOverrides(vars, headers, params []string) (quest.Overrides, error) {
	var ov quest.Overrides
	var err error
	if ov.Vars, err = parseLayer(vars); err != nil {
		return quest.Overrides{}, usageError(err)
	}
	if ov.Headers, err = parseLayer(headers); err != nil {
		return quest.Overrides{}, usageError(err)
	}
	if ov.Params, err = parseLayer(params); err != nil {
		return quest.Overrides{}, usageError(err)
	}
	return ov, nil
}
