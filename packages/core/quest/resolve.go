package quest

import "errors"

// Resolve materializes the named quest from doc.
//
// Vars, headers and params are each merged independently in the order
// document globals, quest, overrides. Vars are resolved first and used to
// expand the URL; headers and params are resolved afterwards. Any failure
// aborts the whole resolution and no Request is returned.
func Resolve(doc *Document, name string, ov Overrides, env Lookup) (*Request, error) {
	q, ok := doc.Find(name)
	if !ok {
		return nil, &QuestNotFoundError{Name: name}
	}

	mergedVars := Merge(doc.Vars, q.Vars, ov.Vars)
	mergedHeaders := Merge(doc.Headers, q.Headers, ov.Headers)
	mergedParams := Merge(doc.Params, q.Params, ov.Params)

	vars, key, err := resolveAll(mergedVars, env)
	if err != nil {
		return nil, &ResolveError{Quest: name, Section: SectionVar, Key: key, Err: err}
	}

	url, err := Expand(q.URL, vars)
	if err != nil {
		re := &ResolveError{Quest: name, Section: SectionURL, Err: err}
		var up *UnresolvedPlaceholderError
		if errors.As(err, &up) {
			re.Key = up.Name
		}
		return nil, re
	}

	headers, key, err := resolveAll(mergedHeaders, env)
	if err != nil {
		return nil, &ResolveError{Quest: name, Section: SectionHeader, Key: key, Err: err}
	}

	params, key, err := resolveAll(mergedParams, env)
	if err != nil {
		return nil, &ResolveError{Quest: name, Section: SectionParam, Key: key, Err: err}
	}

	return &Request{
		Quest:   q.Name,
		Method:  q.Method,
		URL:     url,
		Headers: headers,
		Params:  params,
		Body:    copyBody(q.Body),
		JSON:    q.JSON,
	}, nil
}

// VarNames returns the sorted names of the vars a quest declares, globals
// included, before any override is applied.
func VarNames(doc *Document, q *Quest) []string {
	return sortedKeys(Merge(doc.Vars, q.Vars))
}

func copyBody(b *string) *string {
	if b == nil {
		return nil
	}
	s := *b
	return &s
}
