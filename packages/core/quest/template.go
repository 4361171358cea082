package quest

import "strings"

const (
	placeholderOpen  = "${"
	placeholderClose = '}'
)

// Expand substitutes ${name} placeholders in template with values from vars.
//
// The template is scanned once, left to right. Substituted text is never
// rescanned, so a value containing "${...}" is emitted literally. A "$" that
// is not followed by "{" and a "}" outside a placeholder are plain text.
// An unterminated "${" or an empty "${}" is malformed.
func Expand(template string, vars map[string]string) (string, error) {
	if !strings.Contains(template, placeholderOpen) {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template))

	err := scan(template, func(text string) {
		b.WriteString(text)
	}, func(name string, _ int) error {
		val, ok := vars[name]
		if !ok {
			return &UnresolvedPlaceholderError{Name: name}
		}
		b.WriteString(val)
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Placeholders returns the placeholder names in template in order of
// appearance, duplicates included.
func Placeholders(template string) ([]string, error) {
	var names []string
	err := scan(template, func(string) {}, func(name string, _ int) error {
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// scan walks template and reports literal runs to text and placeholder
// names to placeholder. It stops at the first error.
func scan(template string, text func(string), placeholder func(name string, offset int) error) error {
	rest := template
	offset := 0
	for {
		i := strings.Index(rest, placeholderOpen)
		if i < 0 {
			text(rest)
			return nil
		}
		text(rest[:i])

		start := i + len(placeholderOpen)
		end := strings.IndexByte(rest[start:], placeholderClose)
		if end < 0 {
			return &MalformedPlaceholderError{Template: template, Offset: offset + i}
		}
		name := rest[start : start+end]
		if name == "" {
			return &MalformedPlaceholderError{Template: template, Offset: offset + i}
		}
		if err := placeholder(name, offset+i); err != nil {
			return err
		}

		consumed := start + end + 1
		rest = rest[consumed:]
		offset += consumed
	}
}
