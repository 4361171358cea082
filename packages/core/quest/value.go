package quest

// Lookup reads a single environment variable. It has the same shape as
// os.LookupEnv so the process environment can be passed in directly.
type Lookup func(name string) (string, bool)

// ValueSource is a configured value: either a Literal or an EnvRef.
type ValueSource interface {
	isValueSource()
	String() string
}

// Literal is a value written directly in the quest file or on the command line.
type Literal string

// EnvRef names an environment variable whose value is read at resolution time.
type EnvRef string

func (Literal) isValueSource() {}
func (EnvRef) isValueSource()  {}

func (l Literal) String() string { return string(l) }
func (e EnvRef) String() string  { return "$" + string(e) }

// Entry is a single named value, used for vars, headers and params alike.
type Entry struct {
	Name   string
	Source ValueSource
}

// Layer is an ordered list of entries from one configuration source.
// Duplicate names are allowed; the last one wins.
type Layer []Entry

// Names returns the entry names in document order, duplicates included.
func (l Layer) Names() []string {
	names := make([]string, 0, len(l))
	for _, e := range l {
		names = append(names, e.Name)
	}
	return names
}

// ResolveValue turns a ValueSource into its final string.
func ResolveValue(src ValueSource, env Lookup) (string, error) {
	switch v := src.(type) {
	case Literal:
		return string(v), nil
	case EnvRef:
		if env != nil {
			if val, ok := env(string(v)); ok {
				return val, nil
			}
		}
		return "", &MissingEnvVarError{Name: string(v)}
	default:
		return "", ErrEmptyValueSource
	}
}

// resolveAll resolves every value of a merged mapping. The first failure
// is returned together with the key that produced it.
func resolveAll(merged map[string]ValueSource, env Lookup) (map[string]string, string, error) {
	out := make(map[string]string, len(merged))
	for _, name := range sortedKeys(merged) {
		val, err := ResolveValue(merged[name], env)
		if err != nil {
			return nil, name, err
		}
		out[name] = val
	}
	return out, "", nil
}
