package env

import (
	"os"

	"github.com/abdul-hamid-achik/quest/packages/core/quest"
)

// OS looks variables up in the process environment.
func OS() quest.Lookup {
	return os.LookupEnv
}

// FromMap looks variables up in a fixed map. The map is copied so later
// changes by the caller are not observed.
func FromMap(vars map[string]string) quest.Lookup {
	snapshot := make(map[string]string, len(vars))
	for k, v := range vars {
		snapshot[k] = v
	}
	return func(name string) (string, bool) {
		v, ok := snapshot[name]
		return v, ok
	}
}

// Chain returns a lookup that asks each lookup in turn and returns the
// first hit. Nil lookups are skipped.
func Chain(lookups ...quest.Lookup) quest.Lookup {
	return func(name string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l(name); ok {
				return v, true
			}
		}
		return "", false
	}
}
