package quest

import "os"

var osLookup Lookup = os.LookupEnv

func lit(name, value string) Entry {
	return Entry{Name: name, Source: Literal(value)}
}

func env(name, variable string) Entry {
	return Entry{Name: name, Source: EnvRef(variable)}
}

func strPtr(s string) *string {
	return &s
}
