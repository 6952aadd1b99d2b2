package gamemode

import "strings"

type ID int32

const (
	FFA ID = iota
	Elimination
	numModes
)

var names = [...]string{
	FFA:         "ffa",
	Elimination: "elimination",
}

func (id ID) String() string {
	if id < 0 || id >= numModes {
		return "unknown"
	}
	return names[id]
}

func Valid(id ID) bool { return id >= 0 && id < numModes }

func Parse(name string) (ID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range names {
		if n == name {
			return ID(id), true
		}
	}
	return -1, false
}

// MarshalText and UnmarshalText let mode IDs be written by name in config files.
func (id ID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *ID) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return &UnknownModeError{Name: string(text)}
	}
	*id = parsed
	return nil
}

type UnknownModeError struct {
	Name string
}

func (e *UnknownModeError) Error() string { return "unknown game mode '" + e.Name + "'" }
