package color

import "strings"

type ID int32

const (
	None ID = iota
	Red
	Blue
	Green
	Yellow
	Aqua
	Gold
	Gray
	LightPurple
	White
	numColors
)

// Spectator is the name tag color used for the spectator group.
const Spectator = LightPurple

var names = [...]string{
	None:        "none",
	Red:         "red",
	Blue:        "blue",
	Green:       "green",
	Yellow:      "yellow",
	Aqua:        "aqua",
	Gold:        "gold",
	Gray:        "gray",
	LightPurple: "light_purple",
	White:       "white",
}

func (c ID) String() string {
	if c < 0 || c >= numColors {
		return "none"
	}
	return names[c]
}

func Parse(name string) (ID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range names {
		if n == name {
			return ID(c), true
		}
	}
	return None, false
}
