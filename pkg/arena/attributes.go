package arena

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Canonical attribute keys. Every loaded arena carries all of them.
const (
	AllDamage     = "allDamage"
	BlockBreak    = "blockBreak"
	BlockPlace    = "blockPlace"
	BlockExplode  = "blockExplode"
	PearlDamage   = "pearlDamage"
	FireSpread    = "fireSpread"
	MatchDuration = "matchDuration"
)

// Mode-specific keys. They are seeded with defaults, and modes list the ones
// they need so activation can check for them.
const (
	FFAKills           = "ffaKills"
	CaptureRequirement = "captureRequirement"
)

var (
	ErrMissingAttribute = errors.New("missing attribute")
	ErrAttributeType    = errors.New("attribute has wrong type")
)

type valueKind int

const (
	boolValue valueKind = iota
	intValue
)

var canonical = map[string]valueKind{
	AllDamage:     boolValue,
	BlockBreak:    boolValue,
	BlockPlace:    boolValue,
	BlockExplode:  boolValue,
	PearlDamage:   boolValue,
	FireSpread:    boolValue,
	MatchDuration: intValue,
}

// Attributes is an arena's policy table. Values are either bool or int.
type Attributes map[string]interface{}

// DefaultAttributes returns the table every arena starts out with.
func DefaultAttributes() Attributes {
	return Attributes{
		AllDamage:          true,
		BlockBreak:         true,
		BlockPlace:         true,
		BlockExplode:       true,
		PearlDamage:        true,
		FireSpread:         false,
		MatchDuration:      900,
		FFAKills:           20,
		CaptureRequirement: 3,
	}
}

// Set stores v under key. Integral numbers of any Go numeric type are stored
// as int so that values decoded from files compare the same as literals.
func (a Attributes) Set(key string, v interface{}) error {
	switch v := v.(type) {
	case bool:
		a[key] = v
	case int:
		a[key] = v
	case int32:
		a[key] = int(v)
	case int64:
		a[key] = int(v)
	case uint64:
		a[key] = int(v)
	case float64:
		if v != math.Trunc(v) {
			return fmt.Errorf("%w: %s = %v is not a whole number", ErrAttributeType, key, v)
		}
		a[key] = int(v)
	default:
		return fmt.Errorf("%w: %s = %v (%T)", ErrAttributeType, key, v, v)
	}
	return nil
}

func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Bool returns the boolean stored under key, false if it is missing or not a bool.
func (a Attributes) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// Int returns the integer stored under key, 0 if it is missing or not an int.
func (a Attributes) Int(key string) int {
	i, _ := a[key].(int)
	return i
}

func (a Attributes) Copy() Attributes {
	c := make(Attributes, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that all canonical keys are present with the right types,
// that the match lasts at least one second, and that the extra keys exist
// and hold integers.
func (a Attributes) Validate(extra ...string) error {
	for _, key := range sortedCanonicalKeys() {
		v, ok := a[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingAttribute, key)
		}
		switch canonical[key] {
		case boolValue:
			if _, ok := v.(bool); !ok {
				return fmt.Errorf("%w: %s must be a boolean, is %v", ErrAttributeType, key, v)
			}
		case intValue:
			if _, ok := v.(int); !ok {
				return fmt.Errorf("%w: %s must be an integer, is %v", ErrAttributeType, key, v)
			}
		}
	}
	if d := a.Int(MatchDuration); d <= 0 {
		return fmt.Errorf("%w: %s must be positive, is %d", ErrAttributeType, MatchDuration, d)
	}
	for _, key := range extra {
		v, ok := a[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingAttribute, key)
		}
		if _, ok := v.(int); !ok {
			return fmt.Errorf("%w: %s must be an integer, is %v", ErrAttributeType, key, v)
		}
	}
	return nil
}

func sortedCanonicalKeys() []string {
	keys := make([]string, 0, len(canonical))
	for k := range canonical {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
