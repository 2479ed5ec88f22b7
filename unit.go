package humandur

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned by ParseUnit for unrecognized unit names.
var ErrUnknownUnit = errors.New("unknown time unit")

// Unit selects how a bare number without a suffix is interpreted.
type Unit int

const (
	Microsecond Unit = iota + 1
	Nanosecond
	Millisecond
	Second
	Minute
	Hour
	Day
)

var unitNames = map[Unit]string{
	Microsecond: "microsecond",
	Nanosecond:  "nanosecond",
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
}

var unitAliases = map[string]Unit{
	"us": Microsecond, "µs": Microsecond, "micros": Microsecond,
	"ns": Nanosecond, "nanos": Nanosecond,
	"ms": Millisecond, "millis": Millisecond,
	"s": Second, "sec": Second,
	"m": Minute, "min": Minute,
	"h": Hour,
	"d": Day,
}

// Valid reports whether u is one of the declared units.
func (u Unit) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit accepts a unit name ("minute"), its plural ("minutes") or its
// short suffix ("m", "min").
func ParseUnit(s string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if u, ok := unitAliases[key]; ok {
		return u, nil
	}
	key = strings.TrimSuffix(key, "s")
	for u, name := range unitNames {
		if name == key {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	v, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
