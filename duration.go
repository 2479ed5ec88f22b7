package humandur

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	nanosPerMicro  = 1_000
	nanosPerMilli  = 1_000_000
	nanosPerSec    = 1_000_000_000
	microsPerSec   = 1_000_000
	millisPerSec   = 1_000
	secsPerMinute  = 60
	secsPerHour    = 60 * secsPerMinute
	secsPerDay     = 24 * secsPerHour
	maxStdDuration = uint64(math.MaxInt64)
)

// Duration is a non-negative span of time with nanosecond resolution. It
// holds up to 2^64-1 seconds, well past the range of time.Duration.
//
// The zero value is a zero-length duration.
type Duration struct {
	secs  uint64
	nanos uint32 // always < nanosPerSec
}

// FromNanos returns a Duration of n nanoseconds.
func FromNanos(n uint64) Duration {
	return Duration{secs: n / nanosPerSec, nanos: uint32(n % nanosPerSec)}
}

// FromMicros returns a Duration of n microseconds.
func FromMicros(n uint64) Duration {
	return Duration{secs: n / microsPerSec, nanos: uint32(n%microsPerSec) * nanosPerMicro}
}

// FromMillis returns a Duration of n milliseconds.
func FromMillis(n uint64) Duration {
	return Duration{secs: n / millisPerSec, nanos: uint32(n%millisPerSec) * nanosPerMilli}
}

// FromSecs returns a Duration of n seconds.
func FromSecs(n uint64) Duration {
	return Duration{secs: n}
}

// FromStd converts a time.Duration. Negative values are rejected.
func FromStd(d time.Duration) (Duration, error) {
	if d < 0 {
		return Duration{}, fmt.Errorf("%w: %s", ErrNegative, d)
	}
	return FromNanos(uint64(d)), nil
}

// Secs returns the whole seconds of d.
func (d Duration) Secs() uint64 { return d.secs }

// SubsecNanos returns the fractional part of d in nanoseconds.
func (d Duration) SubsecNanos() uint32 { return d.nanos }

func (d Duration) IsZero() bool { return d.secs == 0 && d.nanos == 0 }

// Compare returns -1, 0 or +1 as d is shorter than, equal to or longer than o.
func (d Duration) Compare(o Duration) int {
	if c := cmp.Compare(d.secs, o.secs); c != 0 {
		return c
	}
	return cmp.Compare(d.nanos, o.nanos)
}

// Std converts d to a time.Duration, failing with ErrOverflow when d is
// longer than about 292 years.
func (d Duration) Std() (time.Duration, error) {
	if d.secs > maxStdDuration/nanosPerSec {
		return 0, fmt.Errorf("%w: %s does not fit time.Duration", ErrOverflow, d)
	}
	n := d.secs*nanosPerSec + uint64(d.nanos)
	if n > maxStdDuration {
		return 0, fmt.Errorf("%w: %s does not fit time.Duration", ErrOverflow, d)
	}
	return time.Duration(n), nil
}

// String formats d as space separated terms, largest unit first
// ("1d 2h 30m", "1s 500ms"). The zero duration is "0s".
func (d Duration) String() string {
	if d.IsZero() {
		return "0s"
	}
	var parts []string
	add := func(v uint64, suffix string) {
		if v > 0 {
			parts = append(parts, strconv.FormatUint(v, 10)+suffix)
		}
	}
	add(d.secs/secsPerDay, "d")
	add(d.secs%secsPerDay/secsPerHour, "h")
	add(d.secs%secsPerHour/secsPerMinute, "m")
	add(d.secs%secsPerMinute, "s")
	add(uint64(d.nanos/nanosPerMilli), "ms")
	add(uint64(d.nanos%nanosPerMilli/nanosPerMicro), "us")
	add(uint64(d.nanos%nanosPerMicro), "ns")
	return strings.Join(parts, " ")
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Bare numbers are read
// as seconds.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := Parse(string(text), Second)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
