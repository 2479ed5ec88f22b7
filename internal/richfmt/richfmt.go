// Package richfmt recognizes composite human-readable durations such as
// "1h30m", "500ms" or "2 days 4 hours".
package richfmt

import (
	"errors"
	"math/bits"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"

	str2duration "github.com/xhit/go-str2duration/v2"
)

var (
	// ErrNoMatch is returned when the input is not a rich-format expression.
	ErrNoMatch = errors.New("not a rich-format duration")
	// ErrRange is returned for well-formed expressions longer than 2^64-1 seconds.
	ErrRange = errors.New("rich-format duration exceeds 2^64-1 seconds")
)

const nanosPerSec = uint64(time.Second)

// scale is the size of one unit: whole seconds for units of a second and
// longer, nanoseconds for the sub-second ones.
type scale struct {
	secs  uint64
	nanos uint64
}

var scales = map[string]scale{
	"ns": {nanos: 1},
	"us": {nanos: 1_000},
	"ms": {nanos: 1_000_000},
	"s":  {secs: 1},
	"m":  {secs: 60},
	"h":  {secs: 3_600},
	"d":  {secs: 86_400},
	"w":  {secs: 604_800},
}

// suffixes maps every accepted unit spelling to the unit understood by str2duration.
var suffixes = map[string]string{
	"ns": "ns", "nsec": "ns", "nanos": "ns", "nanosecond": "ns", "nanoseconds": "ns",
	"us": "us", "µs": "us", "μs": "us", "usec": "us", "micros": "us", "microsecond": "us", "microseconds": "us",
	"ms": "ms", "msec": "ms", "millis": "ms", "millisecond": "ms", "milliseconds": "ms",
	"s": "s", "sec": "s", "secs": "s", "second": "s", "seconds": "s",
	"m": "m", "min": "m", "mins": "m", "minute": "m", "minutes": "m",
	"h": "h", "hr": "h", "hrs": "h", "hour": "h", "hours": "h",
	"d": "d", "day": "d", "days": "d",
	"w": "w", "week": "w", "weeks": "w",
}

type term struct {
	whole string
	frac  string
	unit  string // canonical str2duration unit
}

// Parse parses a human-readable duration string into whole seconds and
// nanoseconds. Supports standard Go duration units (h, m, s, ms, us, ns)
// plus days (d) and weeks (w), their long names ("hours", "min", "msec", ...)
// and whitespace between terms.
// Examples: "1h", "1h30m", "2d", "1w2d3h", "300s", "1 hour 30 minutes"
//
// Every term needs a unit suffix, so a bare number is never a match. The
// integer part of each term is counted in uint64 seconds, so the result is
// not bound to the range of time.Duration; fractions go through str2duration.
func Parse(s string) (uint64, uint32, error) {
	terms, ok := split(s)
	if !ok {
		return 0, 0, ErrNoMatch
	}

	var totalSecs, totalNanos uint64
	for _, t := range terms {
		ts, tn, err := t.value()
		if err != nil {
			return 0, 0, err
		}
		totalNanos += tn
		carry := totalNanos / nanosPerSec
		totalNanos %= nanosPerSec

		var c1, c2 uint64
		totalSecs, c1 = bits.Add64(totalSecs, ts, 0)
		totalSecs, c2 = bits.Add64(totalSecs, carry, 0)
		if c1|c2 != 0 {
			return 0, 0, ErrRange
		}
	}
	return totalSecs, uint32(totalNanos), nil
}

// value returns the term as seconds plus nanoseconds below one second.
func (t term) value() (uint64, uint64, error) {
	n, err := strconv.ParseUint(t.whole, 10, 64)
	if err != nil {
		// the digits were validated by split, so only range errors remain
		return 0, 0, ErrRange
	}

	var secs, nanos uint64
	sc := scales[t.unit]
	if sc.secs > 0 {
		hi, lo := bits.Mul64(n, sc.secs)
		if hi != 0 {
			return 0, 0, ErrRange
		}
		secs = lo
	} else {
		perSec := nanosPerSec / sc.nanos
		secs = n / perSec
		nanos = n % perSec * sc.nanos
	}

	if t.frac != "" {
		// a fraction is below one week, well within time.Duration
		fd, err := str2duration.ParseDuration("0." + t.frac + t.unit)
		if err != nil || fd < 0 {
			return 0, 0, ErrNoMatch
		}
		nanos += uint64(fd)
		var carry uint64
		secs, carry = bits.Add64(secs, nanos/nanosPerSec, 0)
		nanos %= nanosPerSec
		if carry != 0 {
			return 0, 0, ErrRange
		}
	}
	return secs, nanos, nil
}

// split tokenizes s into <number><unit> terms.
func split(s string) ([]term, bool) {
	var terms []term
	i := skipSpace(s, 0)
	for i < len(s) {
		var t term
		start := i
		i = skipDigits(s, i)
		if i == start {
			return nil, false
		}
		t.whole = s[start:i]
		if i < len(s) && s[i] == '.' {
			i++
			frac := i
			i = skipDigits(s, i)
			if i == frac {
				return nil, false
			}
			t.frac = s[frac:i]
		}

		i = skipSpace(s, i)
		unitStart := i
		for i < len(s) {
			r, size := utf8.DecodeRuneInString(s[i:])
			if !unicode.IsLetter(r) {
				break
			}
			i += size
		}
		unit, ok := suffixes[s[unitStart:i]]
		if !ok {
			return nil, false
		}
		t.unit = unit

		terms = append(terms, t)
		i = skipSpace(s, i)
	}
	return terms, len(terms) > 0
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
