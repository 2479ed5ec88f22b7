// Package humandur parses human-readable durations ("1h30m", "500ms",
// "2 days") and bare numbers, which are read in a caller-chosen fallback
// unit.
package humandur

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/bits"
	"strconv"
	"time"

	"github.com/lucrnz/humandur/internal/logging"
	"github.com/lucrnz/humandur/internal/richfmt"
)

type phase string

const (
	phaseRich  phase = "rich"
	phasePlain phase = "plain"
)

// Parse converts input into a Duration. A rich-format expression such as
// "1h 30m" always wins; otherwise input must be a bare unsigned base-10
// integer, counted in units of fallback. Values past 2^64-1 seconds, in
// either form, are rejected with ErrOverflow.
//
// Every error returned matches ErrInvalidDuration.
func Parse(input string, fallback Unit) (Duration, error) {
	d, _, err := parse(input, fallback)
	return d, err
}

// ParseContext is Parse with a debug record, sent to the logger attached to
// ctx with WithLogger, naming the phase that resolved input. Without an
// attached logger nothing is written.
func ParseContext(ctx context.Context, input string, fallback Unit) (Duration, error) {
	d, ph, err := parse(input, fallback)
	log := logging.FromContext(ctx)
	if err != nil {
		log.DebugContext(ctx, "duration rejected",
			slog.String("input", input),
			slog.String("unit", fallback.String()),
			slog.Any("error", err))
		return Duration{}, err
	}
	log.DebugContext(ctx, "duration parsed",
		slog.String("input", input),
		slog.String("unit", fallback.String()),
		slog.String("phase", string(ph)),
		slog.String("duration", d.String()))
	return d, nil
}

func parse(input string, fallback Unit) (Duration, phase, error) {
	secs, nanos, err := richfmt.Parse(input)
	switch {
	case err == nil:
		return Duration{secs: secs, nanos: nanos}, phaseRich, nil
	case errors.Is(err, richfmt.ErrRange):
		return Duration{}, "", &InvalidDurationError{Input: input, Unit: fallback, Err: ErrOverflow}
	}

	n, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return Duration{}, "", &InvalidDurationError{Input: input, Unit: fallback}
	}
	d, err := fromCount(n, fallback)
	if err != nil {
		return Duration{}, "", &InvalidDurationError{Input: input, Unit: fallback, Err: err}
	}
	return d, phasePlain, nil
}

// fromCount interprets n as a count of unit.
func fromCount(n uint64, unit Unit) (Duration, error) {
	switch unit {
	case Microsecond:
		return FromMicros(n), nil
	case Nanosecond:
		return FromNanos(n), nil
	case Millisecond:
		return FromMillis(n), nil
	case Second:
		return FromSecs(n), nil
	case Minute:
		return mulSecs(n, secsPerMinute, unit)
	case Hour:
		return mulSecs(n, secsPerHour, unit)
	case Day:
		return mulSecs(n, secsPerDay, unit)
	default:
		return Duration{}, fmt.Errorf("%w: %d", ErrUnknownUnit, int(unit))
	}
}

func mulSecs(n, factor uint64, unit Unit) (Duration, error) {
	hi, secs := bits.Mul64(n, factor)
	if hi != 0 {
		return Duration{}, fmt.Errorf("%w: %d %ss exceed %d seconds", ErrOverflow, n, unit, uint64(math.MaxUint64))
	}
	return FromSecs(secs), nil
}

// ParseDurationFallbackUs parses input, reading bare numbers as microseconds.
func ParseDurationFallbackUs(input string) (Duration, error) {
	return Parse(input, Microsecond)
}

// ParseDurationFallbackNs parses input, reading bare numbers as nanoseconds.
func ParseDurationFallbackNs(input string) (Duration, error) {
	return Parse(input, Nanosecond)
}

// ParseDurationFallbackMs parses input, reading bare numbers as milliseconds.
func ParseDurationFallbackMs(input string) (Duration, error) {
	return Parse(input, Millisecond)
}

// ParseDurationFallbackSec parses input, reading bare numbers as seconds.
func ParseDurationFallbackSec(input string) (Duration, error) {
	return Parse(input, Second)
}

// ParseDurationFallbackMin parses input, reading bare numbers as minutes.
func ParseDurationFallbackMin(input string) (Duration, error) {
	return Parse(input, Minute)
}

// ParseDurationFallbackHour parses input, reading bare numbers as hours.
func ParseDurationFallbackHour(input string) (Duration, error) {
	return Parse(input, Hour)
}

// ParseDurationFallbackDay parses input, reading bare numbers as days.
func ParseDurationFallbackDay(input string) (Duration, error) {
	return Parse(input, Day)
}

// WithLogger returns a copy of ctx carrying l for ParseContext.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return logging.WithContext(ctx, l)
}

// NewLogger builds a slog.Logger writing to w. level is one of
// debug, info, warn or error; format is "text" or "json".
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	return logging.New(w, logging.Options{Level: level, Format: format})
}

// stdOrErr converts d for callers that need a time.Duration.
func stdOrErr(input string, unit Unit, d Duration) (time.Duration, error) {
	std, err := d.Std()
	if err != nil {
		return 0, &InvalidDurationError{Input: input, Unit: unit, Err: err}
	}
	return std, nil
}
