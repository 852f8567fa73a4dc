package daytime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute

	// SecondsPerDay is the length of the cyclic day in which Times live.
	SecondsPerDay = 24 * secondsPerHour
)

// Time is a wall-clock time of day with one-second resolution.
// The zero value is midnight.
type Time struct {
	hour, min, sec uint8
}

// Midnight is 00:00:00.
var Midnight Time

// New returns the time hours:minutes:seconds.
// It fails with ErrInvalidArgument unless 0 <= hours <= 23
// and 0 <= minutes, seconds <= 59.
func New(hours, minutes, seconds int) (Time, error) {
	if detail := checkRange(hours, minutes, seconds); detail != "" {
		return Time{}, &Error{
			Op:     "new",
			Input:  fmt.Sprintf("%d:%d:%d", hours, minutes, seconds),
			Kind:   ErrInvalidArgument,
			Detail: detail,
		}
	}
	return Time{uint8(hours), uint8(minutes), uint8(seconds)}, nil
}

var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{1,2}:\d{1,2}$`)

// Parse parses a time of the form H:M:S, where each field has one
// or two decimal digits. Unpadded fields such as "7:5:0" are accepted.
func Parse(s string) (Time, error) {
	return parse("parse", s)
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func parse(op, s string) (Time, error) {
	if !clockPattern.MatchString(s) {
		return Time{}, &Error{Op: op, Input: s, Kind: ErrInvalidFormat}
	}
	var fields [3]int
	for i, f := range strings.Split(s, ":") {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return Time{}, &Error{Op: op, Input: s, Kind: ErrInvalidFormat, Detail: err.Error()}
		}
		fields[i] = int(n)
	}
	if detail := checkRange(fields[0], fields[1], fields[2]); detail != "" {
		return Time{}, &Error{Op: op, Input: s, Kind: ErrInvalidArgument, Detail: detail}
	}
	return Time{uint8(fields[0]), uint8(fields[1]), uint8(fields[2])}, nil
}

// checkRange returns a description of the first field out of range,
// or "" if all are valid.
func checkRange(hours, minutes, seconds int) string {
	switch {
	case hours < 0 || hours > 23:
		return fmt.Sprintf("hours %d out of range [0,23]", hours)
	case minutes < 0 || minutes > 59:
		return fmt.Sprintf("minutes %d out of range [0,59]", minutes)
	case seconds < 0 || seconds > 59:
		return fmt.Sprintf("seconds %d out of range [0,59]", seconds)
	}
	return ""
}

// Of returns the wall-clock reading of t in its own location,
// truncated to the second.
func Of(t time.Time) Time {
	h, m, s := t.Clock()
	return Time{uint8(h), uint8(m), uint8(s)}
}

// fromSeconds returns the time n seconds after midnight, wrapping
// around the day in either direction.
func fromSeconds(n int64) Time {
	n = wrap(n)
	return Time{
		hour: uint8(n / secondsPerHour),
		min:  uint8(n / secondsPerMinute % 60),
		sec:  uint8(n % secondsPerMinute),
	}
}

// wrap reduces n into [0, SecondsPerDay).
func wrap(n int64) int64 {
	n %= SecondsPerDay
	if n < 0 {
		n += SecondsPerDay
	}
	return n
}

func (t Time) Hours() int   { return int(t.hour) }
func (t Time) Minutes() int { return int(t.min) }
func (t Time) Seconds() int { return int(t.sec) }

func (t Time) secs() int64 {
	return int64(t.hour)*secondsPerHour + int64(t.min)*secondsPerMinute + int64(t.sec)
}

// SinceMidnight returns the time elapsed from midnight to t.
func (t Time) SinceMidnight() time.Duration {
	return time.Duration(t.secs()) * time.Second
}

// String returns t in the form HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.min, t.sec)
}

// Compare compares t and u by hours, then minutes, then seconds,
// returning -1, 0 or +1.
func (t Time) Compare(u Time) int {
	switch {
	case t.hour != u.hour:
		return sign(int(t.hour) - int(u.hour))
	case t.min != u.min:
		return sign(int(t.min) - int(u.min))
	}
	return sign(int(t.sec) - int(u.sec))
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return +1
	}
	return 0
}

func (t Time) Equal(u Time) bool  { return t == u }
func (t Time) Before(u Time) bool { return t.Compare(u) < 0 }
func (t Time) After(u Time) bool  { return t.Compare(u) > 0 }

// Add returns the time p.Elapsed() seconds after t, wrapping past midnight.
func (t Time) Add(p Period) Time {
	return fromSeconds(t.secs() + p.elapsed)
}

// Sub returns the time p.Elapsed() seconds before t, wrapping back
// past midnight.
func (t Time) Sub(p Period) Time {
	return fromSeconds(t.secs() - p.elapsed)
}

// Until returns the period from t to u, which is Between(t, u).
func (t Time) Until(u Time) Period {
	return Between(t, u)
}

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(text []byte) error {
	u, err := parse("unmarshal", string(text))
	if err != nil {
		return err
	}
	*t = u
	return nil
}
