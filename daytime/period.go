package daytime

import (
	"fmt"
	"strconv"
	"time"
)

// A Period is the time elapsed between two Times.
//
// A period built from two instants covers less than a day: if end is
// earlier than start it is taken to fall on the following day.
// Periods returned by Add and Sub are anchored at midnight and keep
// the exact sum or difference, which may be negative or exceed a day.
//
// Periods compare and test equal by elapsed time only.
type Period struct {
	start, end Time
	elapsed    int64 // seconds
}

// Between returns the period from start forward to end.
func Between(start, end Time) Period {
	return Period{start: start, end: end, elapsed: wrap(end.secs() - start.secs())}
}

// BetweenFields is like Between but takes the fields of both instants.
// It fails with ErrInvalidArgument if any field is out of range.
func BetweenFields(h1, m1, s1, h2, m2, s2 int) (Period, error) {
	for _, f := range [2][3]int{{h1, m1, s1}, {h2, m2, s2}} {
		if detail := checkRange(f[0], f[1], f[2]); detail != "" {
			return Period{}, &Error{
				Op:     "period",
				Input:  fmt.Sprintf("%d:%d:%d-%d:%d:%d", h1, m1, s1, h2, m2, s2),
				Kind:   ErrInvalidArgument,
				Detail: detail,
			}
		}
	}
	start := Time{uint8(h1), uint8(m1), uint8(s1)}
	end := Time{uint8(h2), uint8(m2), uint8(s2)}
	return Between(start, end), nil
}

// ParseBetween is like Between but parses both instants as Parse does.
func ParseBetween(start, end string) (Period, error) {
	t1, err := parse("parse period start", start)
	if err != nil {
		return Period{}, err
	}
	t2, err := parse("parse period end", end)
	if err != nil {
		return Period{}, err
	}
	return Between(t1, t2), nil
}

// Seconds returns a period of n seconds starting at midnight.
// It fails with ErrInvalidArgument unless 0 <= n < SecondsPerDay.
func Seconds(n int64) (Period, error) {
	if n < 0 || n >= SecondsPerDay {
		return Period{}, &Error{
			Op:     "seconds",
			Input:  strconv.FormatInt(n, 10),
			Kind:   ErrInvalidArgument,
			Detail: fmt.Sprintf("want [0,%d)", SecondsPerDay),
		}
	}
	return anchored(n), nil
}

// ParseElapsed parses an elapsed time of the form H:M:S, with the same
// syntax and ranges as Parse, and returns it as a period starting at
// midnight.
func ParseElapsed(s string) (Period, error) {
	t, err := parse("parse elapsed", s)
	if err != nil {
		return Period{}, err
	}
	return Between(Midnight, t), nil
}

// anchored returns the period of n seconds from midnight.
// n is not range checked.
func anchored(n int64) Period {
	return Period{start: Midnight, end: fromSeconds(n), elapsed: n}
}

func (p Period) Start() Time { return p.start }
func (p Period) End() Time   { return p.end }

// Elapsed returns the length of p in seconds.
func (p Period) Elapsed() int64 { return p.elapsed }

// Duration returns the length of p as a time.Duration.
func (p Period) Duration() time.Duration {
	return time.Duration(p.elapsed) * time.Second
}

// String returns the elapsed time as HH:MM:SS. It does not wrap, so
// the sum of two long periods may print hours of 24 or more.
// A negative period is printed with a leading minus sign.
func (p Period) String() string {
	n, sgn := p.elapsed, ""
	if n < 0 {
		n, sgn = -n, "-"
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sgn, n/secondsPerHour, n/secondsPerMinute%60, n%secondsPerMinute)
}

// Compare compares the elapsed times of p and q, returning -1, 0 or +1.
func (p Period) Compare(q Period) int {
	switch {
	case p.elapsed < q.elapsed:
		return -1
	case p.elapsed > q.elapsed:
		return +1
	}
	return 0
}

// Equal reports whether p and q have the same elapsed time,
// regardless of their endpoints.
func (p Period) Equal(q Period) bool { return p.elapsed == q.elapsed }

func (p Period) Less(q Period) bool { return p.elapsed < q.elapsed }

// Add returns the sum of p and q as a period starting at midnight.
// The sum is not reduced modulo a day.
func (p Period) Add(q Period) Period {
	return anchored(p.elapsed + q.elapsed)
}

// Sub returns the difference of p and q as a period starting at
// midnight. The difference may be negative.
func (p Period) Sub(q Period) Period {
	return anchored(p.elapsed - q.elapsed)
}

// MarshalText implements encoding.TextMarshaler using the elapsed form.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts what
// ParseElapsed accepts, so periods of a day or more, or negative ones,
// do not round-trip.
func (p *Period) UnmarshalText(text []byte) error {
	q, err := ParseElapsed(string(text))
	if err != nil {
		return err
	}
	*p = q
	return nil
}
