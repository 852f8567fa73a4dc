package daytime

import (
	"fmt"

	"google.golang.org/protobuf/types/known/durationpb"
)

// Proto returns the elapsed time of p as a google.protobuf.Duration.
func (p Period) Proto() *durationpb.Duration {
	return &durationpb.Duration{Seconds: p.elapsed}
}

// PeriodFromProto returns the period of d starting at midnight.
// d must be a whole number of seconds in [0, SecondsPerDay).
func PeriodFromProto(d *durationpb.Duration) (Period, error) {
	n, err := daySeconds("period from proto", d)
	if err != nil {
		return Period{}, err
	}
	return anchored(n), nil
}

// Proto returns the time elapsed since midnight as a
// google.protobuf.Duration.
func (t Time) Proto() *durationpb.Duration {
	return &durationpb.Duration{Seconds: t.secs()}
}

// TimeFromProto returns the time d after midnight.
// d must be a whole number of seconds in [0, SecondsPerDay).
func TimeFromProto(d *durationpb.Duration) (Time, error) {
	n, err := daySeconds("time from proto", d)
	if err != nil {
		return Time{}, err
	}
	return fromSeconds(n), nil
}

func daySeconds(op string, d *durationpb.Duration) (int64, error) {
	if d == nil {
		return 0, &Error{Op: op, Input: "<nil>", Kind: ErrInvalidArgument}
	}
	secs, nanos := d.GetSeconds(), d.GetNanos()
	var detail string
	switch {
	case nanos != 0:
		detail = "sub-second precision is not supported"
	case secs < 0 || secs >= SecondsPerDay:
		detail = fmt.Sprintf("want [0,%d) seconds", SecondsPerDay)
	default:
		return secs, nil
	}
	return 0, &Error{
		Op:     op,
		Input:  fmt.Sprintf("%ds%dns", secs, nanos),
		Kind:   ErrInvalidArgument,
		Detail: detail,
	}
}
