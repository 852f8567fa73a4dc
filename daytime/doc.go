// Package daytime provides wall-clock times of day and the periods
// between them.
//
// A Time is a reading of a 24-hour clock with one-second resolution
// and no date or location. A Period is the time elapsed from one Time
// to another, moving forward and wrapping through midnight if needed:
//
//	p, _ := daytime.ParseBetween("23:00:00", "01:00:00")
//	fmt.Println(p) // 02:00:00
//
// Times and Periods are immutable values. Times may be compared with ==;
// Periods should be compared with Period.Equal, which ignores endpoints.
// Shifting a Time by a Period wraps around the day; adding or
// subtracting Periods does not.
//
// Constructors report malformed text with ErrInvalidFormat and
// out-of-range fields with ErrInvalidArgument, both wrapped in *Error.
package daytime // import "go.daytime.dev/daytime"
