package daytime

import (
	"fmt"
	"time"

	"go.daytime.dev/daytime"
	libtime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// ModuleName defines the expected name for this Module when used in the
// starlark runtime.
const ModuleName = "daytime"

// Module daytime is a Starlark module of wall-clock times of day and the
// periods between them.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"time":         starlark.NewBuiltin("time", newTime),
		"parse_time":   starlark.NewBuiltin("parse_time", parseTime),
		"period":       starlark.NewBuiltin("period", newPeriod),
		"parse_period": starlark.NewBuiltin("parse_period", parsePeriod),
		"seconds":      starlark.NewBuiltin("seconds", seconds),
		"of":           starlark.NewBuiltin("of", of),
		"now":          starlark.NewBuiltin("now", now),

		"midnight":        Time(daytime.Midnight),
		"seconds_per_day": starlark.MakeInt(daytime.SecondsPerDay),
	},
}

// LoadModule loads the daytime module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

// NowFunc is a function that generates the current time. Intentionally
// exported so that it can be overridden, for example by applications that
// require their Starlark scripts to be fully deterministic.
var NowFunc = time.Now

const nowLocalKey = "daytime.now"

// SetNow sets the thread-local clock consulted by now(), taking
// precedence over NowFunc.
func SetNow(thread *starlark.Thread, nowFunc func() (time.Time, error)) {
	thread.SetLocal(nowLocalKey, nowFunc)
}

func now(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	if nowFunc, ok := thread.Local(nowLocalKey).(func() (time.Time, error)); ok {
		t, err := nowFunc()
		if err != nil {
			return nil, err
		}
		return Time(daytime.Of(t)), nil
	}
	if NowFunc == nil {
		return nil, fmt.Errorf("%s: NowFunc is not set", b.Name())
	}
	return Time(daytime.Of(NowFunc())), nil
}

func newTime(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var hours, minutes, secs int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "hours?", &hours, "minutes?", &minutes, "seconds?", &secs); err != nil {
		return nil, err
	}
	t, err := daytime.New(hours, minutes, secs)
	if err != nil {
		return nil, err
	}
	return Time(t), nil
}

func parseTime(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	t, err := daytime.Parse(s)
	if err != nil {
		return nil, err
	}
	return Time(t), nil
}

// period(start, end) accepts a daytime.time or a string for either end.
func newPeriod(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var start, end Time
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "start", &start, "end", &end); err != nil {
		return nil, err
	}
	return Period(daytime.Between(daytime.Time(start), daytime.Time(end))), nil
}

func parsePeriod(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	p, err := daytime.ParseElapsed(s)
	if err != nil {
		return nil, err
	}
	return Period(p), nil
}

func seconds(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var n int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &n); err != nil {
		return nil, err
	}
	p, err := daytime.Seconds(int64(n))
	if err != nil {
		return nil, err
	}
	return Period(p), nil
}

// of(t) returns the wall-clock reading of a time.time value.
func of(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	t, ok := v.(libtime.Time)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want time.time", b.Name(), v.Type())
	}
	return Time(daytime.Of(time.Time(t))), nil
}
