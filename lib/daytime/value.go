package daytime

import (
	"fmt"
	"sort"
	"time"

	"go.daytime.dev/daytime"
	libtime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Time is a Starlark representation of a wall-clock time of day.
type Time daytime.Time

var (
	_ starlark.Unpacker   = (*Time)(nil)
	_ starlark.HasAttrs   = Time{}
	_ starlark.HasBinary  = Time{}
	_ starlark.Comparable = Time{}
)

// Unpack accepts a daytime.time or a string in the form H:M:S.
func (t *Time) Unpack(v starlark.Value) error {
	switch x := v.(type) {
	case Time:
		*t = x
		return nil
	case starlark.String:
		u, err := daytime.Parse(string(x))
		if err != nil {
			return err
		}
		*t = Time(u)
		return nil
	}
	return fmt.Errorf("cannot convert %s to %s", v.Type(), t.Type())
}

// String implements the Stringer interface.
func (t Time) String() string { return daytime.Time(t).String() }

// Type returns "daytime.time".
func (t Time) Type() string { return "daytime.time" }

// Freeze is a no-op: times are immutable.
func (t Time) Freeze() {}

func (t Time) Hash() (uint32, error) {
	return uint32(daytime.Time(t).SinceMidnight() / time.Second), nil
}

// Truth reports true for every time, midnight included.
func (t Time) Truth() starlark.Bool { return starlark.True }

func (t Time) Attr(name string) (starlark.Value, error) {
	x := daytime.Time(t)
	switch name {
	case "hours":
		return starlark.MakeInt(x.Hours()), nil
	case "minutes":
		return starlark.MakeInt(x.Minutes()), nil
	case "seconds":
		return starlark.MakeInt(x.Seconds()), nil
	case "since_midnight":
		return libtime.Duration(x.SinceMidnight()), nil
	}
	return builtinAttr(t, name, timeMethods)
}

func (t Time) AttrNames() []string {
	return append(builtinAttrNames(timeMethods),
		"hours",
		"minutes",
		"seconds",
		"since_midnight",
	)
}

// CompareSameType orders times by hours, minutes, then seconds.
func (t Time) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	return threeway(op, daytime.Time(t).Compare(daytime.Time(yV.(Time)))), nil
}

// Binary implements binary operators, which satisfies the starlark.HasBinary
// interface. operators:
//
//	time + period = time
//	time - period = time
//	time - time = period
func (t Time) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	x := daytime.Time(t)

	switch op {
	case syntax.PLUS:
		switch y := yV.(type) {
		case Period:
			return Time(x.Add(daytime.Period(y))), nil
		case Time:
			return nil, fmt.Errorf("cannot add %s to %s", t.Type(), yV.Type())
		}
	case syntax.MINUS:
		switch y := yV.(type) {
		case Period:
			if side == starlark.Left {
				return Time(x.Sub(daytime.Period(y))), nil
			}
		case Time:
			// The period runs from the right operand to the left one.
			return Period(daytime.Between(daytime.Time(y), x)), nil
		}
	}

	return nil, nil
}

var timeMethods = map[string]builtinMethod{
	"until": timeUntil,
}

func timeUntil(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var end Time
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 1, &end); err != nil {
		return nil, err
	}
	recv := daytime.Time(recV.(Time))
	return Period(recv.Until(daytime.Time(end))), nil
}

// Period is a Starlark representation of the time elapsed between two
// times of day.
type Period daytime.Period

var (
	_ starlark.HasAttrs   = Period{}
	_ starlark.HasBinary  = Period{}
	_ starlark.Comparable = Period{}
)

// String implements the Stringer interface.
func (p Period) String() string { return daytime.Period(p).String() }

// Type returns "daytime.period".
func (p Period) Type() string { return "daytime.period" }

// Freeze is a no-op: periods are immutable.
func (p Period) Freeze() {}

// Hash depends on the elapsed time only, consistent with equality.
func (p Period) Hash() (uint32, error) {
	n := daytime.Period(p).Elapsed()
	return uint32(n) ^ uint32(n>>32), nil
}

func (p Period) Truth() starlark.Bool { return daytime.Period(p).Elapsed() != 0 }

func (p Period) Attr(name string) (starlark.Value, error) {
	x := daytime.Period(p)
	switch name {
	case "start":
		return Time(x.Start()), nil
	case "end":
		return Time(x.End()), nil
	case "elapsed":
		return starlark.MakeInt64(x.Elapsed()), nil
	case "duration":
		return libtime.Duration(x.Duration()), nil
	}
	return nil, nil
}

func (p Period) AttrNames() []string {
	return []string{
		"duration",
		"elapsed",
		"end",
		"start",
	}
}

// CompareSameType orders periods by elapsed time, ignoring endpoints.
func (p Period) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	return threeway(op, daytime.Period(p).Compare(daytime.Period(yV.(Period)))), nil
}

// Binary implements binary operators, which satisfies the starlark.HasBinary
// interface. operators:
//
//	period + period = period
//	period - period = period
//	period + time = time
func (p Period) Binary(op syntax.Token, yV starlark.Value, _ starlark.Side) (starlark.Value, error) {
	x := daytime.Period(p)

	switch op {
	case syntax.PLUS:
		switch y := yV.(type) {
		case Period:
			return Period(x.Add(daytime.Period(y))), nil
		case Time:
			return Time(daytime.Time(y).Add(x)), nil
		}
	case syntax.MINUS:
		if y, ok := yV.(Period); ok {
			return Period(x.Sub(daytime.Period(y))), nil
		}
	}

	return nil, nil
}

type builtinMethod func(fnname string, recv starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func builtinAttr(recv starlark.Value, name string, methods map[string]builtinMethod) (starlark.Value, error) {
	method := methods[name]
	if method == nil {
		return nil, nil // no such method
	}

	impl := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return method(b.Name(), b.Receiver(), args, kwargs)
	}
	return starlark.NewBuiltin(name, impl).BindReceiver(recv), nil
}

func builtinAttrNames(methods map[string]builtinMethod) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op syntax.Token, cmp int) bool {
	switch op {
	case syntax.EQL:
		return cmp == 0
	case syntax.NEQ:
		return cmp != 0
	case syntax.LE:
		return cmp <= 0
	case syntax.LT:
		return cmp < 0
	case syntax.GE:
		return cmp >= 0
	case syntax.GT:
		return cmp > 0
	}
	panic(op)
}
