package daytime_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	core "go.daytime.dev/daytime"
	"go.daytime.dev/lib/daytime"
	libtime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarktest"
	"go.starlark.net/syntax"
)

func TestExecFile(t *testing.T) {
	thread := &starlark.Thread{Load: load}
	starlarktest.SetReporter(thread, t)
	predeclared := starlark.StringDict{
		daytime.ModuleName: daytime.Module,
		"time":             libtime.Module,
	}
	filename := filepath.Join("testdata", "daytime.star")
	if _, err := starlark.ExecFile(thread, filename, nil, predeclared); err != nil {
		if evalErr, ok := err.(*starlark.EvalError); ok {
			t.Fatal(evalErr.Backtrace())
		}
		t.Fatal(err)
	}
}

// load implements the 'load' operation as used in the tests.
func load(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	if module == "assert.star" {
		return starlarktest.LoadAssertModule()
	}
	return nil, fmt.Errorf("load not implemented")
}

func TestLoadModule(t *testing.T) {
	dict, err := daytime.LoadModule()
	if err != nil {
		t.Fatal(err)
	}
	if dict[daytime.ModuleName] != daytime.Module {
		t.Errorf("LoadModule()[%q] = %v", daytime.ModuleName, dict[daytime.ModuleName])
	}
}

func TestPerThreadNowReturnsCorrectTime(t *testing.T) {
	th := &starlark.Thread{}
	date := time.Date(1, 2, 3, 4, 5, 6, 7, time.UTC)
	daytime.SetNow(th, func() (time.Time, error) {
		return date, nil
	})

	res, err := starlark.Call(th, daytime.Module.Members["now"], nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.String(); got != "04:05:06" {
		t.Errorf("now() = %s, want 04:05:06", got)
	}
}

func TestPerThreadNowReturnsError(t *testing.T) {
	th := &starlark.Thread{}
	e := errors.New("no time")
	daytime.SetNow(th, func() (time.Time, error) {
		return time.Time{}, e
	})

	_, err := starlark.Call(th, daytime.Module.Members["now"], nil, nil)
	if !errors.Is(err, e) {
		t.Fatal("Expected equal error", e, err)
	}
}

func TestGlobalNowReturnsCorrectTime(t *testing.T) {
	th := &starlark.Thread{}

	oldNow := daytime.NowFunc
	defer func() {
		daytime.NowFunc = oldNow
	}()
	daytime.NowFunc = func() time.Time {
		return time.Date(2015, 3, 7, 23, 59, 59, 0, time.UTC)
	}

	res, err := starlark.Call(th, daytime.Module.Members["now"], nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.String(); got != "23:59:59" {
		t.Errorf("now() = %s, want 23:59:59", got)
	}
}

func TestGlobalNowReturnsErrorWhenNil(t *testing.T) {
	th := &starlark.Thread{}

	oldNow := daytime.NowFunc
	defer func() {
		daytime.NowFunc = oldNow
	}()
	daytime.NowFunc = nil

	if _, err := starlark.Call(th, daytime.Module.Members["now"], nil, nil); err == nil {
		t.Fatal("Expected to get an error")
	}
}

func TestAttrNames(t *testing.T) {
	v, err := starlark.Call(&starlark.Thread{}, daytime.Module.Members["seconds"], starlark.Tuple{starlark.MakeInt(90)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := v.(daytime.Period)
	want := []string{"duration", "elapsed", "end", "start"}
	if diff := cmp.Diff(want, p.AttrNames()); diff != "" {
		t.Errorf("AttrNames mismatch (-want +got):\n%s", diff)
	}
	for _, name := range want {
		if attr, err := p.Attr(name); err != nil || attr == nil {
			t.Errorf("Attr(%q) = %v, %v", name, attr, err)
		}
	}
	if attr, err := p.Attr("nope"); attr != nil || err != nil {
		t.Errorf("Attr(nope) = %v, %v, want nil, nil", attr, err)
	}
}

func TestBinaryOperands(t *testing.T) {
	eleven, ten := daytime.Time(mustTime(t, "11:00:00")), daytime.Time(mustTime(t, "10:00:00"))
	for _, test := range []struct {
		x, y    starlark.Value
		op      syntax.Token
		want    string
		wantErr string
	}{
		{eleven, ten, syntax.MINUS, "01:00:00", ""},
		{ten, eleven, syntax.MINUS, "23:00:00", ""},
		{period(t, 20), period(t, 5), syntax.MINUS, "00:00:15", ""},
		{period(t, 5), period(t, 20), syntax.MINUS, "-00:00:15", ""},
		{eleven, period(t, 60), syntax.MINUS, "10:59:00", ""},
		{period(t, 60), eleven, syntax.MINUS, "", "unknown binary op"},
	} {
		got, err := starlark.Binary(test.op, test.x, test.y)
		if test.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("%s %s %s: error = %v, want %q", test.x, test.op, test.y, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s %s %s: %v", test.x, test.op, test.y, err)
		} else if got.String() != test.want {
			t.Errorf("%s %s %s = %s, want %s", test.x, test.op, test.y, got, test.want)
		}
	}
}

func mustTime(t *testing.T, s string) core.Time {
	t.Helper()
	tm, err := core.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func period(t *testing.T, n int64) daytime.Period {
	t.Helper()
	p, err := core.Seconds(n)
	if err != nil {
		t.Fatal(err)
	}
	return daytime.Period(p)
}
