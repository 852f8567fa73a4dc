// The daytime command interprets a Starlark file with the daytime
// module of wall-clock times and periods predeclared.
// With no arguments it starts a read-eval-print loop (REPL), or, if
// standard input is not a terminal, executes the program read from it.
package main // import "go.daytime.dev/cmd/daytime"

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"go.daytime.dev/daytime"
	libdaytime "go.daytime.dev/lib/daytime"
	"go.daytime.dev/repl"
	"go.starlark.net/lib/json"
	"go.starlark.net/lib/math"
	libtime "go.starlark.net/lib/time"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"golang.org/x/term"
)

// flags
var (
	cpuprofile = flag.String("cpuprofile", "", "gather Go CPU profile in this file")
	memprofile = flag.String("memprofile", "", "gather Go memory profile in this file")
	showenv    = flag.Bool("showenv", false, "on success, print final global environment")
	execprog   = flag.String("c", "", "execute program `prog`")
	history    = flag.String("history", defaultHistory(), "REPL history `file`; empty disables history")
	fixedNow   = flag.String("now", "", "make daytime.now() return the fixed time `hh:mm:ss`")
)

func init() {
	// non-standard dialect flags
	flag.BoolVar(&resolve.AllowSet, "set", resolve.AllowSet, "allow set data type")
	flag.BoolVar(&resolve.AllowRecursion, "recursion", resolve.AllowRecursion, "allow while statements and recursive functions")
	flag.BoolVar(&resolve.AllowGlobalReassign, "globalreassign", resolve.AllowGlobalReassign, "allow reassignment of globals, and if/for/while statements at top level")
}

func defaultHistory() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "daytime", "history")
}

// builtinModules are the modules a program may load by name.
var builtinModules = map[string]func() (starlark.StringDict, error){
	libdaytime.ModuleName: libdaytime.LoadModule,
	"time": func() (starlark.StringDict, error) {
		return starlark.StringDict{"time": libtime.Module}, nil
	},
}

// fixedClock returns a clock that always reads t. The date is in UTC so
// that no daylight-saving gap can move the reading.
func fixedClock(t daytime.Time) func() time.Time {
	return func() time.Time {
		y, m, d := time.Now().UTC().Date()
		return time.Date(y, m, d, t.Hours(), t.Minutes(), t.Seconds(), 0, time.UTC)
	}
}

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("daytime: ")
	log.SetFlags(0)
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		check(err)
		err = pprof.StartCPUProfile(f)
		check(err)
		defer func() {
			pprof.StopCPUProfile()
			err := f.Close()
			check(err)
		}()
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		check(err)
		defer func() {
			runtime.GC()
			err := pprof.Lookup("heap").WriteTo(f, 0)
			check(err)
			err = f.Close()
			check(err)
		}()
	}

	if *fixedNow != "" {
		t, err := daytime.Parse(*fixedNow)
		if err != nil {
			log.Print(err)
			return 1
		}
		libdaytime.NowFunc = fixedClock(t)
	}

	thread := &starlark.Thread{Load: repl.MakeLoad(builtinModules)}
	globals := make(starlark.StringDict)

	starlark.Universe[libdaytime.ModuleName] = libdaytime.Module
	starlark.Universe["time"] = libtime.Module
	starlark.Universe["json"] = json.Module
	starlark.Universe["math"] = math.Module

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	switch {
	case flag.NArg() == 1 || *execprog != "":
		var (
			filename string
			src      interface{}
			err      error
		)
		if *execprog != "" {
			filename = "cmdline"
			src = *execprog
		} else {
			filename = flag.Arg(0)
		}
		thread.Name = "exec " + filename
		globals, err = starlark.ExecFile(thread, filename, src, nil)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
	case flag.NArg() == 0 && !interactive:
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Print(err)
			return 1
		}
		thread.Name = "exec <stdin>"
		globals, err = starlark.ExecFile(thread, "<stdin>", src, nil)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
	case flag.NArg() == 0:
		fmt.Println("Welcome to daytime (go.daytime.dev)")
		thread.Name = "REPL"
		if *history != "" {
			if err := os.MkdirAll(filepath.Dir(*history), 0o755); err != nil {
				log.Printf("history disabled: %v", err)
				*history = ""
			}
		}
		repl.REPL(thread, globals, repl.Config{HistoryFile: *history})
	default:
		log.Print("want at most one Starlark file name")
		return 1
	}

	if *showenv {
		for _, name := range globals.Keys() {
			if !strings.HasPrefix(name, "_") {
				fmt.Fprintf(os.Stderr, "%s = %s\n", name, globals[name])
			}
		}
	}

	return 0
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
