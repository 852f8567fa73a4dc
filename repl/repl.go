// Package repl provides a read/eval/print loop for Starlark programs
// that work with times of day.
//
// It supports readline-style command editing, persistent history,
// tab completion of global names and module members such as
// daytime.parse_time, and interrupts through Control-C.
//
// An input line that parses as an expression is evaluated and its
// value printed. Otherwise lines are read until a blank line and the
// whole chunk is executed as statements.
package repl // import "go.daytime.dev/repl"

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	prompt     = ">>> "
	contPrompt = "... "
)

// Config holds the optional settings of a session.
type Config struct {
	// HistoryFile, if set, is where entered lines are saved across sessions.
	HistoryFile string
}

var interrupted = make(chan os.Signal, 1)

// REPL reads, evaluates and prints items until end of input.
//
// Before evaluating each item, it sets the thread local "context" to a
// context.Context that is cancelled by a SIGINT (Control-C).
func REPL(thread *starlark.Thread, globals starlark.StringDict, cfg Config) {
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    &completer{globals: globals},
		InterruptPrompt: "^C",
	})
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()

	for {
		err := rep(rl, thread, globals)
		if err == readline.ErrInterrupt {
			fmt.Println(err)
			continue
		}
		if err != nil {
			break
		}
	}
	fmt.Println()
}

// rep reads, evaluates, and prints one item.
//
// It returns an error (possibly readline.ErrInterrupt or io.EOF)
// only if readline failed. Starlark errors are printed.
func rep(rl *readline.Instance, thread *starlark.Thread, globals starlark.StringDict) error {
	// Control-C during Readline yields ErrInterrupt rather than a SIGINT,
	// so the signal only reaches an item that is being evaluated.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-interrupted:
			cancel()
		case <-ctx.Done():
		}
	}()
	thread.SetLocal("context", ctx)

	var eof bool
	rl.SetPrompt(prompt)
	next := func() ([]byte, error) {
		line, err := rl.Readline()
		rl.SetPrompt(contPrompt)
		if err != nil {
			eof = errors.Is(err, io.EOF)
			return nil, err
		}
		return []byte(line + "\n"), nil
	}

	f, err := syntax.ParseCompoundStmt("<stdin>", next)
	if err != nil {
		if eof {
			return io.EOF
		}
		PrintError(err)
		return nil
	}

	// Bindings made by load statements stay visible to later items.
	defer func(prev bool) { resolve.LoadBindsGlobally = prev }(resolve.LoadBindsGlobally)
	resolve.LoadBindsGlobally = true

	if expr := soleExpr(f); expr != nil {
		v, err := starlark.EvalExpr(thread, expr, globals)
		if err != nil {
			PrintError(err)
			return nil
		}
		if v != starlark.None {
			fmt.Println(v)
		}
		return nil
	}
	if err := starlark.ExecREPLChunk(f, thread, globals); err != nil {
		PrintError(err)
	}
	return nil
}

func soleExpr(f *syntax.File) syntax.Expr {
	if len(f.Stmts) == 1 {
		if stmt, ok := f.Stmts[0].(*syntax.ExprStmt); ok {
			return stmt.X
		}
	}
	return nil
}

// PrintError prints the error to stderr,
// or its backtrace if it is a Starlark evaluation error.
func PrintError(err error) {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		fmt.Fprintln(os.Stderr, evalErr.Backtrace())
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}

// MakeLoad returns a simple sequential implementation of module loading.
// Modules named in builtin are returned as is; any other name is
// executed as a Starlark file. Each function returned by MakeLoad
// accesses a distinct private cache.
func MakeLoad(builtin map[string]func() (starlark.StringDict, error)) func(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	type entry struct {
		globals starlark.StringDict
		err     error
	}

	cache := make(map[string]*entry)

	return func(thread *starlark.Thread, module string) (starlark.StringDict, error) {
		e, ok := cache[module]
		if e != nil {
			return e.globals, e.err
		}
		if ok {
			// request for a module whose loading is in progress
			return nil, fmt.Errorf("cycle in load graph")
		}

		cache[module] = nil // loading
		if loadBuiltin, ok := builtin[module]; ok {
			globals, err := loadBuiltin()
			e = &entry{globals, err}
		} else {
			thread := &starlark.Thread{Name: "exec " + module, Load: thread.Load, Print: thread.Print}
			globals, err := starlark.ExecFile(thread, module, nil, nil)
			e = &entry{globals, err}
		}
		cache[module] = e
		return e.globals, e.err
	}
}
