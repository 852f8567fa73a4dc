package repl

import (
	"sort"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"go.starlark.net/starlark"
)

var _ readline.AutoCompleter = (*completer)(nil)

// completer completes the dotted name before the cursor against the
// session globals, the universe, and the attributes of the value the
// name's prefix refers to.
type completer struct {
	globals starlark.StringDict
}

// Do returns the suffixes that complete the name ending at pos,
// and the length of that name.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && isNameRune(line[start-1]) {
		start--
	}
	word := string(line[start:pos])

	var suffixes [][]rune
	for _, cand := range c.candidates(word) {
		if strings.HasPrefix(cand, word) && cand != word {
			suffixes = append(suffixes, []rune(cand[len(word):]))
		}
	}
	return suffixes, len(line[start:pos])
}

// candidates returns the sorted full names that may complete word.
func (c *completer) candidates(word string) []string {
	var names []string
	if dot := strings.LastIndexByte(word, '.'); dot >= 0 {
		v := c.lookup(word[:dot])
		if v, ok := v.(starlark.HasAttrs); ok {
			for _, attr := range v.AttrNames() {
				names = append(names, word[:dot+1]+attr)
			}
		}
	} else {
		for name := range c.globals {
			names = append(names, name)
		}
		for name := range starlark.Universe {
			if _, ok := c.globals[name]; !ok {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// lookup resolves a dotted name such as "daytime.midnight",
// returning nil if any part is missing.
func (c *completer) lookup(name string) starlark.Value {
	parts := strings.Split(name, ".")
	v, ok := c.globals[parts[0]]
	if !ok {
		v = starlark.Universe[parts[0]]
	}
	for _, attr := range parts[1:] {
		x, ok := v.(starlark.HasAttrs)
		if !ok {
			return nil
		}
		var err error
		if v, err = x.Attr(attr); err != nil {
			return nil
		}
	}
	return v
}

func isNameRune(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
