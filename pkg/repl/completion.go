package repl

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/malcore/golisp/pkg/env"
)

// lispCompleter implements readline.AutoCompleter by completing the current
// word against every symbol bound in the root environment.
type lispCompleter struct {
	env *env.Env
}

func (c *lispCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	word, start := currentWord(line, pos)
	candidates := c.env.Names()

	var matches []string
	for _, name := range candidates {
		if strings.HasPrefix(name, word) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	out := make([][]rune, len(matches))
	for i, m := range matches {
		out[i] = []rune(m[len(word):])
	}
	return out, pos - start
}

// currentWord finds the symbol-like token ending at pos.
func currentWord(line []rune, pos int) (word string, start int) {
	start = pos
	for start > 0 && isSymbolChar(line[start-1]) {
		start--
	}
	return string(line[start:pos]), start
}

func isSymbolChar(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', ' ', '\t', '\n', '"', '\'', '`', ',':
		return false
	}
	return true
}

var _ readline.AutoCompleter = (*lispCompleter)(nil)
