// Package repl implements the interactive REPL: a balanced-paren
// multi-line reader, a categorized ErrorFormatter, and tab completion over
// the root environment's bindings.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/malcore/golisp/pkg/eval"
	"github.com/malcore/golisp/pkg/reader"
)

const prompt = "user> "
const continuationPrompt = "      "

// historyFileName is kept in the user's home directory.
const historyFileName = "mal_history.txt"

// Run starts the interactive REPL against ev until EOF or "quit"/"exit".
func Run(ev *eval.Evaluator) error {
	completer := &lispCompleter{env: ev.Root}

	config := &readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyPath(),
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	defer rl.Close()

	printWelcome()
	formatter := NewErrorFormatter()

	for {
		input, err := readCompleteExpression(rl)
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				break
			}
			fmt.Fprintf(os.Stderr, "input error: %v\n", err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		evalAndPrint(ev, input, formatter)
	}

	printGoodbye()
	return nil
}

func evalAndPrint(ev *eval.Evaluator, input string, formatter *ErrorFormatter) {
	form, ok, err := reader.Read(input)
	if err != nil {
		fmt.Println(formatter.FormatErrorWithSuggestion(err))
		return
	}
	if !ok {
		return
	}
	result, err := ev.Eval(form, ev.Root)
	if err != nil {
		fmt.Println(formatter.FormatErrorWithSuggestion(err))
		return
	}
	resultColor := color.New(color.FgGreen)
	fmt.Printf("=> %s\n", resultColor.Sprint(reader.PrStr(result, true)))
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return filepath.Join(home, historyFileName)
}

func printWelcome() {
	titleColor := color.New(color.FgCyan, color.Bold)
	instructionColor := color.New(color.FgYellow)

	titleColor.Println("Welcome to golisp!")
	instructionColor.Println("Type expressions to evaluate them, or 'quit' to exit.")
	instructionColor.Println("Multi-line expressions are supported: the REPL waits for balanced parentheses.")
	fmt.Println()
}

func printGoodbye() {
	color.New(color.FgMagenta, color.Bold).Println("Goodbye!")
}

// readCompleteExpression reads lines from rl until parentheses balance,
// respecting string literals and escapes so that a paren inside a string
// doesn't count.
func readCompleteExpression(rl *readline.Instance) (string, error) {
	var lines []string
	depth := 0
	inString := false
	escaped := false
	first := true

	for {
		if first {
			rl.SetPrompt(prompt)
			first = false
		} else {
			rl.SetPrompt(continuationPrompt)
		}

		line, err := rl.Readline()
		if err != nil {
			return strings.Join(lines, "\n"), err
		}
		lines = append(lines, line)

		trimmed := strings.TrimSpace(line)
		if len(lines) == 1 && (trimmed == "quit" || trimmed == "exit") {
			return trimmed, nil
		}

		for _, ch := range line {
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				if inString {
					escaped = true
				}
			case '"':
				inString = !inString
			case '(', '[', '{':
				if !inString {
					depth++
				}
			case ')', ']', '}':
				if !inString {
					depth--
				}
			case ';':
				if !inString {
					goto doneLine
				}
			}
		}
	doneLine:

		joined := strings.Join(lines, "\n")
		if depth <= 0 && containsExpression(joined) {
			break
		}
	}

	return strings.Join(lines, "\n"), nil
}

func containsExpression(input string) bool {
	for _, line := range strings.Split(input, "\n") {
		inString := false
		escaped := false
		for i, ch := range line {
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				if inString {
					escaped = true
				}
			case '"':
				inString = !inString
			case ';':
				if !inString {
					line = line[:i]
				}
			}
		}
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}
