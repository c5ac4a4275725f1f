// Command mal is the CLI entry point: a bare invocation starts the
// interactive REPL, a file argument loads and runs that file with *ARGV*
// bound to any remaining arguments, and -e evaluates a single expression.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/malcore/golisp/pkg/eval"
	"github.com/malcore/golisp/pkg/reader"
	"github.com/malcore/golisp/pkg/repl"
	"github.com/malcore/golisp/pkg/types"
)

func main() {
	var (
		help     = flag.Bool("help", false, "Show help message")
		evalFlag = flag.String("e", "", "Evaluate code directly instead of reading from a file")
		filename = flag.String("f", "", "File to execute")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                     # start the interactive REPL\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s script.lisp a b     # run a file, with *ARGV* bound to (\"a\" \"b\")\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -e '(+ 1 2)'        # evaluate an expression directly\n", os.Args[0])
	}
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	ev := eval.New()

	if *evalFlag != "" {
		runSource(ev, *evalFlag, true)
		return
	}

	args := flag.Args()
	file := *filename
	var argv []string
	if file == "" && len(args) > 0 {
		file = args[0]
		argv = args[1:]
	} else {
		argv = args
	}

	if file != "" {
		bindArgv(ev, argv)
		if err := runFile(ev, file); err != nil {
			fmt.Fprintf(os.Stderr, "Error executing file %s: %v\n", file, err)
			os.Exit(1)
		}
		return
	}

	bindArgv(ev, nil)
	if err := repl.Run(ev); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting REPL: %v\n", err)
		os.Exit(1)
	}
}

func bindArgv(ev *eval.Evaluator, argv []string) {
	items := make([]types.Value, len(argv))
	for i, a := range argv {
		items[i] = types.StringValue(a)
	}
	ev.Root.Set(types.SymbolValue("*ARGV*"), types.NewList(items...))
}

func runFile(ev *eval.Evaluator, path string) error {
	loadFile, err := ev.Root.Get(types.SymbolValue("load-file"))
	if err != nil {
		return err
	}
	_, err = ev.Apply(loadFile, []types.Value{types.StringValue(path)})
	return err
}

func runSource(ev *eval.Evaluator, src string, print bool) {
	form, ok, err := reader.Read(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		return
	}
	result, err := ev.Eval(form, ev.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if print {
		if _, isNil := result.(types.Nil); !isNil {
			fmt.Println(reader.PrStr(result, true))
		}
	}
}
