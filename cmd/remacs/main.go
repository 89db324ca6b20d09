package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rowhit/remacs/internal/config"
	"github.com/rowhit/remacs/internal/eval"
	"github.com/rowhit/remacs/internal/lisp"
)

func main() {
	// Catch internal panics and show a user-friendly error. Signaled
	// conditions never reach this: the evaluation helpers catch them.
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "remacs.yaml", "startup configuration file")
	evalExpr := flag.String("eval", "", "evaluate expression and exit")
	loadFile := flag.String("load", "", "load file before entering the REPL")
	batch := flag.Bool("batch", false, "non-interactive: no REPL, exit after loading")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	config.IsBatchMode = *batch || !interactive || *evalExpr != "" || flag.NArg() > 0

	rt := eval.New(eval.WithMessageLogSize(cfg.MessageLogSize))

	for _, path := range cfg.LoadFiles {
		if !runFile(rt, path) {
			os.Exit(1)
		}
	}
	if *loadFile != "" {
		if !runFile(rt, *loadFile) {
			os.Exit(1)
		}
	}
	for _, arg := range flag.Args() {
		if !isSourceFile(arg) {
			fmt.Fprintf(os.Stderr, "%s: not a recognized source file\n", arg)
			os.Exit(1)
		}
		if !runFile(rt, arg) {
			os.Exit(1)
		}
	}
	if *evalExpr != "" {
		result, ok := evalTop(rt, *evalExpr)
		if !ok {
			os.Exit(1)
		}
		fmt.Println(result.Inspect())
		return
	}
	if config.IsBatchMode {
		if *loadFile == "" && len(cfg.LoadFiles) == 0 && flag.NArg() == 0 {
			// Batch with nothing loaded: evaluate stdin.
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if _, ok := evalTop(rt, string(input)); !ok {
				os.Exit(1)
			}
		}
		return
	}

	repl(rt, cfg.Prompt)
}

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func runFile(rt *eval.Runtime, path string) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	_, ok := evalTop(rt, string(src))
	return ok
}

// evalTop evaluates src with a top-level condition handler: uncaught
// conditions are reported the way the evaluator's own top level would
// report them, and evaluation of the current input stops.
func evalTop(rt *eval.Runtime, src string) (result lisp.Object, ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cond, isCond := r.(*eval.Condition)
		if !isCond {
			panic(r)
		}
		fmt.Fprintln(os.Stderr, cond.Error())
		ok = false
	}()
	result, err := rt.EvalString(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, false
	}
	return result, true
}

func repl(rt *eval.Runtime, prompt string) {
	fmt.Printf("remacs (session %s)\n", rt.SessionID())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if result, ok := evalTop(rt, line); ok {
			fmt.Println(result.Inspect())
		}
	}
}
