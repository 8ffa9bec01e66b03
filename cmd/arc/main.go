package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arclang/arc/internal"
	"github.com/labstack/gommon/color"
	log "github.com/sirupsen/logrus"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	showTree := flag.Bool("ast", false, "print the parsed tree before evaluating")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if flag.NArg() > 1 {
		fmt.Println("Usage: arc [flags] [/path/to/source.arc]")
		return
	}

	if flag.NArg() == 1 {
		executeFile(flag.Arg(0), *showTree)
		return
	}
	runREPL(*showTree)
}

// executeFile runs a source file line by line against one session, skipping
// blank and comment-only lines.
func executeFile(path string, showTree bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		log.WithField("file", path).Fatal(err)
	}

	session := internal.NewSession(stdPrinter{})
	lines := strings.Split(string(b), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if showTree {
			if tree, ok := session.Tree(line); ok && tree != "" {
				fmt.Fprintln(os.Stderr, tree)
			}
		}
		before := len(session.Errors())
		_, ok := session.Eval(line)
		if !ok {
			fmt.Fprintf(os.Stderr, "Line %d: Parse error\n", i+1)
			continue
		}
		if len(session.Errors()) > before {
			fmt.Fprintf(os.Stderr, "Line %d: Error occurred\n", i+1)
		}
	}

	if errs := session.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "\n=== Errors ===")
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, color.Red(e))
		}
	}
	log.WithFields(log.Fields{
		"file":   path,
		"lines":  len(lines),
		"errors": len(session.Errors()),
	}).Debug("file executed")
}

// runREPL reads lines from stdin and prints each produced value with its
// type tag, or the errors the line recorded.
func runREPL(showTree bool) {
	fmt.Println(color.Green("=== Arc REPL ==="))
	fmt.Println("Type expressions to evaluate them. Type 'exit' or 'quit' to exit.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  let x = 10")
	fmt.Println("  x + 5")
	fmt.Println("  print(x)")
	fmt.Println("  const pi = 3.14")
	fmt.Println()

	session := internal.NewSession(stdPrinter{})
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.Cyan(">> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		if line == "" {
			continue
		}
		if showTree {
			if tree, ok := session.Tree(line); ok && tree != "" {
				fmt.Println(tree)
			}
		}
		before := len(session.Errors())
		value, ok := session.Eval(line)
		if !ok {
			fmt.Println(color.Red("Parse error: Invalid syntax"))
			continue
		}
		errs := session.Errors()
		if len(errs) > before {
			fmt.Println(color.Red("Error:"))
			for _, e := range errs[before:] {
				fmt.Println("  " + color.Red(e))
			}
			continue
		}
		if value != nil {
			fmt.Printf("%s : %s\n", value, color.Yellow(value.Type().String()))
		}
		log.WithField("errors", len(errs)).Debug("line evaluated")
	}
}
