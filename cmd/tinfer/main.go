// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command tinfer type-checks source files and prints the inferred type of each top-level
// declaration.
//
//	tinfer [-ast] [-trace] [-classes] [-builtins builtins.yaml] [file ...]
//
// With no files, the program is read from standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sanity-io/litter"
	"github.com/wdamron/tinfer"
	"github.com/wdamron/tinfer/ast"
	"github.com/wdamron/tinfer/types"
)

var (
	dumpAST      = flag.Bool("ast", false, "dump the syntax tree of each program")
	trace        = flag.Bool("trace", false, "trace constraints and solved bindings to stderr")
	builtinsPath = flag.String("builtins", "", "YAML file declaring the builtins (defaults to print, fetchJS, fetch_inbuilt)")
	classes      = flag.Bool("classes", false, "print the type-classes attached to type-variables")
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: tinfer [flags] [file ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	builtins := tinfer.DefaultBuiltins()
	if *builtinsPath != "" {
		var err error
		if builtins, err = tinfer.LoadBuiltinsFile(*builtinsPath); err != nil {
			log.Fatal(err)
		}
	}

	opts := []tinfer.Option{}
	if *trace {
		opts = append(opts, tinfer.WithLogger(log.New(os.Stderr, "trace: ", 0)))
	}
	checker := tinfer.NewChecker(opts...)

	failed := false
	if flag.NArg() == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		failed = !run(checker, "", string(src), builtins)
	}
	for _, path := range flag.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		if !run(checker, path, string(src), builtins) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func run(checker *tinfer.Checker, name, src string, builtins tinfer.Builtins) bool {
	prog, err := checker.Check(name, src, builtins)
	if err != nil {
		reportError(err)
		return false
	}
	if *dumpAST {
		litter.Config.HidePrivateFields = false
		litter.Dump(prog)
	}
	if name != "" {
		fmt.Printf("%s:\n", name)
	}
	for _, stmt := range prog.Body {
		switch n := stmt.(type) {
		case *ast.Let:
			for _, v := range n.Vars {
				printBinding(v.Name, checker.TypeOf(v))
			}
		case *ast.FuncDecl:
			printBinding(n.Name, checker.Lookup(n.Name))
		}
	}
	return true
}

func printBinding(name string, t types.Type) {
	if *classes {
		fmt.Printf("%s: %s\n", name, types.TypeStringWithClasses(t))
		return
	}
	fmt.Printf("%s: %s\n", name, types.TypeString(t))
}

func reportError(err error) {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		log.Printf("\x1b[31merror:\x1b[0m %v", err)
		return
	}
	log.Printf("error: %v", err)
}
