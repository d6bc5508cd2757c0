// wakergen generates forwarding wake capability implementations for a
// wrapper struct with exactly one field. Each generated method delegates to
// the identically-named operation on that field.
//
// It is meant to be driven by a go:generate directive in the file declaring
// the wrapper:
//
//	//go:generate wakergen -type CounterHandle -impls wakeref,wake,clone
//
// Structs with zero fields, more than one field, non-struct types and
// generic declarations are rejected before anything is written.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lucretiel/cooked-waker/internal/gen"
)

func main() {
	typeName := flag.String("type", "", "name of the single-field wrapper struct")
	implList := flag.String("impls", "wakeref,wake,clone", "comma separated implementations to generate (wakeref, wake, clone, drop)")
	input := flag.String("input", os.Getenv("GOFILE"), "source file declaring the type, defaults to $GOFILE")
	output := flag.String("output", "", "output file, defaults to <type>_waker.go next to the input")
	flag.Parse()

	if *typeName == "" || *input == "" {
		fmt.Fprintln(os.Stderr, "wakergen: -type and -input are required")
		flag.Usage()
		os.Exit(2)
	}

	src, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wakergen: %v\n", err)
		os.Exit(1)
	}

	formatted, err := gen.File(*input, src, *typeName, strings.Split(*implList, ","))
	if err != nil {
		fmt.Fprintf(os.Stderr, "wakergen: %v\n", err)
		os.Exit(1)
	}

	target := *output
	if target == "" {
		name := strings.ToLower(*typeName) + "_waker.go"
		target = filepath.Join(filepath.Dir(*input), name)
	}

	if err := os.WriteFile(target, formatted, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "wakergen: %v\n", err)
		os.Exit(1)
	}
}
