package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dkoosis/lastrun/pkg/schema"
)

// runFragment prints GraphQL documents from the fragment registry.
func runFragment(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lastrun fragment", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", schema.JobStateFragment.Name, "Fragment to print")
	fields := fs.Bool("fields", false, "Print the flattened field paths instead of the document")
	query := fs.Bool("query", false, "Print the full job states query document")
	list := fs.Bool("list", false, "List registered fragment names")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "lastrun fragment: unexpected argument %q\n", fs.Arg(0))
		return 2
	}

	var (
		out string
		err error
	)
	switch {
	case *list:
		out = strings.Join(schema.Fragments.Names(), "\n") + "\n"
	case *query:
		out, err = schema.Fragments.OperationDocument(schema.JobStatesQuery)
	case *fields:
		var paths []string
		paths, err = schema.Fragments.Fields(*name)
		out = strings.Join(paths, "\n") + "\n"
	default:
		out, err = schema.Fragments.Document(*name)
	}
	if err != nil {
		fmt.Fprintf(stderr, "lastrun fragment: %v\n", err)
		return 2
	}
	fmt.Fprint(stdout, out)
	return 0
}
