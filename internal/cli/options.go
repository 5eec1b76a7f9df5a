// Package cli implements the billing command: argument parsing and the
// file-to-file billing run behind cmd/billing.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ErrHelp is returned by Parse when -h/--help was given.
var ErrHelp = errors.New("help requested")

// Options are the parsed command-line arguments.
type Options struct {
	Src  string
	Dest string
}

const usage = `usage: billing -s <file> -d <file>
 -d,--dest <file>   destination file
 -h,--help          print this help
 -s,--src <file>    source file
`

// PrintUsage writes the usage text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, usage)
}

// Parse reads the billing arguments. Both the short and the long form of each
// option are accepted. Returns ErrHelp when help was requested (checked before
// required options), otherwise an error describing the first syntax problem.
func Parse(args []string) (Options, error) {
	var opts Options
	var help bool

	fs := flag.NewFlagSet("billing", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.Src, "s", "", "source file")
	fs.StringVar(&opts.Src, "src", "", "source file")
	fs.StringVar(&opts.Dest, "d", "", "destination file")
	fs.StringVar(&opts.Dest, "dest", "", "destination file")
	fs.BoolVar(&help, "h", false, "print this help")
	fs.BoolVar(&help, "help", false, "print this help")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if help {
		return Options{}, ErrHelp
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unrecognized argument: %s", fs.Arg(0))
	}

	var missing []string
	if opts.Src == "" {
		missing = append(missing, "s")
	}
	if opts.Dest == "" {
		missing = append(missing, "d")
	}
	if len(missing) > 0 {
		return Options{}, fmt.Errorf("missing required options: %s", strings.Join(missing, ", "))
	}
	return opts, nil
}
