// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"primefact/internal/version"
)

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Values to factor; empty means read stdin.
	Args []string

	// Output
	Output    string
	Exponents bool
	Header    bool // true unless --no-header

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: prime factorization by trial division

Version: %s

Usage:
  %s [flags] [n ...]

Factors each positive integer given as an argument. With no arguments,
integers are read from stdin, one per line ('#' starts a comment).

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Output, "output", FormatText, "output format: text | tsv | json | jsonl [text]")
	fs.BoolVar(&opt.Exponents, "exponents", false, "group repeated primes as powers (2^2 x 3) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in tsv [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Args = fs.Args()
	opt.Header = !noHeader

	switch opt.Output {
	case FormatText, FormatTSV, FormatJSON, FormatJSONL:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
