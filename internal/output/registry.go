// internal/output/registry.go
package output

import (
	"fmt"
	"io"

	"primefact-core/factor"
)

// Config carries the presentation flags a writer may honor.
type Config struct {
	Exponents bool
	Header    bool
}

// Writer consumes factorizations one at a time and finishes with Close,
// which emits anything the format buffers (the JSON array, for example).
type Writer interface {
	Write(factor.Factorization) error
	Close() error
}

type factory func(w io.Writer, cfg Config) Writer

// registry maps format → constructor. Formats register in init() blocks
// of their own files.
var registry = map[string]factory{}

func register(format string, fn factory) { registry[format] = fn }

// New returns a writer for the named format.
func New(format string, w io.Writer, cfg Config) (Writer, error) {
	fn, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, cfg), nil
}
