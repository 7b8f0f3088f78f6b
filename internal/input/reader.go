// internal/input/reader.go
package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseValue converts one token to an int64. It accepts optional
// surrounding whitespace and nothing else; malformed text is fatal to the
// run, so the error carries the offending token.
func ParseValue(tok string) (int64, error) {
	s := strings.TrimSpace(tok)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", tok)
	}
	return n, nil
}

// ForEachValue streams integers from r, one per line. Blank lines are
// skipped, '#' starts a comment (whole-line or trailing). The first parse
// failure or callback error stops the scan. The context is checked
// between lines so Ctrl-C interrupts long pipes.
func ForEachValue(ctx context.Context, r io.Reader, fn func(int64) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := ParseValue(line)
		if err != nil {
			return fmt.Errorf("stdin line %d: %w", lineNo, err)
		}
		if err := fn(n); err != nil {
			return err
		}
	}
	return sc.Err()
}

// ForEachArg feeds each argv token through the same parser and callback.
func ForEachArg(ctx context.Context, args []string, fn func(int64) error) error {
	for _, a := range args {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := ParseValue(a)
		if err != nil {
			return err
		}
		if err := fn(n); err != nil {
			return err
		}
	}
	return nil
}
