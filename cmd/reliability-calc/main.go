// Command reliability-calc computes supply reliability indices and expected
// losses from energy not supplied for a 110/10 kV substation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rshade/reliability-calc/internal/reliability"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

// execute runs one invocation and returns the process exit code.
// Errors are reported once, as "error: <msg>" on stderr.
func execute(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, getenv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return fail(stderr, err)
	}

	logger := newLogger(cfg, stderr)

	if err := run(cfg, reliability.NewEngine(), stdout, logger, time.Now()); err != nil {
		return fail(stderr, err)
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, "error:", err)
	return 1
}
