// Command icflsa computes suffix arrays of the sequences in a file and
// prints factorizations, comparison counters and phase timings.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "icflsa",
		Usage: "suffix arrays from inverse canonical Lyndon factorizations",
		Commands: []*cli.Command{
			runCmd,
			factorCmd,
		},
	}
}
