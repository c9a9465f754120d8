package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		// cli.Exit errors have already been printed and exited on.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
