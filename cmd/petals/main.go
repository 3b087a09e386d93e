// Command petals is a terminal companion for the petal journal API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "petals:", err)
		os.Exit(1)
	}
}
