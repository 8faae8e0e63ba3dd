// Command unborder makes the dark border around an image transparent.
//
// Usage:
//
//	unborder [-threshold N] [-trim] [-preview] [-v] <input> <output.png>
//
// Every dark pixel connected to a dark corner is cleared to (0, 0, 0, 0) and
// the result is written as PNG.
package main

import (
	"os"

	"github.com/Fepozopo/unborder/pkg/cli"
)

func main() {
	os.Exit(cli.RunRemoveBorder(os.Args[1:], os.Stdout, os.Stderr))
}
