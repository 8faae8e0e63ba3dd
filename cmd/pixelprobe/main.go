// Command pixelprobe prints the corner and center pixels of an image.
//
// Usage:
//
//	pixelprobe <input>
package main

import (
	"os"

	"github.com/Fepozopo/unborder/pkg/cli"
)

func main() {
	os.Exit(cli.RunSample(os.Args[1:], os.Stdout, os.Stderr))
}
