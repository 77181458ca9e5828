// Command registry is the entry point for the registry CLI binary.
package main

import (
	"os"

	cli "sheetregistry/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
