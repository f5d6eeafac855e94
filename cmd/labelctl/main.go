// Command labelctl runs the label classifier over text files and manages
// the unit catalog schema.
package main

import (
	"os"

	"github.com/pkordes/parcel-intake/cmd/labelctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
