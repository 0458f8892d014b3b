package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/agiangrant/devicecheck/cmd/devicecheck/commands"
)

const version = "0.1.0"

func main() {
	root := commands.NewRootCommand(version, afero.NewOsFs())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
