package main

import (
	"os"

	"sentigo/cmd/sentigo/commands"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
