/*
File    : pixelscript/cmd/pixelscript/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Command pixelscript is the CLI entry point: run a program file against
an image, drop into an interactive REPL, or serve the upload/filter/
filtered web workflow. Subcommands are wired with spf13/cobra.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "pixelscript",
		Short: "Run, explore, and serve the pixelscript image-filter language",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
