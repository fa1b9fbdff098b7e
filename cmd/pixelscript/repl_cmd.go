/*
File    : pixelscript/cmd/pixelscript/repl_cmd.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akashmaji946/pixelscript/pixel"
	"github.com/akashmaji946/pixelscript/repl"
)

// newReplCmd builds "pixelscript repl [--image IN] [--width W --height H]":
// an interactive session against either a loaded image or a synthetic
// black grid, for exploring the language without a web upload.
func newReplCmd() *cobra.Command {
	var imagePath string
	var width, height int

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive pixelscript session",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := replGrid(imagePath, width, height)
			if err != nil {
				return err
			}

			r := repl.NewRepl(
				"pixelscript",
				"0.1.0",
				"akashmaji946",
				"--------------------------------------------------------------",
				"ps >>> ",
			)
			r.Start(os.Stdout, grid)
			return nil
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "load this image instead of a synthetic grid")
	cmd.Flags().IntVar(&width, "width", 16, "width of the synthetic grid when --image is omitted")
	cmd.Flags().IntVar(&height, "height", 16, "height of the synthetic grid when --image is omitted")

	return cmd
}

func replGrid(imagePath string, width, height int) (*pixel.Grid, error) {
	if imagePath == "" {
		return pixel.NewGrid(width, height), nil
	}
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()
	return pixel.Decode(f)
}
