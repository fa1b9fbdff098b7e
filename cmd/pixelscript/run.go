/*
File    : pixelscript/cmd/pixelscript/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akashmaji946/pixelscript/eval"
	"github.com/akashmaji946/pixelscript/pixel"
)

// newRunCmd builds "pixelscript run <program> --image IN --out OUT": the
// host -> core "run(text)" contract, driven from the command line
// instead of the web handlers.
func newRunCmd() *cobra.Command {
	var imagePath, outPath string
	var stepBudget int

	cmd := &cobra.Command{
		Use:   "run <program-file>",
		Short: "Evaluate a pixelscript program against an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading program: %w", err)
			}

			f, err := os.Open(imagePath)
			if err != nil {
				return fmt.Errorf("opening image: %w", err)
			}
			grid, err := pixel.Decode(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("decoding image: %w", err)
			}

			evaluator := eval.NewEvaluator(grid)
			if stepBudget > 0 {
				evaluator.SetStepBudget(stepBudget)
			}
			if _, err := evaluator.Run(string(src)); err != nil {
				return err
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer out.Close()

			if strings.HasSuffix(strings.ToLower(outPath), ".png") {
				return grid.EncodePNG(out)
			}
			return grid.EncodeJPEG(out, 90)
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "path to the source image (required)")
	cmd.Flags().StringVar(&outPath, "out", "out.png", "path to write the filtered image")
	cmd.Flags().IntVar(&stepBudget, "step-budget", 0, "abort after this many evaluated AST nodes (0 = unbounded)")
	cmd.MarkFlagRequired("image")

	return cmd
}
