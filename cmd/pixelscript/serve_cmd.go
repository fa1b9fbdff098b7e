/*
File    : pixelscript/cmd/pixelscript/serve_cmd.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akashmaji946/pixelscript/internal/config"
	"github.com/akashmaji946/pixelscript/web"
)

// newServeCmd builds "pixelscript serve [--config FILE]": the upload /
// write-a-filter / view-the-result web workflow implemented in
// web.Server.
func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the image upload and filter web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			srv, err := web.NewServer(web.Config{
				Addr:           cfg.Addr,
				StaticDir:      cfg.StaticDir,
				MaxUploadBytes: cfg.MaxUploadBytes,
				StepBudget:     cfg.StepBudget,
			})
			if err != nil {
				return err
			}

			fmt.Printf("pixelscript serving on %s\n", cfg.Addr)
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "pixelscript.yaml", "path to the host config file")
	return cmd
}
