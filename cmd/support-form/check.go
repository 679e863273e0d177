package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-supportform/pkg/controller"
	"github.com/goliatone/go-supportform/pkg/renderers/page"
)

func checkCmd(root *rootOptions) *cobra.Command {
	var (
		file     string
		location string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that a host page satisfies the form's DOM contract",
		Long: `Render the configured host page (or read --file), bind the controller to
it, submit once and report the status and every field error. Use
--url "/?demo=1" to submit the demo dataset.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			var src io.Reader
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
				src = bytes.NewReader(data)
			} else {
				renderer, err := newPageRenderer(cfg)
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				if err := renderer.Render(cmd.Context(), &buf); err != nil {
					return err
				}
				src = &buf
			}

			doc, err := page.Inspect(src, location)
			if err != nil {
				return err
			}

			ctrl := controller.New(doc, controller.WithLogger(logger))
			if err := ctrl.Initialize(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range ctrl.Registry().ElementIDs() {
				if !doc.Has(id) {
					fmt.Fprintf(out, "warning: element %q is missing\n", id)
				}
			}

			doc.Submit()

			errs := ctrl.Errors()
			for _, field := range ctrl.Registry().Fields() {
				if msg, ok := errs[field.ID]; ok {
					fmt.Fprintf(out, "%s (%s): %s\n", field.Label, field.ID, msg)
				}
			}
			status := doc.Status()
			fmt.Fprintf(out, "status [%s]: %s\n", ctrl.Result(), status.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "HTML page to check instead of the rendered host page")
	cmd.Flags().StringVar(&location, "url", "/", "page URL used for demo seeding")
	return cmd
}
