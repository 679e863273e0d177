package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/schema"
)

func schemaCmd(_ *rootOptions) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Export the support request fields as an OpenAPI document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := schema.Build(cmd.Context(), model.SupportRequest(), schema.WithInfo("Support request", version))
			if err != nil {
				return err
			}
			out, err := schema.Marshal(doc, schema.Format(format))
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(schema.FormatJSON), "output format (json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
