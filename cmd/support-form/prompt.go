package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-supportform/pkg/controller"
	"github.com/goliatone/go-supportform/pkg/renderers/tui"
)

func promptCmd(root *rootOptions) *cobra.Command {
	var (
		demoMode    bool
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the support form interactively in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			location := "/"
			if demoMode {
				location = "/?demo=1"
			}

			session := tui.New(location,
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithMaxAttempts(maxAttempts),
			)
			ctrl := controller.New(session, controller.WithLogger(logger))
			if err := ctrl.Initialize(); err != nil {
				return err
			}

			err = session.Run(cmd.Context())
			if errors.Is(err, tui.ErrAborted) {
				logger.Info("prompt aborted")
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&demoMode, "demo", false, "prefill the prompts with the demo dataset")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", tui.DefaultMaxAttempts, "submit attempts before giving up")
	return cmd
}
