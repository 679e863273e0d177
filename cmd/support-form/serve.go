package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-supportform/pkg/config"
	"github.com/goliatone/go-supportform/pkg/renderers/page"
	"github.com/goliatone/go-supportform/pkg/server"
)

func serveCmd(root *rootOptions) *cobra.Command {
	var (
		addr      string
		assetsDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the host page and the WebAssembly controller",
		Long: `Serve the support form host page and the compiled controller bundle.

The assets directory must contain wasm_exec.js and support-form.wasm, built
with:

  GOOS=js GOARCH=wasm go build -o web/support-form.wasm ./cmd/support-form-wasm
  cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if assetsDir != "" {
				cfg.AssetsDir = assetsDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			renderer, err := newPageRenderer(cfg)
			if err != nil {
				return err
			}

			opts := []server.Option{
				server.WithAddr(cfg.Addr),
				server.WithLogger(logger),
				server.WithAssets(os.DirFS(cfg.AssetsDir), cfg.AssetPrefix),
			}
			if cfg.Metrics.Enabled {
				metrics, err := server.NewMetrics(server.WithNamespace(cfg.Metrics.Namespace))
				if err != nil {
					return err
				}
				opts = append(opts, server.WithMetrics(metrics))
			}

			return server.New(renderer, opts...).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&assetsDir, "assets", "", "directory holding the wasm bundle (overrides config)")
	return cmd
}

// newPageRenderer builds the host page renderer from configuration. Token
// overrides from configuration are applied on top of the default manifest.
func newPageRenderer(cfg config.Config) (*page.Renderer, error) {
	manifest := page.DefaultManifest()
	if len(cfg.Theme.Tokens) > 0 {
		tokens := make(map[string]string, len(manifest.Tokens)+len(cfg.Theme.Tokens))
		for k, v := range manifest.Tokens {
			tokens[k] = v
		}
		for k, v := range cfg.Theme.Tokens {
			tokens[k] = v
		}
		overridden := *manifest
		overridden.Tokens = tokens
		manifest = &overridden
	}

	return page.New(
		page.WithTheme(manifest, cfg.Theme.Variant),
		page.WithTemplatesDir(cfg.TemplatesDir),
		page.WithAssetPrefix(cfg.AssetPrefix),
		page.WithTitle(cfg.Title),
		page.WithIntro(cfg.Intro),
	)
}
