package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	site "github.com/algotixai/site"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		staticDir string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := site.LoadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			var opts []site.Option
			if staticDir != "" {
				opts = append(opts, site.WithStaticDir(staticDir))
			}
			app := site.New(cfg, opts...)
			if err := app.Setup(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- app.Start() }()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return app.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address, overrides ADDR/PORT")
	cmd.Flags().StringVar(&staticDir, "static", "", "static asset directory, overrides STATIC_DIR")
	return cmd
}
