package main

import (
	"fmt"

	"github.com/spf13/cobra"

	site "github.com/algotixai/site"
	"github.com/algotixai/site/routes"
)

func newCheckCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the route registry, footer links and content pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			warnings := routes.Lint(routes.Default())
			for _, w := range warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
			}

			cfg, err := site.LoadConfig()
			if err != nil {
				return err
			}
			if err := site.New(cfg).Setup(); err != nil {
				return err
			}
			if strict && len(warnings) > 0 {
				return fmt.Errorf("%d lint warnings", len(warnings))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d routes\n", routes.Default().Len())
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat lint warnings as errors")
	return cmd
}
