package main

import (
	"github.com/spf13/cobra"

	site "github.com/algotixai/site"
	"github.com/algotixai/site/routes"
)

func newSitemapCmd() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Write sitemap.xml for the route registry to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if base == "" {
				cfg, err := site.LoadConfig()
				if err != nil {
					return err
				}
				base = cfg.URL
			}
			return site.WriteSitemap(cmd.OutOrStdout(), base, routes.Default())
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "base URL, defaults to SITE_URL")
	return cmd
}
