package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "algotix",
		Short: "AlgotixAI marketing site",
		Long: `algotix serves the AlgotixAI marketing site.

Configuration is read from the environment and from a .env file in the
working directory: SITE_NAME, SITE_URL, SITE_DESCRIPTION, ADDR or PORT,
STATIC_DIR, LOG_LEVEL, CONTACT_EMAIL, CONTACT_PHONE, CONTACT_ADDRESS,
HSTS and PAGE_CACHE_TTL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newRoutesCmd(),
		newCheckCmd(),
		newSitemapCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the algotix version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "algotix %s\n", version)
		},
	}
}
