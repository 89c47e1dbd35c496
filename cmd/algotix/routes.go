package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/algotixai/site/nav"
	"github.com/algotixai/site/routes"
)

func newRoutesCmd() *cobra.Command {
	var current string
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the route registry in menu order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := routes.Default()
			active := make(map[routes.ID]bool)
			for _, l := range nav.Render(nav.NewState(current), r.All()) {
				active[l.Entry.ID] = l.Active
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPATH\tMENU\tACTIVE\tTITLE")
			for _, e := range r.All() {
				menu := "-"
				switch {
				case e.CallToAction:
					menu = "cta"
				case e.ShowInNav:
					menu = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", e.ID, e.Path, menu, active[e.ID], e.Title)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&current, "current", "/", "path treated as the current page")
	return cmd
}
