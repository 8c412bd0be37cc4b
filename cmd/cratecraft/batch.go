package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CrateCraft/internal/importer"
)

func newBatchCmd(ro *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Optimize every cargo row of a CSV or Excel file",
		Long:  "Imports label, width, height and depth rows from a CSV or .xlsx file and prints the winning design per row.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := ro.load(cmd)
			if err != nil {
				return err
			}

			imported := importer.Import(args[0])
			for _, w := range imported.Warnings {
				e.logger.Debug().Str("file", args[0]).Msg(w)
			}
			for _, msg := range imported.Errors {
				e.logger.Warn().Str("file", args[0]).Msg(msg)
			}
			if len(imported.Cargo) == 0 {
				return fmt.Errorf("no cargo rows imported from %s (%d errors)", args[0], len(imported.Errors))
			}

			opt := e.optimizer()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CARGO\tDIMS\tDESIGN\tLABELS\tOUTER\tBOARDS\tPRICE")
			for _, c := range imported.Cargo {
				result := opt.Optimize(c.Dims)
				if result.Shortlist.Len() == 0 {
					fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\t-\t-\n", c.Label, formatDims(c.Dims))
					continue
				}
				for _, entry := range result.Shortlist.Entries {
					d := entry.Design
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%.2f\n",
						c.Label, formatDims(c.Dims), d.ID, strings.Join(entry.Labels, ","),
						formatDims(d.OuterDims), d.BoardCount, d.TotalPrice)
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(imported.Errors) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d rows skipped\n", len(imported.Errors))
			}
			return nil
		},
	}
}
