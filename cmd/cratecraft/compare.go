package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CrateCraft/internal/engine"
	"github.com/piwi3910/CrateCraft/internal/model"
)

func newCompareCmd(ro *rootOpts) *cobra.Command {
	var cargo model.Dims

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the catalog against tighter-seam and thinner-panel variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := ro.load(cmd)
			if err != nil {
				return err
			}

			results := engine.CompareScenarios(engine.BuildDefaultScenarios(e.cfg.Catalog), e.cfg.Optimizer, cargo)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SCENARIO\tDESIGNS\tSHORTLIST\tCHEAPEST\tLEAST DEAD SPACE\tFEWEST BOARDS")
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%.4f\t%d\n",
					r.Scenario.Name, r.Designs, r.Result.Shortlist.Len(),
					r.CheapestPrice, r.LeastDead, r.FewestBoards)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Float64Var(&cargo.Width, "width", 0, "cargo width (x)")
	cmd.Flags().Float64Var(&cargo.Height, "height", 0, "cargo height (y)")
	cmd.Flags().Float64Var(&cargo.Depth, "depth", 0, "cargo depth (z)")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")
	cmd.MarkFlagRequired("depth")
	return cmd
}
