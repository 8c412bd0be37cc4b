package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// formatTiling renders an axis as board sizes, e.g. "40+40+5".
func formatTiling(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprintf("%g", s)
	}
	return strings.Join(parts, "+")
}

func formatDims(d model.Dims) string {
	return fmt.Sprintf("%gx%gx%g", d.Width, d.Height, d.Depth)
}

// printShortlist writes one row per shortlisted design, followed by any
// warnings.
func printShortlist(w io.Writer, result model.CrateResult) {
	fmt.Fprintf(w, "Cargo %s: %d designs evaluated, %d shortlisted\n",
		formatDims(result.Cargo), len(result.Designs), result.Shortlist.Len())

	if result.Shortlist.Len() > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DESIGN\tLABELS\tX\tY\tZ\tOUTER\tBOARDS\tCUBES\tPRICE\tDEAD SPACE")
		for _, e := range result.Shortlist.Entries {
			d := e.Design
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\t%.2f\t%.4f\n",
				d.ID, strings.Join(e.Labels, ","),
				formatTiling(d.BoardSizes.X), formatTiling(d.BoardSizes.Y), formatTiling(d.BoardSizes.Z),
				formatDims(d.OuterDims), d.BoardCount, d.CubeCount, d.TotalPrice, d.DeadSpace())
		}
		tw.Flush()
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}
