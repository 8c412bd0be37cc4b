package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CrateCraft/internal/export"
	"github.com/piwi3910/CrateCraft/internal/model"
)

// exportOpts are the optional output files of optimize.
type exportOpts struct {
	pdf    string
	labels string
	xlsx   string
	dxfDir string
	chart  string
	json   bool
}

func newOptimizeCmd(ro *rootOpts) *cobra.Command {
	var (
		cargo model.Dims
		out   exportOpts
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Shortlist crate designs for one cargo",
		Long:  "Tiles the cargo with catalog boards, evaluates every combination and prints the shortlist.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := ro.load(cmd)
			if err != nil {
				return err
			}
			result := e.optimizer().Optimize(cargo)

			if out.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
			} else {
				printShortlist(cmd.OutOrStdout(), result)
			}

			if result.Shortlist.Len() == 0 {
				return nil
			}
			return writeExports(cmd, e, result, out)
		},
	}

	cmd.Flags().Float64Var(&cargo.Width, "width", 0, "cargo width (x)")
	cmd.Flags().Float64Var(&cargo.Height, "height", 0, "cargo height (y)")
	cmd.Flags().Float64Var(&cargo.Depth, "depth", 0, "cargo depth (z)")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")
	cmd.MarkFlagRequired("depth")

	cmd.Flags().StringVar(&out.pdf, "pdf", "", "write a PDF report")
	cmd.Flags().StringVar(&out.labels, "labels", "", "write a PDF of QR labels")
	cmd.Flags().StringVar(&out.xlsx, "xlsx", "", "write an Excel workbook")
	cmd.Flags().StringVar(&out.dxfDir, "dxf-dir", "", "write one DXF drawing per shortlisted design into this directory")
	cmd.Flags().StringVar(&out.chart, "chart", "", "write an HTML metrics chart")
	cmd.Flags().BoolVar(&out.json, "json", false, "print the full result as JSON")
	return cmd
}

func writeExports(cmd *cobra.Command, e *env, result model.CrateResult, out exportOpts) error {
	reportID := export.NewReportID()
	opts := []export.Option{export.WithLogger(e.logger), export.WithReportID(reportID)}
	w := cmd.ErrOrStderr()

	if out.pdf != "" {
		if err := export.ExportPDF(out.pdf, result, e.cfg.Catalog, opts...); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", out.pdf)
	}
	if out.labels != "" {
		if err := export.ExportLabels(out.labels, result, opts...); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", out.labels)
	}
	if out.xlsx != "" {
		if err := export.ExportExcel(out.xlsx, result, e.cfg.Catalog, opts...); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", out.xlsx)
	}
	if out.dxfDir != "" {
		if err := os.MkdirAll(out.dxfDir, 0755); err != nil {
			return fmt.Errorf("create dxf dir: %w", err)
		}
		for _, entry := range result.Shortlist.Entries {
			path := filepath.Join(out.dxfDir, entry.Design.ID+".dxf")
			if err := export.ExportDXF(path, entry.Design, opts...); err != nil {
				return err
			}
			fmt.Fprintf(w, "wrote %s\n", path)
		}
	}
	if out.chart != "" {
		f, err := os.Create(out.chart)
		if err != nil {
			return fmt.Errorf("create chart: %w", err)
		}
		err = export.ExportChart(f, result, opts...)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", out.chart)
	}

	e.logger.Info().Str("report", reportID).Int("shortlisted", result.Shortlist.Len()).Msg("exports written")
	return nil
}
