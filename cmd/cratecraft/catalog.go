package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/CrateCraft/internal/config"
)

func newCatalogCmd(ro *rootOpts) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the effective configuration as YAML",
		Long:  "Prints the board catalog and optimizer settings in effect, or writes them to a file as a starting point for a custom config.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := ro.load(cmd)
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := config.Save(outPath, e.cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
				return nil
			}

			data, err := config.Marshal(e.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the YAML to this file instead of stdout (e.g. "+config.DefaultPath()+")")
	return cmd
}
