package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/piwi3910/CrateCraft/internal/server"
)

func newServeCmd(ro *rootOpts) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the optimizer over HTTP",
		Long:  "Starts the JSON API: GET /api/health, GET /api/catalog, POST /api/crates and GET /api/crates/chart.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := ro.load(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = e.cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			gin.SetMode(gin.ReleaseMode)
			router := server.New(e.optimizer(), e.logger)
			return server.Run(ctx, addr, router, e.logger, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
