package main

import (
	"github.com/spf13/cobra"

	"github.com/mohammad-safakhou/billtracker/config"
	srv "github.com/mohammad-safakhou/billtracker/internal/server"
)

func serveCMD() *cobra.Command {
	var cfgPath string
	var listen string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}
			return srv.Run(cfg)
		},
	}
	serve.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default searches . and ./config)")
	serve.Flags().StringVar(&listen, "listen", "", "listen address override")

	return serve
}
