package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/zerohall/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rooms, quiz and visit stats over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		srv := api.NewServer(api.Config{
			Addr:           cfg.Serve.Addr,
			AllowedOrigins: cfg.Serve.AllowedOrigins,
		}, s.EventRepo(), logger)

		logger.Info("serving", "addr", cfg.Serve.Addr)
		if err := srv.ListenAndServe(cmd.Context()); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides serve.addr)")
	cobra.CheckErr(v.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr")))
}
