package cmd

import (
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bitbridge/infrastructure/rpc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the method catalog on stdin/stdout",
	Long: `Read newline-delimited JSON requests from stdin and write correlated
responses to stdout until EOF or an interrupt.

Each request is {"id": ..., "method": "bitbucket/...", "params": {...}};
the reserved method "rpc/capabilities" lists the callable method names.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		dispatcher, err := injectDispatcher()
		if err != nil {
			return err
		}

		server := rpc.NewServer(dispatcher, os.Stdin, os.Stdout)
		if serveErr := server.Serve(ctx); serveErr != nil {
			return serveErr
		}

		logger.Debug("input closed, shutting down")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
