package cmd

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "bitbridge",
	Short: "Bitbucket Cloud RPC bridge",
	Long: `A bridge that exposes the Bitbucket Cloud REST API as a set of named,
schema-validated operations over a line-framed JSON protocol.

Repository, pipeline, and pull request actions become callable methods
(e.g. bitbucket/getPullRequests), each validated against a declared input
contract before a single authenticated HTTP call is issued.

Usage modes:
  bitbridge serve             Serve the method catalog on stdin/stdout
  bitbridge call <method>     Dispatch one method and print the result
  bitbridge methods           List the capability set`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetLevel(logger.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect, then BITBUCKET_* env vars)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}
