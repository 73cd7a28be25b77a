package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the callable method names",
	Long: `Print the capability set: every method name the bridge can dispatch,
with a one-line description.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dispatcher, err := injectDispatcher()
		if err != nil {
			return err
		}

		for _, name := range dispatcher.Methods() {
			descriptor, _ := dispatcher.Describe(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-34s %s\n", name, descriptor.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}
