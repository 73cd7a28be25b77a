package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/bitbridge/infrastructure/render"
	"github.com/rios0rios0/bitbridge/infrastructure/rpc"
)

var (
	callParams string
	callFormat string
)

var callCmd = &cobra.Command{
	Use:   "call <method>",
	Short: "Dispatch a single method and print the response envelope",
	Long: `Dispatch one method against the remote API and print the response
envelope to stdout.

Examples:
  bitbridge call bitbucket/getRepositories --params '{"role":"owner","pageSize":10}'
  bitbridge call bitbucket/getPullRequest --params '{"workspace":"acme","repoSlug":"widgets","id":42}' --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := render.New(callFormat)
		if err != nil {
			return err
		}

		var params map[string]any
		if callParams != "" {
			if unmarshalErr := json.Unmarshal([]byte(callParams), &params); unmarshalErr != nil {
				return fmt.Errorf("failed to parse --params: %w", unmarshalErr)
			}
		}

		dispatcher, err := injectDispatcher()
		if err != nil {
			return err
		}

		result, dispatchErr := dispatcher.Dispatch(cmd.Context(), args[0], params)
		envelope := rpc.NewResponse(nil, result, dispatchErr)

		rendered, renderErr := renderer.Render(envelope)
		if renderErr != nil {
			return renderErr
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
		return nil
	},
}

func init() {
	callCmd.Flags().StringVar(&callParams, "params", "", "Parameters as a raw JSON object")
	callCmd.Flags().StringVar(&callFormat, "format", render.FormatJSON, "Output format (json or yaml)")
	rootCmd.AddCommand(callCmd)
}
