package main

import (
	"context"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd serves the API when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:          "maintenance",
	Short:        "Maintenance request lifecycle and cost-approval engine",
	Long:         "HTTP API, reconciler and notification consumer for landlord maintenance approvals.",
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the command tree with ctx as the root context.
func Execute(ctx context.Context) error {
	rootCmd.SetContext(ctx)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Printf("[cmd] command failed err=%v", err)
		return errors.Wrap(err, "execute root command")
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "configs/workflow.yaml", "Workflow settings file")
}
