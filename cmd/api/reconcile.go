package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var reconcileRequestID string

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Finish quote approvals whose sibling updates did not land",
	RunE: withApp(func(cmd *cobra.Command, a *app) error {
		if reconcileRequestID != "" {
			fixed, err := a.reconciler.ReconcileRequest(cmd.Context(), reconcileRequestID)
			if err != nil {
				return errors.Wrapf(err, "reconcile request %s", reconcileRequestID)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "request %s: %d quote(s) updated\n", reconcileRequestID, fixed)
			return err
		}

		fixed, err := a.reconciler.Sweep(cmd.Context())
		if _, werr := fmt.Fprintf(cmd.OutOrStdout(), "sweep: %d quote(s) updated\n", fixed); werr != nil {
			return werr
		}
		if err != nil {
			return errors.Wrap(err, "sweep approved requests")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
	reconcileCmd.Flags().StringVar(&reconcileRequestID, "request", "", "Reconcile a single request instead of sweeping")
}
