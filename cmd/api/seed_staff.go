package main

import (
	"fmt"

	"nyumbanii_maintenance/internal/adapter/persistence/repository"

	"github.com/spf13/cobra"
)

var staffSeedFile string

var seedStaffCmd = &cobra.Command{
	Use:   "seed-staff",
	Short: "Load staff members from a YAML file into the staff directory",
	RunE: withApp(func(cmd *cobra.Command, a *app) error {
		members, err := repository.LoadStaffSeed(staffSeedFile)
		if err != nil {
			return err
		}
		n, err := a.staff.Upsert(cmd.Context(), members)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "staff directory: %d member(s) loaded from %s\n", n, staffSeedFile)
		return err
	}),
}

func init() {
	rootCmd.AddCommand(seedStaffCmd)
	seedStaffCmd.Flags().StringVar(&staffSeedFile, "file", getenvDefault("STAFF_SEED_FILE", "configs/staff.yaml"), "Staff seed file")
}
