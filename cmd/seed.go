package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taldata/izun-sub001/app"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a demo dataset to the configured store",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc, "seed-command")

	ds, err := app.DemoDataset(time.Now())
	if err != nil {
		return err
	}
	if err := svc.Seed(context.Background(), ds); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(),
		"seeded %d divisions, %d committee types, %d routes, %d meetings, %d events, %d exception dates\n",
		len(ds.Divisions), len(ds.CommitteeTypes), len(ds.Routes), len(ds.Meetings), len(ds.Events), len(ds.Exceptions))
	return err
}
