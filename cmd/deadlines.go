package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var (
	deadlinesRoute string
	deadlinesDate  string
	deadlinesCall  string
)

var deadlinesCmd = &cobra.Command{
	Use:   "deadlines",
	Short: "Compute stage deadlines for a route and meeting date",
	RunE:  runDeadlines,
}

func init() {
	deadlinesCmd.Flags().StringVar(&deadlinesRoute, "route", "", "route id")
	deadlinesCmd.Flags().StringVar(&deadlinesDate, "date", "", "meeting date (YYYY-MM-DD)")
	deadlinesCmd.Flags().StringVar(&deadlinesCall, "call", "", "manual call deadline (YYYY-MM-DD)")
	_ = deadlinesCmd.MarkFlagRequired("route")
	_ = deadlinesCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(deadlinesCmd)
}

func runDeadlines(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc, "deadlines-command")

	date, err := parseDate(deadlinesDate)
	if err != nil {
		return err
	}
	var call time.Time
	if deadlinesCall != "" {
		if call, err = parseDate(deadlinesCall); err != nil {
			return err
		}
	}
	dl, err := svc.Deadlines(context.Background(), deadlinesRoute, date, call)
	if err != nil {
		return err
	}
	return printJSON(cmd, dl)
}
