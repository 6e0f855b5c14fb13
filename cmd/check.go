package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	checkDivision  string
	checkCommittee string
	checkDate      string
	checkExpected  int
	checkExclude   string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a candidate meeting date",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkDivision, "division", "", "division id")
	checkCmd.Flags().StringVar(&checkCommittee, "committee", "", "committee type id")
	checkCmd.Flags().StringVar(&checkDate, "date", "", "candidate date (YYYY-MM-DD)")
	checkCmd.Flags().IntVar(&checkExpected, "expected", 0, "expected request volume")
	checkCmd.Flags().StringVar(&checkExclude, "exclude-meeting", "", "meeting id left out of the counts")
	_ = checkCmd.MarkFlagRequired("division")
	_ = checkCmd.MarkFlagRequired("committee")
	_ = checkCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc, "check-command")

	date, err := parseDate(checkDate)
	if err != nil {
		return err
	}
	res, err := svc.Check(context.Background(), checkDivision, checkCommittee, date, checkExpected, checkExclude)
	if err != nil {
		return err
	}
	if err := printJSON(cmd, res); err != nil {
		return err
	}
	if !res.Passed() {
		return fmt.Errorf("candidate failed checks: %s", strings.Join(res.Failures(), ", "))
	}
	return nil
}
