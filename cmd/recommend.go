package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/taldata/izun-sub001/app"
)

var (
	recommendDivision  string
	recommendCommittee string
	recommendRoute     string
	recommendFrom      string
	recommendHorizon   int
	recommendTop       int
	recommendExpected  int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank candidate meeting dates",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendDivision, "division", "", "division id")
	recommendCmd.Flags().StringVar(&recommendCommittee, "committee", "", "committee type id")
	recommendCmd.Flags().StringVar(&recommendRoute, "route", "", "route id for deadline projection")
	recommendCmd.Flags().StringVar(&recommendFrom, "from", "", "first day of the horizon (YYYY-MM-DD, default today)")
	recommendCmd.Flags().IntVar(&recommendHorizon, "horizon", 0, "days to scan (default from configuration)")
	recommendCmd.Flags().IntVar(&recommendTop, "top", 5, "number of candidates to print")
	recommendCmd.Flags().IntVar(&recommendExpected, "expected", 0, "expected request volume")
	_ = recommendCmd.MarkFlagRequired("division")
	_ = recommendCmd.MarkFlagRequired("committee")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc, "recommend-command")

	from := time.Now()
	if recommendFrom != "" {
		if from, err = parseDate(recommendFrom); err != nil {
			return err
		}
	}
	ranking, err := svc.Recommend(context.Background(), app.RecommendRequest{
		DivisionID:       recommendDivision,
		CommitteeTypeID:  recommendCommittee,
		RouteID:          recommendRoute,
		From:             from,
		HorizonDays:      recommendHorizon,
		ExpectedRequests: recommendExpected,
	})
	if err != nil {
		return err
	}
	ranking.Candidates = ranking.Top(recommendTop)
	return printJSON(cmd, ranking)
}
