package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/avelinek/dayflow/internal/cli/formatter"
	"github.com/avelinek/dayflow/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var mood, weather string
	var review bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run a scheduling cycle and rank fresh suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ranked := app.Planner.RunCycle(context.Background(), service.CycleInput{
				Now:            time.Now(),
				Mood:           mood,
				WeatherSummary: weather,
			})

			if review && app.interactive() {
				return runReviewTUI(app)
			}

			fmt.Print(formatter.FormatSuggestions(ranked))
			return nil
		},
	}

	cmd.Flags().StringVar(&mood, "mood", "", "Current mood, passed to the generator")
	cmd.Flags().StringVar(&weather, "weather", "", "Weather summary, passed to the generator")
	cmd.Flags().BoolVar(&review, "review", false, "Review suggestions interactively")

	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's schedule, follow-ups, and open slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			swept := app.Gateway.Sweep(now)
			if swept.ToUnconfirmed > 0 {
				fmt.Println(formatter.Dim(fmt.Sprintf("%d block(s) awaiting confirmation", swept.ToUnconfirmed)))
			}

			fmt.Print(formatter.FormatBlocks(app.Gateway.TodayBlocks()))
			fmt.Print(formatter.FormatFollowUps(app.Gateway.FollowUps()))

			slots := app.Gateway.OpenSlots(now, 15*time.Minute)
			if len(slots) > 0 {
				fmt.Println(formatter.Header("Open slots"))
				for _, s := range slots {
					fmt.Printf("%s—%s  %s\n",
						s.Start.Format("15:04"), s.End.Format("15:04"),
						formatter.Dim(formatter.Minutes(s.Duration())))
				}
			}
			return nil
		},
	}
}
