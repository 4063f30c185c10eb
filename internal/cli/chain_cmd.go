package cli

import (
	"fmt"
	"time"

	"github.com/avelinek/dayflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChainCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Manage repeatable activity chains",
	}

	cmd.AddCommand(
		newChainListCmd(app),
		newChainApplyCmd(app),
		newChainCompleteCmd(app),
		newChainDismissCmd(app),
	)
	return cmd
}

func newChainListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show chains and promoted routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(formatter.Header("Chains"))
			for _, c := range app.Gateway.Chains() {
				flag := ""
				if c.RoutinePromptShown {
					flag = formatter.StyleGreen.Render(" ✓ routine decided")
				}
				fmt.Printf("%s  %s  %s%s\n",
					formatter.Bold(c.Name),
					formatter.Dim(fmt.Sprintf("%d block(s), %d completion(s)", len(c.Blocks), c.CompletionCount)),
					formatter.Dim("id "+c.ID),
					flag,
				)
			}

			routines := app.Gateway.Routines()
			if len(routines) > 0 {
				fmt.Println(formatter.Header("Routines"))
				for _, r := range routines {
					window := ""
					if len(r.Rules) > 0 {
						w := r.Rules[0].Window
						window = fmt.Sprintf("%02d:%02d—%02d:%02d %s",
							w.StartMin/60, w.StartMin%60, w.EndMin/60, w.EndMin%60, r.Rules[0].Cadence)
					}
					fmt.Printf("%s  %s  %s\n",
						formatter.Bold(r.Name),
						formatter.StyleBlue.Render(window),
						formatter.Dim(fmt.Sprintf("adoption %.1f", r.AdoptionScore)),
					)
				}
			}
			return nil
		},
	}
}

func newChainApplyCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "apply <chain-id>",
		Short: "Schedule a chain's blocks in sequence starting at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAt, err := parseClock(start)
			if err != nil {
				return err
			}
			ids, err := app.Gateway.ApplyChain(args[0], startAt, time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render(fmt.Sprintf("Scheduled %d block(s).", len(ids))))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, today; blank for now)")
	return cmd
}

func newChainCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <chain-id>",
		Short: "Record a chain completion and check routine promotion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Gateway.CompleteChain(args[0], time.Now())
			if err != nil {
				return err
			}
			if r != nil {
				fmt.Println(formatter.StyleGreen.Render("Promoted to routine: " + r.Name))
			} else {
				fmt.Println(formatter.Dim("Completion recorded."))
			}
			return nil
		},
	}
}

func newChainDismissCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <chain-id>",
		Short: "Decline routine promotion for a chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.DismissRoutinePrompt(args[0], time.Now()); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Promotion dismissed."))
			return nil
		},
	}
}
