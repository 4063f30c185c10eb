package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avelinek/dayflow/internal/cli/formatter"
	"github.com/avelinek/dayflow/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newBlockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Manage today's time blocks",
	}

	cmd.AddCommand(
		newBlockAddCmd(app),
		newBlockConfirmCmd(app),
		newBlockUndoCmd(app),
		newBlockRequeueCmd(app),
		newBlockMoveCmd(app),
		newBlockRemoveCmd(app),
		newBlockSweepCmd(app),
	)
	return cmd
}

func newBlockAddCmd(app *App) *cobra.Command {
	var title, start, energy string
	var minutes int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a block to today's schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" && app.interactive() {
				if err := blockAddForm(&title, &minutes, &start, &energy); err != nil {
					return err
				}
			}

			startAt, err := parseClock(start)
			if err != nil {
				return err
			}

			id, err := app.Gateway.AddBlock(domain.TimeBlock{
				Title:    title,
				Start:    startAt,
				Duration: time.Duration(minutes) * time.Minute,
				Energy:   domain.EnergyLevel(energy),
			}, time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Added block " + id))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Block title")
	cmd.Flags().IntVar(&minutes, "minutes", 30, "Duration in minutes")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, today)")
	cmd.Flags().StringVar(&energy, "energy", "medium", "Energy level: high, medium, low, restful")

	return cmd
}

// blockAddForm collects block fields interactively.
func blockAddForm(title *string, minutes *int, start, energy *string) error {
	minutesStr := strconv.Itoa(*minutes)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(title).
				Validate(func(s string) error {
					if s == "" {
						return domain.ErrEmptyTitle
					}
					return nil
				}),
			huh.NewInput().
				Title("Minutes").
				Placeholder("30").
				Value(&minutesStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return domain.ErrNonPositiveDuration
					}
					return nil
				}),
			huh.NewInput().
				Title("Start (HH:MM, blank for now)").
				Placeholder("14:30").
				Value(start),
			huh.NewSelect[string]().
				Title("Energy").
				Options(
					huh.NewOption("High", "high"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("Low", "low"),
					huh.NewOption("Restful", "restful"),
				).
				Value(energy),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	*minutes, _ = strconv.Atoi(minutesStr)
	return nil
}

// parseClock resolves an HH:MM string to a timestamp today; empty means now.
func parseClock(s string) (time.Time, error) {
	now := time.Now()
	if s == "" {
		return now, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing start time %q: %w", s, err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}

func newBlockConfirmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <block-id>",
		Short: "Confirm a block happened",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.Confirm(args[0], time.Now()); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Confirmed."))
			return nil
		},
	}
}

func newBlockUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo-confirm <block-id>",
		Short: "Undo a confirmation (within 24 hours)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.UndoConfirm(args[0], time.Now()); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Confirmation undone."))
			return nil
		},
	}
}

func newBlockRequeueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "requeue <block-id>",
		Short: "Convert an unconfirmed block into a follow-up to-do",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.Requeue(args[0], time.Now()); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Requeued as follow-up."))
			return nil
		},
	}
}

func newBlockMoveCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "move <block-id>",
		Short: "Move a block to a new start time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAt, err := parseClock(start)
			if err != nil {
				return err
			}
			if err := app.Gateway.MoveBlock(args[0], startAt, time.Now()); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Moved."))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM, today)")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newBlockRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <block-id>",
		Short: "Remove a block from today's schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.RemoveBlock(args[0]); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Removed."))
			return nil
		},
	}
}

func newBlockSweepCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Apply time-based confirmation transitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Gateway.Sweep(time.Now())
			fmt.Printf("%d block(s) now awaiting confirmation, %d re-scheduled\n",
				res.ToUnconfirmed, res.ToScheduled)
			return nil
		},
	}
}
