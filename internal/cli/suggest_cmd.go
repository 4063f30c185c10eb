package cli

import (
	"fmt"
	"time"

	"github.com/avelinek/dayflow/internal/cli/formatter"
	"github.com/avelinek/dayflow/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// tagValue is a pflag.Value that validates the rejection reason at parse time.
type tagValue struct {
	tag domain.FeedbackTag
}

var _ pflag.Value = (*tagValue)(nil)

func (v *tagValue) String() string { return string(v.tag) }
func (v *tagValue) Type() string   { return "reason" }

func (v *tagValue) Set(s string) error {
	switch s {
	case "not-relevant":
		v.tag = domain.TagNotRelevant
	case "wrong-time":
		v.tag = domain.TagWrongTime
	case "wrong-priority":
		v.tag = domain.TagWrongPriority
	default:
		return fmt.Errorf("unknown reason %q (want not-relevant, wrong-time, or wrong-priority)", s)
	}
	return nil
}

func newSuggestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Inspect and decide on pending suggestions",
	}

	cmd.AddCommand(
		newSuggestListCmd(app),
		newSuggestAcceptCmd(app),
		newSuggestRejectCmd(app),
	)
	return cmd
}

func newSuggestListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the ranked pending suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatSuggestions(app.Gateway.PendingSuggestions()))
			return nil
		},
	}
}

func newSuggestAcceptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <suggestion-id>",
		Short: "Accept a suggestion onto today's schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blockID, err := app.Gateway.AcceptSuggestion(args[0], time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Scheduled as block " + blockID))
			return nil
		},
	}
}

func newSuggestRejectCmd(app *App) *cobra.Command {
	reason := tagValue{tag: domain.TagNotRelevant}

	cmd := &cobra.Command{
		Use:   "reject <suggestion-id>",
		Short: "Reject a suggestion and register negative feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := []domain.FeedbackTag{reason.tag}
			if err := app.Gateway.RejectSuggestion(args[0], tags, time.Now()); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Rejected."))
			return nil
		},
	}

	cmd.Flags().Var(&reason, "reason",
		"Rejection reason: not-relevant, wrong-time, wrong-priority")
	return cmd
}
