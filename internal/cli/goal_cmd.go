package cli

import (
	"fmt"
	"time"

	"github.com/avelinek/dayflow/internal/cli/formatter"
	"github.com/avelinek/dayflow/internal/domain"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals and their mind maps",
	}

	cmd.AddCommand(
		newGoalListCmd(app),
		newGoalAddCmd(app),
		newGoalPinCmd(app),
		newGoalGraphCmd(app),
	)
	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show goals with progress and feedback signal",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(formatter.Header("Goals"))
			for _, g := range app.Gateway.Goals() {
				pin := ""
				if g.Pinned {
					pin = formatter.StyleYellow.Render(" ⚑")
				}
				stats := app.Gateway.GoalFeedbackStats(g.ID)
				fmt.Printf("%s%s  %s  %s  %s  %s\n",
					formatter.Bold(g.Title),
					pin,
					formatter.Dim(string(g.Status)),
					formatter.StyleGreen.Render(fmt.Sprintf("%.0f%%", g.Progress*100)),
					formatter.FormatFeedbackBadge(stats),
					formatter.Dim("id "+g.ID),
				)
			}
			return nil
		},
	}
}

func newGoalAddCmd(app *App) *cobra.Command {
	var description string
	var importance int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Gateway.AddGoal(args[0], description, importance, time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Added goal " + id))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Goal description")
	cmd.Flags().IntVar(&importance, "importance", 3, "Importance 1-5")
	return cmd
}

func newGoalPinCmd(app *App) *cobra.Command {
	var unpin bool

	cmd := &cobra.Command{
		Use:   "pin <goal-id>",
		Short: "Pin a goal so linked suggestions rank higher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.PinGoal(args[0], !unpin, time.Now()); err != nil {
				return err
			}
			if unpin {
				fmt.Println(formatter.Dim("Unpinned."))
			} else {
				fmt.Println(formatter.StyleYellow.Render("Pinned."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unpin, "unpin", false, "Remove the pin instead")
	return cmd
}

func newGoalGraphCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Inspect and mutate a goal's mind map",
	}

	show := &cobra.Command{
		Use:   "show <goal-id>",
		Short: "Render the goal's mind map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.Gateway.GraphSnapshot(args[0], time.Now())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatGraph(g))
			return nil
		},
	}

	var nodeType, title string
	expand := &cobra.Command{
		Use:   "expand <goal-id> <parent-node-id>",
		Short: "Add a child node under a graph node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			child := domain.GraphNode{
				Type:  domain.GraphNodeType(nodeType),
				Title: title,
			}
			if err := app.Gateway.ExpandGraph(args[0], args[1], []domain.GraphNode{child}, time.Now()); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Expanded."))
			return nil
		},
	}
	expand.Flags().StringVar(&nodeType, "type", "task", "Node type: subgoal, task, note, resource, metric")
	expand.Flags().StringVar(&title, "title", "", "Node title")
	_ = expand.MarkFlagRequired("title")

	var unpin bool
	pinNode := &cobra.Command{
		Use:   "pin <goal-id> <node-id>",
		Short: "Pin a graph node at full weight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.PinGraphNode(args[0], args[1], !unpin, time.Now()); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Done."))
			return nil
		},
	}
	pinNode.Flags().BoolVar(&unpin, "unpin", false, "Remove the pin instead")

	refresh := &cobra.Command{
		Use:   "refresh <goal-id>",
		Short: "Decay stale node weights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.RefreshGraph(args[0], time.Now()); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Refreshed."))
			return nil
		},
	}

	cmd.AddCommand(show, expand, pinNode, refresh)
	return cmd
}

func newPillarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pillar",
		Short: "Manage focus-area pillars",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show pillars with cadence and feedback signal",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(formatter.Header("Pillars"))
			for _, p := range app.Gateway.Pillars() {
				emph := ""
				if p.Emphasized {
					emph = formatter.StyleYellow.Render(" ★")
				}
				stats := app.Gateway.PillarFeedbackStats(p.ID)
				fmt.Printf("%s%s  %s  %s  %s\n",
					formatter.Bold(p.Name),
					emph,
					formatter.Dim(string(p.Cadence.Kind)),
					formatter.FormatFeedbackBadge(stats),
					formatter.Dim("id "+p.ID),
				)
			}
			return nil
		},
	}

	var description, guidance, cadence string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a pillar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Gateway.AddPillar(domain.Pillar{
				Name:        args[0],
				Description: description,
				Guidance:    guidance,
				Cadence:     domain.Cadence{Kind: domain.CadenceKind(cadence)},
			}, time.Now())
			if err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Added pillar " + id))
			return nil
		},
	}
	add.Flags().StringVar(&description, "description", "", "Pillar description")
	add.Flags().StringVar(&guidance, "guidance", "", "Guidance text for the generator")
	add.Flags().StringVar(&cadence, "cadence", "as_needed", "Cadence: daily, weekly, monthly, as_needed")

	var deEmphasize bool
	emphasize := &cobra.Command{
		Use:   "emphasize <pillar-id>",
		Short: "Emphasize a pillar so linked suggestions rank higher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Gateway.EmphasizePillar(args[0], !deEmphasize, time.Now()); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Done."))
			return nil
		},
	}
	emphasize.Flags().BoolVar(&deEmphasize, "off", false, "Remove the emphasis instead")

	cmd.AddCommand(list, add, emphasize)
	return cmd
}
