package cli

import (
	"github.com/avelinek/dayflow/internal/service"
	"github.com/spf13/cobra"
)

// App holds the gateway and planner the CLI commands operate on.
type App struct {
	Gateway *service.Gateway
	Planner *service.Planner

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the review TUI are only offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "dayflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dayflow",
		Short: "Adaptive day planner and suggestion engine",
	}

	root.AddCommand(
		newPlanCmd(app),
		newSuggestCmd(app),
		newBlockCmd(app),
		newChainCmd(app),
		newGoalCmd(app),
		newPillarCmd(app),
		newStatusCmd(app),
		newSyncCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
