package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/avelinek/dayflow/internal/calendar"
	"github.com/avelinek/dayflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile foreign calendar events into today's schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading events file: %w", err)
			}

			var events []calendar.Event
			if err := json.Unmarshal(data, &events); err != nil {
				return fmt.Errorf("parsing events file: %w", err)
			}

			res := app.Gateway.ReconcileCalendar(events, time.Now())
			fmt.Println(formatter.Dim(fmt.Sprintf(
				"%d added, %d updated, %d removed", res.Added, res.Updated, res.Removed)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file of foreign calendar events")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
