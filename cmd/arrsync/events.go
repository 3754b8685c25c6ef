package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent sync events",
	Args:  cobra.NoArgs,
	RunE:  runEventsCmd,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().IntP("limit", "l", 20, "Maximum number of events")
}

type eventOutput struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
	Payload    string `json:"payload"`
	OccurredAt string `json:"occurred_at"`
}

func runEventsCmd(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	raw, err := app.Events.Recent(limit)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		out := make([]eventOutput, 0, len(raw))
		for _, e := range raw {
			out = append(out, eventOutput{
				ID:         e.ID,
				Type:       e.EventType,
				EntityType: e.EntityType,
				EntityID:   e.EntityID,
				Payload:    e.Payload,
				OccurredAt: e.OccurredAt.Format(time.RFC3339),
			})
		}
		return printJSON(w, out)
	}

	rows := make([][]string, 0, len(raw))
	for _, e := range raw {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.EventType,
			e.EntityType + " " + strconv.FormatInt(e.EntityID, 10),
			humanize.Time(e.OccurredAt),
			e.Payload,
		})
	}
	fmt.Fprintln(w, renderTable([]string{"ID", "Event", "Entity", "When", "Details"}, rows, []columnAlignment{alignRight}))
	return nil
}
