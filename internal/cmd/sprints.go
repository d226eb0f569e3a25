package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/athapong/jira-cli/services"
)

func sprintsCmd() *cobra.Command {
	var boardID int

	cmd := &cobra.Command{
		Use:   "sprints",
		Short: "List active and future sprints for a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 4*time.Second)
			defer cancel()

			sprints, response, err := services.AgileClient().Board.Sprints(ctx, boardID, 0, 50, []string{"active", "future"})
			if err != nil {
				if response != nil {
					return errors.Errorf("failed to get sprints: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
				}
				return errors.Wrap(err, "failed to get sprints")
			}

			out := cmd.OutOrStdout()
			if len(sprints.Values) == 0 {
				fmt.Fprintln(out, "No sprints found for this board.")
				return nil
			}

			for _, sprint := range sprints.Values {
				fmt.Fprintf(out, "ID: %d\nName: %s\nState: %s\nStartDate: %s\nEndDate: %s\n\n",
					sprint.ID, sprint.Name, sprint.State, sprint.StartDate, sprint.EndDate)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&boardID, "board", "b", 0, "numeric board ID (found in the board URL)")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}
