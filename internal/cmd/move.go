package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ctreminiom/go-atlassian/pkg/infra/models"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/athapong/jira-cli/pkg/adf"
	"github.com/athapong/jira-cli/services"
)

func moveCmd() *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "move ISSUE TRANSITION_ID",
		Short: "Transition an issue through its workflow",
		Long:  "Transition an issue using a transition ID; available transitions are listed by the view command.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			issueKey, transitionID := args[0], args[1]
			client := services.JiraClient()

			ctx, cancel := context.WithTimeout(cmd.Context(), 4*time.Second)
			defer cancel()

			response, err := client.Issue.Move(ctx, issueKey, transitionID, nil)
			if err != nil {
				if response != nil {
					return errors.Errorf("transition failed: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
				}
				return errors.Wrap(err, "transition failed")
			}

			if comment != "" {
				payload := &models.CommentPayloadScheme{
					Body: toCommentNode(adf.FromText(comment)),
				}
				if _, response, err := client.Issue.Comment.Add(ctx, issueKey, payload, nil); err != nil {
					if response != nil {
						return errors.Errorf("transitioned, but failed to add comment: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
					}
					return errors.Wrap(err, "transitioned, but failed to add comment")
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Issue transition completed successfully")
			return nil
		},
	}

	cmd.Flags().StringVarP(&comment, "comment", "m", "", "comment to add with the transition")

	return cmd
}
