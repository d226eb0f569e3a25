package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ctreminiom/go-atlassian/pkg/infra/models"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/athapong/jira-cli/pkg/adf"
	"github.com/athapong/jira-cli/services"
)

func editCmd() *cobra.Command {
	var (
		summary     string
		description string
		showDiff    bool
	)

	cmd := &cobra.Command{
		Use:   "edit ISSUE",
		Short: "Update an issue's summary or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			issueKey := args[0]
			client := services.JiraClient()

			if summary == "" && !cmd.Flags().Changed("description") {
				return errors.New("nothing to update: pass --summary and/or --description")
			}

			if showDiff && cmd.Flags().Changed("description") {
				ctx, cancel := context.WithTimeout(cmd.Context(), 4*time.Second)
				current, response, err := client.Issue.Get(ctx, issueKey, []string{"description"}, nil)
				cancel()
				if err != nil {
					if response != nil {
						return errors.Errorf("failed to get issue: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
					}
					return errors.Wrap(err, "failed to get issue")
				}

				previous := adf.ToText(fromCommentNode(current.Fields.Description))
				dmp := diffmatchpatch.New()
				diffs := dmp.DiffMain(previous, description, false)
				fmt.Fprintln(cmd.OutOrStdout(), "Description changes:")
				fmt.Fprintln(cmd.OutOrStdout(), dmp.DiffPrettyText(diffs))
			}

			payload := &models.IssueScheme{
				Fields: &models.IssueFieldsScheme{},
			}
			if summary != "" {
				payload.Fields.Summary = summary
			}
			if cmd.Flags().Changed("description") {
				payload.Fields.Description = toCommentNode(adf.FromText(description))
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 4*time.Second)
			defer cancel()

			response, err := client.Issue.Update(ctx, issueKey, true, payload, nil, nil)
			if err != nil {
				if response != nil {
					return errors.Errorf("failed to update issue: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
				}
				return errors.Wrap(err, "failed to update issue")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Issue updated successfully!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&summary, "summary", "s", "", "new summary")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description text")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "preview the description change as a diff")

	return cmd
}
