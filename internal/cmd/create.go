package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ctreminiom/go-atlassian/pkg/infra/models"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/athapong/jira-cli/pkg/adf"
	"github.com/athapong/jira-cli/services"
	"github.com/athapong/jira-cli/util"
)

func createCmd() *cobra.Command {
	var (
		projectKey  string
		issueType   string
		summary     string
		description string
		fromFile    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an issue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromFile != "" {
				data, err := os.ReadFile(fromFile)
				if err != nil {
					return errors.Wrap(err, "failed to read description file")
				}
				description = string(data)
			}
			if description == "" && fromFile == "" && !cmd.Flags().Changed("description") {
				composed, err := util.ComposeText("")
				if err != nil {
					return err
				}
				description = composed
			}

			payload := &models.IssueScheme{
				Fields: &models.IssueFieldsScheme{
					Summary:     summary,
					Project:     &models.ProjectScheme{Key: projectKey},
					IssueType:   &models.IssueTypeScheme{Name: issueType},
					Description: toCommentNode(adf.FromText(description)),
				},
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 4*time.Second)
			defer cancel()

			issue, response, err := services.JiraClient().Issue.Create(ctx, payload, nil)
			if err != nil {
				if response != nil {
					return errors.Errorf("failed to create issue: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
				}
				return errors.Wrap(err, "failed to create issue")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Issue created successfully!\nKey: %s\nID: %s\nURL: %s\n", issue.Key, issue.ID, issue.Self)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectKey, "project", "p", "", "project key (e.g. KP)")
	cmd.Flags().StringVarP(&issueType, "type", "t", "Task", "issue type (Bug, Task, Story, Epic)")
	cmd.Flags().StringVarP(&summary, "summary", "s", "", "issue summary")
	cmd.Flags().StringVarP(&description, "description", "d", "", "issue description text")
	cmd.Flags().StringVarP(&fromFile, "file", "F", "", "read the description text from a file")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("summary")

	return cmd
}
