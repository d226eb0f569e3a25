package cmd

import (
	"context"
	"fmt"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/athapong/jira-cli/pkg/adf"
	"github.com/athapong/jira-cli/services"
)

func viewCmd() *cobra.Command {
	var (
		rendered bool
		raw      bool
	)

	cmd := &cobra.Command{
		Use:   "view ISSUE",
		Short: "Show an issue with its description, subtasks and transitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			issueKey := args[0]
			client := services.JiraClient()

			ctx, cancel := context.WithTimeout(cmd.Context(), 4*time.Second)
			defer cancel()

			issue, response, err := client.Issue.Get(ctx, issueKey, []string{"*all"}, []string{"transitions", "renderedFields"})
			if err != nil {
				if response != nil {
					return errors.Errorf("failed to get issue: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
				}
				return errors.Wrap(err, "failed to get issue")
			}

			out := cmd.OutOrStdout()

			if raw {
				fmt.Fprintln(out, gjson.Get(response.Bytes.String(), "fields.description").Raw)
				return nil
			}

			var description string
			switch {
			case rendered:
				html := gjson.Get(response.Bytes.String(), "renderedFields.description").String()
				description, err = htmltomarkdown.ConvertString(html)
				if err != nil {
					return errors.Wrap(err, "failed to convert rendered description")
				}
			default:
				description = adf.ToText(fromCommentNode(issue.Fields.Description))
			}

			reporterName := "Unassigned"
			if issue.Fields.Reporter != nil {
				reporterName = issue.Fields.Reporter.DisplayName
			}

			assigneeName := "Unassigned"
			if issue.Fields.Assignee != nil {
				assigneeName = issue.Fields.Assignee.DisplayName
			}

			priorityName := "None"
			if issue.Fields.Priority != nil {
				priorityName = issue.Fields.Priority.Name
			}

			statusName := ""
			if issue.Fields.Status != nil {
				statusName = issue.Fields.Status.Name
			}

			var subtasks string
			if len(issue.Fields.Subtasks) > 0 {
				subtasks = "\nSubtasks:\n"
				for _, subTask := range issue.Fields.Subtasks {
					subtasks += fmt.Sprintf("- %s: %s\n", subTask.Key, subTask.Fields.Summary)
				}
			}

			var transitions string
			for _, transition := range issue.Transitions {
				transitions += fmt.Sprintf("- %s (ID: %s)\n", transition.Name, transition.ID)
			}

			fmt.Fprintf(out, `Key: %s
Summary: %s
Status: %s
Reporter: %s
Assignee: %s
Created: %s
Updated: %s
Priority: %s
Description:
%s
%s
Available Transitions:
%s`,
				issue.Key,
				issue.Fields.Summary,
				statusName,
				reporterName,
				assigneeName,
				issue.Fields.Created,
				issue.Fields.Updated,
				priorityName,
				description,
				subtasks,
				transitions,
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&rendered, "rendered", false, "convert the server-rendered HTML description instead of the ADF tree")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw ADF JSON of the description")

	return cmd
}
