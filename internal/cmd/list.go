package cmd

import (
	"context"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/athapong/jira-cli/services"
)

const searchPageSize = 50

func listCmd() *cobra.Command {
	var (
		jql   string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search issues with JQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := services.JiraClient()
			out := cmd.OutOrStdout()

			// Jira may return an issue on more than one page when the
			// result set shifts between requests.
			seen := mapset.NewSet[string]()
			printed := 0

			startAt := 0
			for printed < limit {
				ctx, cancel := context.WithTimeout(cmd.Context(), 4*time.Second)
				result, response, err := client.Issue.Search.Get(ctx, jql, []string{"summary", "status", "assignee", "priority"}, nil, startAt, searchPageSize, "")
				cancel()
				if err != nil {
					if response != nil {
						return errors.Errorf("failed to search issues: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
					}
					return errors.Wrap(err, "failed to search issues")
				}

				if len(result.Issues) == 0 {
					break
				}

				for _, issue := range result.Issues {
					if printed == limit {
						break
					}
					if !seen.Add(issue.Key) {
						continue
					}

					statusName := ""
					if issue.Fields.Status != nil {
						statusName = issue.Fields.Status.Name
					}

					assigneeName := "Unassigned"
					if issue.Fields.Assignee != nil {
						assigneeName = issue.Fields.Assignee.DisplayName
					}

					fmt.Fprintf(out, "%-12s %-20s %-24s %s\n",
						issue.Key,
						statusColor(statusName).Sprint(statusName),
						assigneeName,
						issue.Fields.Summary,
					)
					printed++
				}

				startAt += len(result.Issues)
				if startAt >= result.Total {
					break
				}
			}

			if printed == 0 {
				fmt.Fprintln(out, "No issues found matching the search criteria.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&jql, "jql", "q", "", "JQL query string")
	cmd.Flags().IntVarP(&limit, "limit", "n", 30, "maximum number of issues to list")
	_ = cmd.MarkFlagRequired("jql")

	return cmd
}

func statusColor(status string) *color.Color {
	switch status {
	case "Done", "Closed", "Resolved":
		return color.New(color.FgGreen)
	case "In Progress", "In Review":
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
