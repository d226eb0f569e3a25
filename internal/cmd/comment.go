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
	"github.com/athapong/jira-cli/util"
)

func commentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Read and write issue comments",
	}

	cmd.AddCommand(commentAddCmd())
	cmd.AddCommand(commentListCmd())

	return cmd
}

func commentAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add ISSUE [TEXT]",
		Short: "Add a comment; opens $EDITOR when no text is given",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			issueKey := args[0]

			var text string
			if len(args) == 2 {
				text = args[1]
			} else {
				composed, err := util.ComposeText("")
				if err != nil {
					return err
				}
				text = composed
			}
			if text == "" {
				return errors.New("aborting: empty comment")
			}

			payload := &models.CommentPayloadScheme{
				Body: toCommentNode(adf.FromText(text)),
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 4*time.Second)
			defer cancel()

			comment, response, err := services.JiraClient().Issue.Comment.Add(ctx, issueKey, payload, nil)
			if err != nil {
				if response != nil {
					return errors.Errorf("failed to add comment: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
				}
				return errors.Wrap(err, "failed to add comment")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Comment %s added to %s\n", comment.ID, issueKey)
			return nil
		},
	}
}

func commentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list ISSUE",
		Short: "List an issue's comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			issueKey := args[0]

			ctx, cancel := context.WithTimeout(cmd.Context(), 4*time.Second)
			defer cancel()

			page, response, err := services.JiraClient().Issue.Comment.Gets(ctx, issueKey, "", nil, 0, 50)
			if err != nil {
				if response != nil {
					return errors.Errorf("failed to list comments: %s (endpoint: %s)", response.Bytes.String(), response.Endpoint)
				}
				return errors.Wrap(err, "failed to list comments")
			}

			out := cmd.OutOrStdout()
			if len(page.Comments) == 0 {
				fmt.Fprintln(out, "No comments found.")
				return nil
			}

			for _, comment := range page.Comments {
				author := "Unknown"
				if comment.Author != nil {
					author = comment.Author.DisplayName
				}
				fmt.Fprintf(out, "%s (%s):\n%s\n", author, comment.Created, adf.ToText(fromCommentNode(comment.Body)))
			}
			return nil
		},
	}
}
