package cmd

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "jira-cli",
		Short:         "Work with Jira issues from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if err := godotenv.Load(envFile); err != nil {
				logrus.Debugf("no env file loaded from %s: %v", envFile, err)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to environment file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(viewCmd())
	cmd.AddCommand(listCmd())
	cmd.AddCommand(createCmd())
	cmd.AddCommand(editCmd())
	cmd.AddCommand(commentCmd())
	cmd.AddCommand(moveCmd())
	cmd.AddCommand(sprintsCmd())

	return cmd
}
