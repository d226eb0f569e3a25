package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/athapong/jira-cli/internal/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := cmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
