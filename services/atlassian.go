package services

import (
	"os"
	"sync"

	"github.com/ctreminiom/go-atlassian/jira/agile"
	v3 "github.com/ctreminiom/go-atlassian/jira/v3"
)

var (
	jiraClient  *v3.Client
	jiraOnce    sync.Once
	agileClient *agile.Client
	agileOnce   sync.Once
)

// JiraClient returns a singleton instance of the Jira REST v3 client,
// authenticated with the ATLASSIAN_HOST/ATLASSIAN_EMAIL/ATLASSIAN_TOKEN
// environment variables.
func JiraClient() *v3.Client {
	jiraOnce.Do(func() {
		host, mail, token := atlassianCredentials()

		client, err := v3.New(DefaultHttpClient(), host)
		if err != nil {
			panic("failed to create Jira client: " + err.Error())
		}
		client.Auth.SetBasicAuth(mail, token)

		jiraClient = client
	})
	return jiraClient
}

// AgileClient returns a singleton instance of the Jira Agile client
// used for board and sprint operations.
func AgileClient() *agile.Client {
	agileOnce.Do(func() {
		host, mail, token := atlassianCredentials()

		client, err := agile.New(DefaultHttpClient(), host)
		if err != nil {
			panic("failed to create Jira agile client: " + err.Error())
		}
		client.Auth.SetBasicAuth(mail, token)

		agileClient = client
	})
	return agileClient
}

func atlassianCredentials() (host, mail, token string) {
	host = os.Getenv("ATLASSIAN_HOST")
	mail = os.Getenv("ATLASSIAN_EMAIL")
	token = os.Getenv("ATLASSIAN_TOKEN")

	if host == "" || mail == "" || token == "" {
		panic("ATLASSIAN_HOST, ATLASSIAN_EMAIL and ATLASSIAN_TOKEN environment variables must be set")
	}
	return host, mail, token
}
