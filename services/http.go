package services

import (
	"net/http"
	"sync"
	"time"
)

var (
	httpClient *http.Client
	httpOnce   sync.Once
)

// DefaultHttpClient returns a singleton HTTP client shared by the
// Atlassian clients.
func DefaultHttpClient() *http.Client {
	httpOnce.Do(func() {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	})
	return httpClient
}
