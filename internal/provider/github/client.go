package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/johanforsgren/gitcollection/internal/provider/common"
	"golang.org/x/oauth2"
)

type Client struct {
	client *github.Client
}

// NewClient builds a GitHub REST client. An empty token gives an
// unauthenticated client; an empty baseURL targets api.github.com.
func NewClient(token, baseURL string) (*Client, error) {
	httpClient := &http.Client{Transport: common.NewLoggingTransport(nil)}

	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}

	return &Client{client: client}, nil
}

func (c *Client) BaseURL() string {
	return c.client.BaseURL.String()
}

// GetRepository fetches repos/<owner>/<name> with both segments escaped.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*github.Repository, error) {
	req, err := c.client.NewRequest(http.MethodGet, common.RepositoryPath(owner, name), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	repo := new(github.Repository)
	if _, err := c.client.Do(ctx, req, repo); err != nil {
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}

	return repo, nil
}
