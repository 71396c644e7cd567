// Package github provides the read-only GitHub API surface git-ptt needs:
// listing open pull requests so they can be matched to mapped branches.
package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"ptt.dev/ptt/internal/git"
)

// PullRequestInfo is a simplified pull request view, decoupled from the
// go-github types.
type PullRequestInfo struct {
	Number  int
	Title   string
	State   string
	HTMLURL string
	Head    string
	Base    string
	Draft   bool
}

// Client wraps the GitHub API for one repository.
type Client struct {
	client *github.Client
	owner  string
	repo   string
}

// NewClient builds an authenticated client for the repository behind the
// given remote URL. The token comes from GITHUB_TOKEN or, failing that,
// from the gh CLI.
func NewClient(ctx context.Context, remoteURL string) (*Client, error) {
	owner, repo, err := ParseRepoURL(remoteURL)
	if err != nil {
		return nil, err
	}

	token, err := getToken(ctx)
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

// OwnerRepo returns the repository owner and name.
func (c *Client) OwnerRepo() (string, string) {
	return c.owner, c.repo
}

// ListOpenPRs returns the open pull requests for the repository, keyed by
// head branch name.
func (c *Client) ListOpenPRs(ctx context.Context) (map[string]PullRequestInfo, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	result := make(map[string]PullRequestInfo)
	for {
		prs, resp, err := c.client.PullRequests.List(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests: %w", err)
		}

		for _, pr := range prs {
			info := PullRequestInfo{
				Number:  pr.GetNumber(),
				Title:   pr.GetTitle(),
				State:   pr.GetState(),
				HTMLURL: pr.GetHTMLURL(),
				Head:    pr.GetHead().GetRef(),
				Base:    pr.GetBase().GetRef(),
				Draft:   pr.GetDraft(),
			}
			result[info.Head] = info
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return result, nil
}

// ParseRepoURL extracts owner and repository name from an https or ssh
// GitHub remote URL.
func ParseRepoURL(url string) (string, string, error) {
	trimmed := strings.TrimSuffix(url, ".git")

	var path string
	switch {
	case strings.HasPrefix(trimmed, "git@"):
		// git@github.com:owner/repo
		_, after, ok := strings.Cut(trimmed, ":")
		if !ok {
			return "", "", fmt.Errorf("unrecognized remote URL %q", url)
		}
		path = after
	case strings.Contains(trimmed, "://"):
		// https://github.com/owner/repo
		_, after, _ := strings.Cut(trimmed, "://")
		parts := strings.SplitN(after, "/", 2)
		if len(parts) < 2 {
			return "", "", fmt.Errorf("unrecognized remote URL %q", url)
		}
		path = parts[1]
	default:
		return "", "", fmt.Errorf("unrecognized remote URL %q", url)
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return "", "", fmt.Errorf("cannot determine owner/repo from %q", url)
	}
	return segments[0], segments[1], nil
}

// getToken returns a GitHub token from the environment or the gh CLI.
func getToken(ctx context.Context) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	token, err := git.NewCommandRunner("").RunGH(ctx, "auth", "token")
	if err != nil {
		return "", fmt.Errorf("no GITHUB_TOKEN set and gh CLI unavailable: %w", err)
	}
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}
	return token, nil
}
