package bitbucket

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rios0rios0/bitbridge/domain"
)

// ListPullRequests lists pull requests for a repository.
func (c *Client) ListPullRequests(
	ctx context.Context,
	workspace, repoSlug string,
	opts domain.ListPullRequestsOptions,
) (*domain.Page[domain.PullRequest], error) {
	endpoint := fmt.Sprintf("/repositories/%s/%s/pullrequests",
		escape(workspace), escape(repoSlug))

	var page domain.Page[domain.PullRequest]
	if err := c.do(ctx, http.MethodGet, endpoint, opts, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPullRequest fetches a single pull request by id.
func (c *Client) GetPullRequest(
	ctx context.Context,
	workspace, repoSlug string,
	id int,
) (*domain.PullRequest, error) {
	endpoint := fmt.Sprintf("/repositories/%s/%s/pullrequests/%d",
		escape(workspace), escape(repoSlug), id)

	var pr domain.PullRequest
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// CreatePullRequest opens a new pull request.
func (c *Client) CreatePullRequest(
	ctx context.Context,
	workspace, repoSlug string,
	input domain.CreatePullRequestInput,
) (*domain.PullRequest, error) {
	endpoint := fmt.Sprintf("/repositories/%s/%s/pullrequests",
		escape(workspace), escape(repoSlug))

	var pr domain.PullRequest
	if err := c.do(ctx, http.MethodPost, endpoint, nil, input, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// UpdatePullRequest applies a partial update to an existing pull request.
func (c *Client) UpdatePullRequest(
	ctx context.Context,
	workspace, repoSlug string,
	id int,
	input domain.UpdatePullRequestInput,
) (*domain.PullRequest, error) {
	endpoint := fmt.Sprintf("/repositories/%s/%s/pullrequests/%d",
		escape(workspace), escape(repoSlug), id)

	var pr domain.PullRequest
	if err := c.do(ctx, http.MethodPut, endpoint, nil, input, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// MergePullRequest merges an open pull request.
func (c *Client) MergePullRequest(
	ctx context.Context,
	workspace, repoSlug string,
	id int,
	input domain.MergePullRequestInput,
) (*domain.PullRequest, error) {
	endpoint := fmt.Sprintf("/repositories/%s/%s/pullrequests/%d/merge",
		escape(workspace), escape(repoSlug), id)

	var pr domain.PullRequest
	if err := c.do(ctx, http.MethodPost, endpoint, nil, input, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// DeclinePullRequest declines an open pull request. The decline endpoint
// takes no body.
func (c *Client) DeclinePullRequest(
	ctx context.Context,
	workspace, repoSlug string,
	id int,
) (*domain.PullRequest, error) {
	endpoint := fmt.Sprintf("/repositories/%s/%s/pullrequests/%d/decline",
		escape(workspace), escape(repoSlug), id)

	var pr domain.PullRequest
	if err := c.do(ctx, http.MethodPost, endpoint, nil, nil, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}
