package bitbucket

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rios0rios0/bitbridge/domain"
)

// ListRepositories lists repositories visible to the authenticated account,
// scoped to a workspace when one is given.
func (c *Client) ListRepositories(
	ctx context.Context,
	workspace string,
	opts domain.ListRepositoriesOptions,
) (*domain.Page[domain.Repository], error) {
	endpoint := "/repositories"
	if workspace != "" {
		endpoint += "/" + escape(workspace)
	}

	var page domain.Page[domain.Repository]
	if err := c.do(ctx, http.MethodGet, endpoint, opts, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetRepository fetches a single repository by workspace and slug.
func (c *Client) GetRepository(
	ctx context.Context,
	workspace, repoSlug string,
) (*domain.Repository, error) {
	endpoint := fmt.Sprintf("/repositories/%s/%s", escape(workspace), escape(repoSlug))

	var repo domain.Repository
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}
