package domain

import "context"

// Client abstracts the Bitbucket Cloud REST API. It is the sole authority
// for turning a logical operation into an HTTP call and a typed result.
// Implementations issue exactly one outbound request per call; there is no
// retry, caching or rate-limit handling at this layer.
type Client interface {
	// ListRepositories lists repositories, scoped to a workspace when one
	// is given. With an empty workspace it lists all repositories visible
	// to the authenticated account.
	ListRepositories(ctx context.Context, workspace string, opts ListRepositoriesOptions) (*Page[Repository], error)

	// GetRepository fetches a single repository by workspace and slug.
	GetRepository(ctx context.Context, workspace, repoSlug string) (*Repository, error)

	// ListPipelines lists CI pipelines for a repository.
	ListPipelines(ctx context.Context, workspace, repoSlug string, opts ListPipelinesOptions) (*Page[Pipeline], error)

	// GetPipeline fetches a single pipeline by UUID.
	GetPipeline(ctx context.Context, workspace, repoSlug, pipelineUUID string) (*Pipeline, error)

	// ListPipelineSteps lists the steps of a pipeline execution.
	ListPipelineSteps(ctx context.Context, workspace, repoSlug, pipelineUUID string) (*Page[PipelineStep], error)

	// ListPullRequests lists pull requests for a repository.
	ListPullRequests(ctx context.Context, workspace, repoSlug string, opts ListPullRequestsOptions) (*Page[PullRequest], error)

	// GetPullRequest fetches a single pull request by id.
	GetPullRequest(ctx context.Context, workspace, repoSlug string, id int) (*PullRequest, error)

	// CreatePullRequest opens a new pull request. Not idempotent.
	CreatePullRequest(ctx context.Context, workspace, repoSlug string, input CreatePullRequestInput) (*PullRequest, error)

	// UpdatePullRequest applies a partial update to an existing pull request.
	UpdatePullRequest(ctx context.Context, workspace, repoSlug string, id int, input UpdatePullRequestInput) (*PullRequest, error)

	// MergePullRequest merges an open pull request. Not idempotent.
	MergePullRequest(ctx context.Context, workspace, repoSlug string, id int, input MergePullRequestInput) (*PullRequest, error)

	// DeclinePullRequest declines an open pull request. Not idempotent.
	DeclinePullRequest(ctx context.Context, workspace, repoSlug string, id int) (*PullRequest, error)
}
