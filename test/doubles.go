// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"

	"github.com/rios0rios0/bitbridge/domain"
)

// ---------------------------------------------------------------------------
// SpyClient
// ---------------------------------------------------------------------------

// SpyClient implements domain.Client as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyClient struct {
	// --- shared failure injection ---
	Err error

	// --- list/get returns ---
	RepositoryPage   *domain.Page[domain.Repository]
	Repository       *domain.Repository
	PipelinePage     *domain.Page[domain.Pipeline]
	Pipeline         *domain.Pipeline
	PipelineStepPage *domain.Page[domain.PipelineStep]
	PullRequestPage  *domain.Page[domain.PullRequest]
	PullRequest      *domain.PullRequest

	// --- spy: calls received, in order ---
	Calls []Call
}

// Call records one invocation of a client method.
type Call struct {
	Method    string
	Workspace string
	RepoSlug  string
	UUID      string
	ID        int
	Options   any
	Input     any
}

var _ domain.Client = (*SpyClient)(nil)

func (c *SpyClient) record(call Call) {
	c.Calls = append(c.Calls, call)
}

// CallCount returns the number of recorded client invocations.
func (c *SpyClient) CallCount() int { return len(c.Calls) }

func (c *SpyClient) ListRepositories(
	_ context.Context, workspace string, opts domain.ListRepositoriesOptions,
) (*domain.Page[domain.Repository], error) {
	c.record(Call{Method: "ListRepositories", Workspace: workspace, Options: opts})
	return c.RepositoryPage, c.Err
}

func (c *SpyClient) GetRepository(
	_ context.Context, workspace, repoSlug string,
) (*domain.Repository, error) {
	c.record(Call{Method: "GetRepository", Workspace: workspace, RepoSlug: repoSlug})
	return c.Repository, c.Err
}

func (c *SpyClient) ListPipelines(
	_ context.Context, workspace, repoSlug string, opts domain.ListPipelinesOptions,
) (*domain.Page[domain.Pipeline], error) {
	c.record(Call{Method: "ListPipelines", Workspace: workspace, RepoSlug: repoSlug, Options: opts})
	return c.PipelinePage, c.Err
}

func (c *SpyClient) GetPipeline(
	_ context.Context, workspace, repoSlug, pipelineUUID string,
) (*domain.Pipeline, error) {
	c.record(Call{Method: "GetPipeline", Workspace: workspace, RepoSlug: repoSlug, UUID: pipelineUUID})
	return c.Pipeline, c.Err
}

func (c *SpyClient) ListPipelineSteps(
	_ context.Context, workspace, repoSlug, pipelineUUID string,
) (*domain.Page[domain.PipelineStep], error) {
	c.record(Call{Method: "ListPipelineSteps", Workspace: workspace, RepoSlug: repoSlug, UUID: pipelineUUID})
	return c.PipelineStepPage, c.Err
}

func (c *SpyClient) ListPullRequests(
	_ context.Context, workspace, repoSlug string, opts domain.ListPullRequestsOptions,
) (*domain.Page[domain.PullRequest], error) {
	c.record(Call{Method: "ListPullRequests", Workspace: workspace, RepoSlug: repoSlug, Options: opts})
	return c.PullRequestPage, c.Err
}

func (c *SpyClient) GetPullRequest(
	_ context.Context, workspace, repoSlug string, id int,
) (*domain.PullRequest, error) {
	c.record(Call{Method: "GetPullRequest", Workspace: workspace, RepoSlug: repoSlug, ID: id})
	return c.PullRequest, c.Err
}

func (c *SpyClient) CreatePullRequest(
	_ context.Context, workspace, repoSlug string, input domain.CreatePullRequestInput,
) (*domain.PullRequest, error) {
	c.record(Call{Method: "CreatePullRequest", Workspace: workspace, RepoSlug: repoSlug, Input: input})
	return c.PullRequest, c.Err
}

func (c *SpyClient) UpdatePullRequest(
	_ context.Context, workspace, repoSlug string, id int, input domain.UpdatePullRequestInput,
) (*domain.PullRequest, error) {
	c.record(Call{Method: "UpdatePullRequest", Workspace: workspace, RepoSlug: repoSlug, ID: id, Input: input})
	return c.PullRequest, c.Err
}

func (c *SpyClient) MergePullRequest(
	_ context.Context, workspace, repoSlug string, id int, input domain.MergePullRequestInput,
) (*domain.PullRequest, error) {
	c.record(Call{Method: "MergePullRequest", Workspace: workspace, RepoSlug: repoSlug, ID: id, Input: input})
	return c.PullRequest, c.Err
}

func (c *SpyClient) DeclinePullRequest(
	_ context.Context, workspace, repoSlug string, id int,
) (*domain.PullRequest, error) {
	c.record(Call{Method: "DeclinePullRequest", Workspace: workspace, RepoSlug: repoSlug, ID: id})
	return c.PullRequest, c.Err
}
