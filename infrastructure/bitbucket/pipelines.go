package bitbucket

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rios0rios0/bitbridge/domain"
)

// ListPipelines lists CI pipelines for a repository.
func (c *Client) ListPipelines(
	ctx context.Context,
	workspace, repoSlug string,
	opts domain.ListPipelinesOptions,
) (*domain.Page[domain.Pipeline], error) {
	endpoint := fmt.Sprintf("/repositories/%s/%s/pipelines",
		escape(workspace), escape(repoSlug))

	var page domain.Page[domain.Pipeline]
	if err := c.do(ctx, http.MethodGet, endpoint, opts, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPipeline fetches a single pipeline by UUID.
func (c *Client) GetPipeline(
	ctx context.Context,
	workspace, repoSlug, pipelineUUID string,
) (*domain.Pipeline, error) {
	endpoint := fmt.Sprintf("/repositories/%s/%s/pipelines/%s",
		escape(workspace), escape(repoSlug), escape(pipelineUUID))

	var pipeline domain.Pipeline
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &pipeline); err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// ListPipelineSteps lists the steps of a pipeline execution.
func (c *Client) ListPipelineSteps(
	ctx context.Context,
	workspace, repoSlug, pipelineUUID string,
) (*domain.Page[domain.PipelineStep], error) {
	endpoint := fmt.Sprintf("/repositories/%s/%s/pipelines/%s/steps",
		escape(workspace), escape(repoSlug), escape(pipelineUUID))

	var page domain.Page[domain.PipelineStep]
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
