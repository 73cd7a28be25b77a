package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bitbridge/application"
	"github.com/rios0rios0/bitbridge/domain"
	testdoubles "github.com/rios0rios0/bitbridge/test"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("should bind each descriptor under its own name", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := application.NewCatalog(&testdoubles.SpyClient{})

		// when / then
		for name, descriptor := range catalog {
			assert.Equal(t, name, descriptor.Name)
			assert.NotEmpty(t, descriptor.Description)
			assert.NotNil(t, descriptor.Schema)
			assert.NotNil(t, descriptor.Invoke)
		}
	})

	t.Run("should require the documented fields per operation", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := application.NewCatalog(&testdoubles.SpyClient{})
		wantRequired := map[string][]string{
			"bitbucket/getRepositories":    {},
			"bitbucket/getRepository":      {"workspace", "repoSlug"},
			"bitbucket/getPipelines":       {"workspace", "repoSlug"},
			"bitbucket/getPipeline":        {"workspace", "repoSlug", "pipelineUuid"},
			"bitbucket/getPipelineSteps":   {"workspace", "repoSlug", "pipelineUuid"},
			"bitbucket/getPullRequests":    {"workspace", "repoSlug"},
			"bitbucket/getPullRequest":     {"workspace", "repoSlug", "id"},
			"bitbucket/createPullRequest":  {"workspace", "repoSlug", "title", "sourceBranch", "destinationBranch"},
			"bitbucket/updatePullRequest":  {"workspace", "repoSlug", "id"},
			"bitbucket/mergePullRequest":   {"workspace", "repoSlug", "id"},
			"bitbucket/declinePullRequest": {"workspace", "repoSlug", "id"},
		}

		// when / then
		require.Len(t, catalog, len(wantRequired))
		for name, fields := range wantRequired {
			descriptor, found := catalog[name]
			require.True(t, found, "missing catalog entry %q", name)

			var required []string
			for field, spec := range descriptor.Schema {
				if spec.Required {
					required = append(required, field)
				}
			}
			assert.ElementsMatch(t, fields, required, "required fields of %q", name)
		}
	})

	t.Run("should restrict pull request state to the documented values", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := application.NewCatalog(&testdoubles.SpyClient{})

		// when
		spec := catalog["bitbucket/getPullRequests"].Schema["state"]

		// then
		assert.ElementsMatch(t,
			[]string{"OPEN", "MERGED", "DECLINED", "SUPERSEDED"}, spec.Enum)
	})

	t.Run("should restrict merge strategy to the documented values", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := application.NewCatalog(&testdoubles.SpyClient{})

		// when
		spec := catalog["bitbucket/mergePullRequest"].Schema["mergeStrategy"]

		// then
		assert.ElementsMatch(t,
			[]string{"merge_commit", "squash", "fast_forward"}, spec.Enum)
	})

	t.Run("should pass merge options through to the client", func(t *testing.T) {
		t.Parallel()

		// given
		client := &testdoubles.SpyClient{PullRequest: &domain.PullRequest{ID: 5, State: "MERGED"}}
		catalog := application.NewCatalog(client)

		// when
		_, err := catalog["bitbucket/mergePullRequest"].Invoke(context.Background(),
			map[string]any{
				"workspace": "acme", "repoSlug": "widgets", "id": float64(5),
				"mergeStrategy": "squash", "message": "squashed",
				"closeSourceBranch": true,
			})

		// then
		require.NoError(t, err)
		input, ok := client.Calls[0].Input.(domain.MergePullRequestInput)
		require.True(t, ok)
		assert.Equal(t, "squash", input.MergeStrategy)
		assert.Equal(t, "squashed", input.Message)
		assert.True(t, input.CloseSourceBranch)
	})
}
