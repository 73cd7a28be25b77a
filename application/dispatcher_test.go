package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bitbridge/application"
	"github.com/rios0rios0/bitbridge/domain"
	testdoubles "github.com/rios0rios0/bitbridge/test"
	"github.com/rios0rios0/bitbridge/test/builders"
)

func newDispatcher(client domain.Client) *application.Dispatcher {
	return application.NewDispatcher(application.NewCatalog(client))
}

func TestDispatcherDispatch(t *testing.T) {
	t.Parallel()

	t.Run("should pass the client result through unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		pr := builders.NewPullRequestBuilder().WithID(42).BuildPullRequest()
		client := &testdoubles.SpyClient{PullRequest: &pr}
		dispatcher := newDispatcher(client)

		// when
		result, err := dispatcher.Dispatch(context.Background(), "bitbucket/getPullRequest",
			map[string]any{"workspace": "acme", "repoSlug": "widgets", "id": float64(42)})

		// then
		require.NoError(t, err)
		assert.Same(t, &pr, result)
		require.Equal(t, 1, client.CallCount())
		assert.Equal(t, "GetPullRequest", client.Calls[0].Method)
		assert.Equal(t, 42, client.Calls[0].ID)
	})

	t.Run("should fail with UnknownMethod and make no client call", func(t *testing.T) {
		t.Parallel()

		// given
		client := &testdoubles.SpyClient{}
		dispatcher := newDispatcher(client)

		// when
		result, err := dispatcher.Dispatch(context.Background(),
			"bitbucket/deleteEverything", map[string]any{})

		// then
		var unknownErr *application.UnknownMethodError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "bitbucket/deleteEverything", unknownErr.Method)
		assert.Nil(t, result)
		assert.Zero(t, client.CallCount())
	})

	t.Run("should fail with InvalidParams listing the missing field", func(t *testing.T) {
		t.Parallel()

		// given
		client := &testdoubles.SpyClient{}
		dispatcher := newDispatcher(client)

		// when
		result, err := dispatcher.Dispatch(context.Background(), "bitbucket/getRepository",
			map[string]any{"workspace": "acme"})

		// then
		var invalidErr *application.InvalidParamsError
		require.ErrorAs(t, err, &invalidErr)
		require.Len(t, invalidErr.Violations, 1)
		assert.Equal(t, "repoSlug", invalidErr.Violations[0].Field)
		assert.Nil(t, result)
		assert.Zero(t, client.CallCount())
	})

	t.Run("should fail with InvalidParams on an unexpected extra field", func(t *testing.T) {
		t.Parallel()

		// given
		client := &testdoubles.SpyClient{}
		dispatcher := newDispatcher(client)

		// when
		_, err := dispatcher.Dispatch(context.Background(), "bitbucket/getRepository",
			map[string]any{"workspace": "acme", "repoSlug": "widgets", "force": true})

		// then
		var invalidErr *application.InvalidParamsError
		require.ErrorAs(t, err, &invalidErr)
		require.Len(t, invalidErr.Violations, 1)
		assert.Equal(t, "force", invalidErr.Violations[0].Field)
		assert.Zero(t, client.CallCount())
	})

	t.Run("should treat a nil payload as empty", func(t *testing.T) {
		t.Parallel()

		// given
		client := &testdoubles.SpyClient{
			RepositoryPage: &domain.Page[domain.Repository]{Pagelen: 10},
		}
		dispatcher := newDispatcher(client)

		// when
		result, err := dispatcher.Dispatch(context.Background(),
			"bitbucket/getRepositories", nil)

		// then
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 1, client.CallCount())
	})

	t.Run("should propagate a remote API error unwrapped", func(t *testing.T) {
		t.Parallel()

		// given
		remoteErr := &domain.RemoteAPIError{StatusCode: 404, Status: "404 Not Found", Message: "Repository not found"}
		client := &testdoubles.SpyClient{Err: remoteErr}
		dispatcher := newDispatcher(client)

		// when
		_, err := dispatcher.Dispatch(context.Background(), "bitbucket/getRepository",
			map[string]any{"workspace": "acme", "repoSlug": "gone"})

		// then
		var gotErr *domain.RemoteAPIError
		require.ErrorAs(t, err, &gotErr)
		assert.Equal(t, 404, gotErr.StatusCode)
	})

	t.Run("should propagate a transport error unwrapped", func(t *testing.T) {
		t.Parallel()

		// given
		transportErr := &domain.TransportError{Err: errors.New("connection refused")}
		client := &testdoubles.SpyClient{Err: transportErr}
		dispatcher := newDispatcher(client)

		// when
		_, err := dispatcher.Dispatch(context.Background(), "bitbucket/getRepository",
			map[string]any{"workspace": "acme", "repoSlug": "widgets"})

		// then
		assert.True(t, domain.IsTransportError(err))
	})

	t.Run("should map pageSize into the client page length option", func(t *testing.T) {
		t.Parallel()

		// given
		client := &testdoubles.SpyClient{
			RepositoryPage: &domain.Page[domain.Repository]{Pagelen: 10},
		}
		dispatcher := newDispatcher(client)

		// when
		_, err := dispatcher.Dispatch(context.Background(), "bitbucket/getRepositories",
			map[string]any{"role": "owner", "pageSize": float64(10)})

		// then
		require.NoError(t, err)
		require.Equal(t, 1, client.CallCount())
		opts, ok := client.Calls[0].Options.(domain.ListRepositoriesOptions)
		require.True(t, ok)
		assert.Equal(t, "owner", opts.Role)
		assert.Equal(t, 10, opts.PageLen)
	})

	t.Run("should destructure create params into branch endpoints", func(t *testing.T) {
		t.Parallel()

		// given
		pr := builders.NewPullRequestBuilder().
			WithTitle("Add feature").
			WithSource("feature/x").
			WithDestination("main").
			BuildPullRequest()
		client := &testdoubles.SpyClient{PullRequest: &pr}
		dispatcher := newDispatcher(client)

		// when
		_, err := dispatcher.Dispatch(context.Background(), "bitbucket/createPullRequest",
			map[string]any{
				"workspace":         "acme",
				"repoSlug":          "widgets",
				"title":             "Add feature",
				"sourceBranch":      "feature/x",
				"destinationBranch": "main",
				"reviewers":         []any{"{uuid-1}"},
			})

		// then
		require.NoError(t, err)
		require.Equal(t, 1, client.CallCount())
		input, ok := client.Calls[0].Input.(domain.CreatePullRequestInput)
		require.True(t, ok)
		assert.Equal(t, "Add feature", input.Title)
		assert.Equal(t, "feature/x", input.Source.Branch.Name)
		assert.Equal(t, "main", input.Destination.Branch.Name)
		require.Len(t, input.Reviewers, 1)
		assert.Equal(t, "{uuid-1}", input.Reviewers[0].UUID)
	})

	t.Run("should only set the close flag on update when supplied", func(t *testing.T) {
		t.Parallel()

		// given
		pr := builders.NewPullRequestBuilder().BuildPullRequest()
		client := &testdoubles.SpyClient{PullRequest: &pr}
		dispatcher := newDispatcher(client)

		// when
		_, err := dispatcher.Dispatch(context.Background(), "bitbucket/updatePullRequest",
			map[string]any{
				"workspace": "acme", "repoSlug": "widgets", "id": float64(7),
				"title": "Renamed",
			})

		// then
		require.NoError(t, err)
		input, ok := client.Calls[0].Input.(domain.UpdatePullRequestInput)
		require.True(t, ok)
		assert.Equal(t, "Renamed", input.Title)
		assert.Nil(t, input.CloseSourceBranch)
	})
}

func TestDispatcherMethods(t *testing.T) {
	t.Parallel()

	t.Run("should list every registered method sorted", func(t *testing.T) {
		t.Parallel()

		// given
		dispatcher := newDispatcher(&testdoubles.SpyClient{})

		// when
		methods := dispatcher.Methods()

		// then
		assert.Equal(t, []string{
			"bitbucket/createPullRequest",
			"bitbucket/declinePullRequest",
			"bitbucket/getPipeline",
			"bitbucket/getPipelineSteps",
			"bitbucket/getPipelines",
			"bitbucket/getPullRequest",
			"bitbucket/getPullRequests",
			"bitbucket/getRepositories",
			"bitbucket/getRepository",
			"bitbucket/mergePullRequest",
			"bitbucket/updatePullRequest",
		}, methods)
	})
}
