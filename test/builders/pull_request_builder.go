package builders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/bitbridge/domain"
)

// PullRequestBuilder helps create test pull requests with a fluent interface.
type PullRequestBuilder struct {
	*testkit.BaseBuilder
	id          int
	title       string
	state       string
	source      string
	destination string
}

// NewPullRequestBuilder creates a new pull request builder with sensible defaults.
func NewPullRequestBuilder() *PullRequestBuilder {
	return &PullRequestBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          1,
		title:       "test pull request",
		state:       domain.PullRequestStateOpen,
		source:      "feature/test",
		destination: "main",
	}
}

// WithID sets the pull request id.
func (b *PullRequestBuilder) WithID(id int) *PullRequestBuilder {
	b.id = id
	return b
}

// WithTitle sets the title.
func (b *PullRequestBuilder) WithTitle(title string) *PullRequestBuilder {
	b.title = title
	return b
}

// WithState sets the pull request state.
func (b *PullRequestBuilder) WithState(state string) *PullRequestBuilder {
	b.state = state
	return b
}

// WithSource sets the source branch name.
func (b *PullRequestBuilder) WithSource(branch string) *PullRequestBuilder {
	b.source = branch
	return b
}

// WithDestination sets the destination branch name.
func (b *PullRequestBuilder) WithDestination(branch string) *PullRequestBuilder {
	b.destination = branch
	return b
}

// Build creates the pull request (satisfies testkit.Builder interface).
func (b *PullRequestBuilder) Build() interface{} {
	return b.BuildPullRequest()
}

// BuildPullRequest creates the pull request with a concrete return type.
func (b *PullRequestBuilder) BuildPullRequest() domain.PullRequest {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.PullRequest{
		ID:    b.id,
		Title: b.title,
		State: b.state,
		Source: domain.PullRequestEndpoint{
			Branch: domain.Branch{Name: b.source},
		},
		Destination: domain.PullRequestEndpoint{
			Branch: domain.Branch{Name: b.destination},
		},
		CreatedOn: now,
		UpdatedOn: now,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PullRequestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = 1
	b.title = "test pull request"
	b.state = domain.PullRequestStateOpen
	b.source = "feature/test"
	b.destination = "main"
	return b
}

// Clone creates a deep copy of the PullRequestBuilder.
func (b *PullRequestBuilder) Clone() testkit.Builder {
	return &PullRequestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		title:       b.title,
		state:       b.state,
		source:      b.source,
		destination: b.destination,
	}
}
